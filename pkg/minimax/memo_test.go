package minimax

import (
	"sync"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func TestMemoEntryUsable(t *testing.T) {
	cases := []struct {
		entry       MemoEntry
		alpha, beta Score
		want        bool
	}{
		{MemoEntry{Score: 0, Bound: BoundExact}, -ScoreInfinity, ScoreInfinity, true},
		{MemoEntry{Score: 0, Bound: BoundExact}, 5, 6, true},
		{MemoEntry{Score: 10, Bound: BoundLower}, -10, 0, true},
		{MemoEntry{Score: 0, Bound: BoundLower}, -10, 10, false},
		{MemoEntry{Score: -10, Bound: BoundUpper}, 0, 10, true},
		{MemoEntry{Score: 0, Bound: BoundUpper}, -10, 10, false},
	}

	for i, tc := range cases {
		if got := tc.entry.usable(tc.alpha, tc.beta); got != tc.want {
			t.Errorf("case %d: usable(%d, %d) of %+v = %v, want %v", i, tc.alpha, tc.beta, tc.entry, got, tc.want)
		}
	}
}

func childBoard(notation string, m ttt.Move, p ttt.Player) *ttt.Board {
	b := ttt.MustParseBoard(notation)
	b.MakeMove(m, p)
	return b
}

func TestLegacyKeyIgnoresPlayer(t *testing.T) {
	ResetSharedMemo()
	defer ResetSharedMemo()

	const position = "x../.o./..."
	engine := NewEngine(DefaultConfig().SetMemo(MemoLegacy))
	if _, err := engine.Search(ttt.MustParseBoard(position), ttt.PlayerX, 2); err != nil {
		t.Fatal(err)
	}

	child := childBoard(position, ttt.NewMove(0, 1), ttt.PlayerX)
	if _, ok := SharedMemo().Probe(child, 1, false, ttt.Player(0)); !ok {
		t.Fatal("legacy entry should be stored without the player")
	}
	if _, ok := SharedMemo().Probe(child, 1, false, ttt.PlayerX); ok {
		t.Fatal("legacy entry should not depend on the player")
	}
	if engine.Memo() != SharedMemo() {
		t.Fatal("legacy engine should use the shared memo")
	}
}

func TestPerSearchKeyIncludesPlayer(t *testing.T) {
	const position = "x../.o./..."
	for _, policy := range []MemoPolicy{MemoPerSearch, MemoBounded} {
		engine := NewEngine(DefaultConfig().SetMemo(policy))
		if _, err := engine.Search(ttt.MustParseBoard(position), ttt.PlayerX, 2); err != nil {
			t.Fatal(err)
		}

		child := childBoard(position, ttt.NewMove(0, 1), ttt.PlayerX)
		entry, ok := engine.Memo().Probe(child, 1, false, ttt.PlayerX)
		if !ok {
			t.Fatalf("%v: entry of the root child missing", policy)
		}
		if entry.Bound != BoundExact {
			t.Fatalf("%v: root children are searched with a full window, got %v", policy, entry.Bound)
		}
		if _, ok := engine.Memo().Probe(child, 1, false, ttt.Player(0)); ok {
			t.Fatalf("%v: entry stored without the player", policy)
		}
	}
}

func TestMemoScope(t *testing.T) {
	ResetSharedMemo()
	defer ResetSharedMemo()

	b := ttt.MustParseBoard("xx./oo./...")

	// The shared table outlives searches and engines
	first := NewEngine(DefaultConfig().SetMemo(MemoLegacy))
	if _, err := first.Search(b, ttt.PlayerX, 2); err != nil {
		t.Fatal(err)
	}
	size := SharedMemo().Len()

	second := NewEngine(DefaultConfig().SetMemo(MemoLegacy))
	if _, err := second.Search(b, ttt.PlayerO, 2); err != nil {
		t.Fatal(err)
	}
	if second.Stats().MemoHits == 0 {
		t.Fatal("O's search should hit the leaves stored by X's search")
	}
	if SharedMemo().Len() < size {
		t.Fatalf("shared memo shrank from %d to %d", size, SharedMemo().Len())
	}

	// A per-search table starts empty every time
	engine := NewEngine(DefaultConfig().SetMemo(MemoPerSearch))
	for _, player := range []ttt.Player{ttt.PlayerX, ttt.PlayerO, ttt.PlayerX} {
		if _, err := engine.Search(b, player, 2); err != nil {
			t.Fatal(err)
		}
		if hits := engine.Stats().MemoHits; hits != 0 {
			t.Fatalf("depth 2 has no transpositions, got %d memo hits", hits)
		}
	}

	fresh := NewEngine(DefaultConfig().SetMemo(MemoPerSearch))
	if _, err := fresh.Search(b, ttt.PlayerX, 2); err != nil {
		t.Fatal(err)
	}
	if fresh.Memo().Len() != engine.Memo().Len() {
		t.Fatalf("per-search memo kept old entries: %d vs %d", engine.Memo().Len(), fresh.Memo().Len())
	}

	off := NewEngine(DefaultConfig().SetMemo(MemoOff))
	if _, err := off.Search(b, ttt.PlayerX, 3); err != nil {
		t.Fatal(err)
	}
	if off.Memo() != nil || off.Stats().MemoStores != 0 || off.Stats().MemoHits != 0 {
		t.Fatalf("memo used while disabled: %+v", off.Stats())
	}
}

func TestSharedMemoConcurrentSearches(t *testing.T) {
	ResetSharedMemo()
	defer ResetSharedMemo()

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(player ttt.Player) {
			defer wg.Done()
			engine := NewEngine(DefaultConfig().SetMemo(MemoLegacy))
			_, _, _ = engine.SelectMove(ttt.MustNewBoard(3), player, 5)
		}(ttt.Player(1 + i%2))
	}
	wg.Wait()

	if SharedMemo().Len() == 0 {
		t.Fatal("no entries stored")
	}
}
