package bench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func TestMain(m *testing.M) {
	minimax.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", minimax.SeedGeneratorFn())

	os.Exit(m.Run())
}

// Shared between the worker clones, counts the events
type countingListener struct {
	DefaultListener
	started   *atomic.Int32
	moves     *atomic.Int32
	finished  *atomic.Int32
	workers   *atomic.Int32
	summaries *atomic.Int32
	summary   *VersusSummaryInfo
}

func newCountingListener() *countingListener {
	return &countingListener{
		started:   &atomic.Int32{},
		moves:     &atomic.Int32{},
		finished:  &atomic.Int32{},
		workers:   &atomic.Int32{},
		summaries: &atomic.Int32{},
		summary:   &VersusSummaryInfo{},
	}
}

func (c *countingListener) OnGameStart(VersusWorkerInfo) { c.started.Add(1) }
func (c *countingListener) OnMoveMade(VersusWorkerInfo)  { c.moves.Add(1) }
func (c *countingListener) OnFinishedGame(info VersusWorkerInfo) {
	c.finished.Add(1)
	if !info.Outcome.Terminal() {
		panic("finished game without terminal outcome")
	}
}
func (c *countingListener) OnFinishedWork(VersusWorkerInfo) { c.workers.Add(1) }
func (c *countingListener) Summary(info VersusSummaryInfo) {
	c.summaries.Add(1)
	*c.summary = info
}
func (c *countingListener) Clone() ListenerLike { return c }

func TestFullDepthArenaDraws(t *testing.T) {
	for _, tiebreak := range []minimax.TieBreakPolicy{minimax.TieBreakFirst, minimax.TieBreakRandom} {
		cfg := minimax.DefaultConfig().SetTieBreak(tiebreak)
		arena := NewVersusArena(3, minimax.NewEngine(cfg), minimax.NewEngine(cfg.Clone()))
		arena.Setup(8, 4)

		listener := newCountingListener()
		summary, err := arena.Run(NewArenaListener(listener, NewLogListener(arena.logger)))
		if err != nil {
			t.Fatal(err)
		}

		if summary.TotalGames != 8 || summary.Draws != 8 {
			t.Fatalf("%v: optimal engines must draw every game, got %s", tiebreak, summary)
		}
		if listener.started.Load() != 8 || listener.finished.Load() != 8 {
			t.Fatalf("started %d, finished %d", listener.started.Load(), listener.finished.Load())
		}
		if listener.moves.Load() != 8*9 {
			t.Fatalf("a drawn 3x3 game has 9 moves, got %d moves in total", listener.moves.Load())
		}
		if listener.workers.Load() != 4 || listener.summaries.Load() != 1 {
			t.Fatalf("workers %d, summaries %d", listener.workers.Load(), listener.summaries.Load())
		}
		if *listener.summary != summary {
			t.Fatalf("listener got %v, arena returned %v", *listener.summary, summary)
		}
	}
}

func TestArenaAggregation(t *testing.T) {
	strong := minimax.NewEngine(minimax.DefaultConfig())
	weak := minimax.NewEngine(minimax.DefaultConfig().SetDepth(1).SetTieBreak(minimax.TieBreakRandom))

	for _, policy := range []FirstMoverPolicy{FirstAlternate, FirstRandom, FirstPlayer1, FirstPlayer2} {
		arena := NewVersusArena(3, strong, weak).SetNames("depth9", "depth1").SetFirstMover(policy)
		arena.Setup(11, 3)

		summary, err := arena.Run(nil)
		if err != nil {
			t.Fatal(err)
		}

		if summary.TotalGames != 11 {
			t.Fatalf("%v: played %d games", policy, summary.TotalGames)
		}
		if summary.P2Wins != 0 {
			t.Fatalf("%v: full depth search lost %d games", policy, summary.P2Wins)
		}
		if summary.FirstToMoveWins+summary.SecondToMoveWins != summary.P1Wins+summary.P2Wins {
			t.Fatalf("%v: inconsistent summary %s", policy, summary)
		}
		if summary.P1Name != "depth9" || summary.Workers != 3 {
			t.Fatalf("%v: summary %s", policy, summary)
		}
		t.Logf("%v: %s", policy, summary)
	}
}

func TestArenaFirstMover(t *testing.T) {
	va := &VersusArena{}
	r := minimax.NewRand(1)

	for i := 0; i < 10; i++ {
		if va.p1First(i, r) != (i%2 == 0) {
			t.Fatalf("alternate: game %d", i)
		}
	}

	va.FirstMover = FirstPlayer2
	if va.p1First(0, r) {
		t.Fatal("player 2 should begin")
	}

	va.FirstMover = FirstRandom
	firsts := 0
	for i := 0; i < 200; i++ {
		if va.p1First(i, r) {
			firsts++
		}
	}
	if firsts == 0 || firsts == 200 {
		t.Fatalf("coin flip always gave the same side (%d/200)", firsts)
	}
}

func TestArenaErrors(t *testing.T) {
	bad := minimax.NewEngine(minimax.DefaultConfig().SetDepth(0))
	arena := NewVersusArena(3, bad, minimax.NewEngine(nil)).SetFirstMover(FirstPlayer1)
	arena.Setup(4, 2)
	if _, err := arena.Run(nil); !errors.Is(err, minimax.ErrInvalidDepth) {
		t.Fatalf("got %v, want ErrInvalidDepth", err)
	}

	arena = NewVersusArena(0, minimax.NewEngine(nil), minimax.NewEngine(nil))
	if err := arena.Start(nil); !errors.Is(err, ttt.ErrInvalidSize) {
		t.Fatalf("got %v, want ErrInvalidSize", err)
	}

	if _, err := NewVersusArena(3, nil, nil).Wait(); err == nil {
		t.Fatal("waiting on an arena that was never started should fail")
	}
}

func TestArenaCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena(3, minimax.NewEngine(nil), minimax.NewEngine(nil)).WithContext(ctx)
	arena.Setup(10, 2)

	summary, err := arena.Run(nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if summary.TotalGames != 0 {
		t.Fatalf("cancelled arena played %d games", summary.TotalGames)
	}
}

func TestAgentResult(t *testing.T) {
	cases := []struct {
		outcome     GameOutcome
		p1WentFirst bool
		want        VersusMatchResult
	}{
		{GameOutcome{IsDraw: true}, true, VersusDraw},
		{GameOutcome{FirstPlayerWon: true}, true, VersusPl1Win},
		{GameOutcome{FirstPlayerWon: true}, false, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, true, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, false, VersusPl1Win},
	}

	for _, tc := range cases {
		if got := toAgentResult(tc.outcome, tc.p1WentFirst); got != tc.want {
			t.Errorf("toAgentResult(%+v, %v) = %d, want %d", tc.outcome, tc.p1WentFirst, got, tc.want)
		}
	}
}

func TestComputeOutcome(t *testing.T) {
	game, _ := ttt.NewGame(3, ttt.PlayerO)
	for _, m := range []ttt.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}} {
		if err := game.Play(m); err != nil {
			t.Fatal(err)
		}
	}

	outcome := computeOutcome(game)
	if outcome.IsDraw || !outcome.FirstPlayerWon {
		t.Fatalf("O began and completed the top row, got %+v", outcome)
	}

	stats := VersusArenaStats{}
	stats.add(outcome, false)
	if stats.P2Wins() != 1 || stats.FirstToMoveWins() != 1 || stats.Total() != 1 {
		t.Fatalf("player 2 (O) went first and won, got p1=%d p2=%d first=%d",
			stats.P1Wins(), stats.P2Wins(), stats.FirstToMoveWins())
	}
}

func BenchmarkArena(b *testing.B) {
	for i := 0; i < b.N; i++ {
		arena := NewVersusArena(3, minimax.NewEngine(nil), minimax.NewEngine(nil))
		arena.Setup(4, 4)
		_, _ = arena.Run(nil)
	}
}
