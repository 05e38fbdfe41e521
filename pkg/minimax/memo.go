package minimax

import (
	"sync"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Search node identity. Player is left zero by the legacy policy,
// which is exactly what makes its entries shareable between players.
type memoKey struct {
	board      string
	depth      int
	maximizing bool
	player     ttt.Player
}

type MemoEntry struct {
	Score Score
	Bound Bound
}

// Whether the entry can replace the search of a node with given window
func (e MemoEntry) usable(alpha, beta Score) bool {
	switch e.Bound {
	case BoundLower:
		return e.Score >= beta
	case BoundUpper:
		return e.Score <= alpha
	}
	return true
}

// Memo table for the search results, safe for concurrent use
// since the legacy table is shared by every engine in the process
type Memo struct {
	mu      sync.Mutex
	entries map[memoKey]MemoEntry
}

func NewMemo() *Memo {
	return &Memo{entries: make(map[memoKey]MemoEntry)}
}

func (m *Memo) probe(key memoKey) (MemoEntry, bool) {
	m.mu.Lock()
	entry, ok := m.entries[key]
	m.mu.Unlock()
	return entry, ok
}

func (m *Memo) store(key memoKey, entry MemoEntry) {
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
}

// Lookup the entry of a search node
func (m *Memo) Probe(b *ttt.Board, depth int, maximizing bool, player ttt.Player) (MemoEntry, bool) {
	return m.probe(memoKey{board: b.Key(), depth: depth, maximizing: maximizing, player: player})
}

// Number of stored entries
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Remove all entries
func (m *Memo) Clear() {
	m.mu.Lock()
	clear(m.entries)
	m.mu.Unlock()
}

// Process-wide table of the legacy policy, grows monotonically until reset
var sharedMemo = NewMemo()

// Clear the process-wide memo used by MemoLegacy
func ResetSharedMemo() {
	sharedMemo.Clear()
}

// Get the process-wide memo used by MemoLegacy
func SharedMemo() *Memo {
	return sharedMemo
}
