package minimax

import (
	"fmt"
	"math"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Other types, which didn't fit to Engine or Memo files

// Evaluation of a position from the optimized-for player's perspective
type Score int
type TieBreakPolicy int
type MemoPolicy int
type Bound uint8

// Leaf scores, the only evaluation there is: win, loss or neutral
const (
	WinScore     Score = 10
	LossScore    Score = -10
	NeutralScore Score = 0

	// Bigger than any reachable score, used as the initial alpha-beta window
	ScoreInfinity Score = math.MaxInt32
)

const (
	// Pick the first maximal move in row-major order, deterministic
	TieBreakFirst TieBreakPolicy = iota

	// Pick uniformly at random among all maximal moves
	TieBreakRandom
)

const (
	// Bound-aware memo scoped to a single search, keyed by board, depth, side
	// to move and the optimized-for player. Entries produced by a cutoff are
	// stored as lower/upper bounds and used only when they prove a cutoff.
	MemoBounded MemoPolicy = iota

	// Memo scoped to a single search, key includes the optimized-for player,
	// every value is stored as exact (including the pruned ones)
	MemoPerSearch

	// Process-wide memo keyed only by board, depth and side to move, values
	// stored as exact. Entries computed for one player are reused for the
	// other one, kept for parity with the legacy behaviour.
	MemoLegacy

	// No memoization at all
	MemoOff
)

// Kind of the value stored in the memo
const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// Single scored root candidate
type RootLine struct {
	Move  ttt.Move `json:"move"`
	Score Score    `json:"score"`
}

// Struct holding the result of the move selection
type SearchResult struct {
	Move   ttt.Move   `json:"move"`
	Found  bool       `json:"found"`
	Score  Score      `json:"score"`
	Ties   []ttt.Move `json:"ties"`
	Lines  []RootLine `json:"lines"`
	Player ttt.Player `json:"player"`
	Depth  int        `json:"depth"`
	Stats  SearchStats
}

func (r SearchResult) String() string {
	if !r.Found {
		return fmt.Sprintf("bestmove none depth %d nodes %d", r.Depth, r.Stats.Nodes)
	}
	return fmt.Sprintf("bestmove %v score %d ties %d depth %d nodes %d memohits %d cutoffs %d time %dms",
		r.Move, r.Score, len(r.Ties), r.Depth, r.Stats.Nodes, r.Stats.MemoHits, r.Stats.Cutoffs, r.Stats.TimeMs)
}

func (p TieBreakPolicy) String() string {
	switch p {
	case TieBreakFirst:
		return "first"
	case TieBreakRandom:
		return "random"
	}
	return fmt.Sprintf("TieBreakPolicy(%d)", int(p))
}

func (p TieBreakPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *TieBreakPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseTieBreak(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Parse tie-break policy from its name
func ParseTieBreak(s string) (TieBreakPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "deterministic":
		return TieBreakFirst, nil
	case "random":
		return TieBreakRandom, nil
	}
	return TieBreakFirst, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p MemoPolicy) String() string {
	switch p {
	case MemoBounded:
		return "bounded"
	case MemoPerSearch:
		return "search"
	case MemoLegacy:
		return "legacy"
	case MemoOff:
		return "off"
	}
	return fmt.Sprintf("MemoPolicy(%d)", int(p))
}

func (p MemoPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *MemoPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseMemoPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Parse memo policy from its name
func ParseMemoPolicy(s string) (MemoPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded":
		return MemoBounded, nil
	case "search", "per-search":
		return MemoPerSearch, nil
	case "legacy", "shared":
		return MemoLegacy, nil
	case "off", "none":
		return MemoOff, nil
	}
	return MemoBounded, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (b Bound) String() string {
	switch b {
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	}
	return "exact"
}
