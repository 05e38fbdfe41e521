package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Select the best move for 'player' searching 'depth' plies ahead.
// Returns false when there is no empty cell on the board. The board is
// restored to its original configuration before returning.
func (e *Engine) SelectMove(b *ttt.Board, player ttt.Player, depth int) (ttt.Move, bool, error) {
	result, err := e.Search(b, player, depth)
	if err != nil {
		return ttt.Move{}, false, err
	}
	return result.Move, result.Found, nil
}

// Same as SelectMove, with the depth taken from the config
func (e *Engine) Move(b *ttt.Board, player ttt.Player) (ttt.Move, bool, error) {
	return e.SelectMove(b, player, e.config.Depth)
}

// Run the root search: every empty cell is tried for 'player', scored with
// Minimax on the opponent's ply, and the maximal ones are collected. The
// chosen move depends on the tie-break policy.
func (e *Engine) Search(b *ttt.Board, player ttt.Player, depth int) (SearchResult, error) {
	if depth <= 0 {
		return SearchResult{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	if !player.Valid() {
		return SearchResult{}, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	e.setupSearch()
	result := SearchResult{Player: player, Depth: depth}
	moves := e.moveList(0, b)
	best := -ScoreInfinity

	for _, m := range moves.Slice() {
		b.MakeMove(m, player)
		score := e.minimax(b, depth-1, 1, -ScoreInfinity, ScoreInfinity, false, player)
		b.UndoMove(m)

		line := RootLine{Move: m, Score: score}
		result.Lines = append(result.Lines, line)
		if score > best {
			best = score
			result.Ties = append(result.Ties[:0], m)
		} else if score == best {
			result.Ties = append(result.Ties, m)
		}
		e.listener.invokeRootMove(line, e.stats)
	}

	if len(result.Ties) > 0 {
		result.Found = true
		result.Score = best
		result.Move = e.breakTie(result.Ties)
	}

	e.finishSearch(&result)
	return result, nil
}

// Minimax with alpha-beta pruning from the perspective of 'player'. On the
// maximizing ply 'player' moves, on the minimizing one its opponent does.
// A node is a leaf when the game is over or depth is exhausted.
// Every call is a separate search with its own memo scope (except the legacy one).
func (e *Engine) Minimax(b *ttt.Board, depth int, alpha, beta Score, maximizing bool, player ttt.Player) Score {
	e.setupSearch()
	score := e.minimax(b, depth, 0, alpha, beta, maximizing, player)
	e.stats.TimeMs = e.timer.Deltatime()
	if e.active != nil {
		e.stats.MemoSize = e.active.Len()
	}
	e.active = nil
	return score
}

func (e *Engine) minimax(b *ttt.Board, depth, ply int, alpha, beta Score, maximizing bool, player ttt.Player) Score {
	e.stats.Nodes++
	key := e.key(b, depth, maximizing, player)

	if e.active != nil {
		if entry, ok := e.active.probe(key); ok && entry.usable(alpha, beta) {
			e.stats.MemoHits++
			return entry.Score
		}
	}

	if depth <= 0 || ttt.IsTerminal(b).Terminal() {
		e.stats.Leaves++
		score := Evaluate(b, player)
		e.store(key, score, BoundExact)
		return score
	}

	alphaOrig, betaOrig := alpha, beta
	moves := e.moveList(ply, b)
	var best Score

	if maximizing {
		best = -ScoreInfinity
		for _, m := range moves.Slice() {
			b.MakeMove(m, player)
			score := e.minimax(b, depth-1, ply+1, alpha, beta, false, player)
			b.UndoMove(m)

			best = max(best, score)
			alpha = max(alpha, score)
			if e.config.Pruning && beta <= alpha {
				e.stats.Cutoffs++
				break
			}
		}
	} else {
		opponent := player.Opponent()
		best = ScoreInfinity
		for _, m := range moves.Slice() {
			b.MakeMove(m, opponent)
			score := e.minimax(b, depth-1, ply+1, alpha, beta, true, player)
			b.UndoMove(m)

			best = min(best, score)
			beta = min(beta, score)
			if e.config.Pruning && beta <= alpha {
				e.stats.Cutoffs++
				break
			}
		}
	}

	e.store(key, best, e.classify(best, alphaOrig, betaOrig))
	return best
}

// Fail-soft classification of a node's value against its original window,
// only the bounded memo distinguishes bounds from exact values
func (e *Engine) classify(value, alpha, beta Score) Bound {
	if e.config.Memo != MemoBounded {
		return BoundExact
	}
	switch {
	case value <= alpha:
		return BoundUpper
	case value >= beta:
		return BoundLower
	}
	return BoundExact
}

func (e *Engine) key(b *ttt.Board, depth int, maximizing bool, player ttt.Player) memoKey {
	if e.active == nil {
		return memoKey{}
	}
	key := memoKey{board: b.Key(), depth: depth, maximizing: maximizing}
	if e.config.Memo != MemoLegacy {
		key.player = player
	}
	return key
}

func (e *Engine) store(key memoKey, score Score, bound Bound) {
	if e.active == nil {
		return
	}
	e.active.store(key, MemoEntry{Score: score, Bound: bound})
	e.stats.MemoStores++
}

// Get the move list of given ply filled with the board's empty cells.
// The lists are reused, a ply's list is valid until the same ply is visited again.
func (e *Engine) moveList(ply int, b *ttt.Board) *ttt.MoveList {
	for len(e.lists) <= ply {
		e.lists = append(e.lists, ttt.NewMoveList(b.Size()*b.Size()))
	}
	list := e.lists[ply]
	list.Clear()
	b.AppendMoves(list)
	return list
}

func (e *Engine) breakTie(ties []ttt.Move) ttt.Move {
	if e.config.TieBreak == TieBreakRandom && len(ties) > 1 {
		return ties[e.rand.Intn(len(ties))]
	}
	return ties[0]
}

// This function only resets the counters and picks the memo for the search
func (e *Engine) setupSearch() {
	e.stats.reset()
	e.timer.Reset()

	switch e.config.Memo {
	case MemoOff:
		e.active = nil
	case MemoLegacy:
		e.active = sharedMemo
	default:
		e.memo.Clear()
		e.active = e.memo
	}
}

func (e *Engine) finishSearch(result *SearchResult) {
	e.stats.TimeMs = e.timer.Deltatime()
	if e.active != nil {
		e.stats.MemoSize = e.active.Len()
	}
	result.Stats = e.stats
	e.active = nil

	e.logger.Debug().
		Str("player", result.Player.String()).
		Int("depth", result.Depth).
		Bool("found", result.Found).
		Stringer("move", result.Move).
		Int("score", int(result.Score)).
		Int("ties", len(result.Ties)).
		Uint64("nodes", e.stats.Nodes).
		Uint64("memo_hits", e.stats.MemoHits).
		Uint64("cutoffs", e.stats.Cutoffs).
		Int("memo_size", e.stats.MemoSize).
		Int("time_ms", e.stats.TimeMs).
		Uint64("nps", e.stats.Nps()).
		Msg("search finished")

	e.listener.invokeStop(*result)
}
