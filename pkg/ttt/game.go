package ttt

import "fmt"

type historyState struct {
	move    Move
	player  Player
	outcome Outcome
}

// Game state machine: InProgress -> {InProgress, Won(player), Draw}.
// The outcome is re-evaluated after every applied move, once it's
// terminal no further moves are accepted.
type Game struct {
	board   *Board
	first   Player
	toMove  Player
	outcome Outcome
	history []historyState
}

// Create a new game on an empty board, 'first' makes the first move
func NewGame(size int, first Player) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(board, first), nil
}

// Start the game from an existing position, 'toMove' is the side to play.
// The game takes the ownership of the board.
func NewGameFromBoard(board *Board, toMove Player) *Game {
	return &Game{
		board:   board,
		first:   toMove,
		toMove:  toMove,
		outcome: IsTerminal(board),
		history: make([]historyState, 0, board.size*board.size),
	}
}

// Apply the move for the side to play
func (g *Game) Play(m Move) error {
	if g.outcome.Terminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, g.outcome)
	}
	if err := g.board.Set(m.Row, m.Col, g.toMove.Cell()); err != nil {
		return err
	}

	g.history = append(g.history, historyState{move: m, player: g.toMove, outcome: g.outcome})
	g.outcome = IsTerminal(g.board)
	g.toMove = g.toMove.Opponent()
	return nil
}

// Take back the last move, returns false if there is nothing to undo
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}

	last := g.history[len(g.history)-1]
	g.board.UndoMove(last.move)
	g.toMove = last.player
	g.outcome = last.outcome
	g.history = g.history[:len(g.history)-1]
	return true
}

// Start over with an empty board, 'first' makes the first move
func (g *Game) Reset(first Player) {
	g.board.Reset()
	g.first = first
	g.toMove = first
	g.outcome = OutcomeUndecided
	g.history = g.history[:0]
}

// The board is owned by the game, callers must not write to it directly
func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) ToMove() Player {
	return g.toMove
}

func (g *Game) FirstPlayer() Player {
	return g.first
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Status() GameStatus {
	switch g.outcome {
	case OutcomeXWon, OutcomeOWon:
		return StatusWon
	case OutcomeDraw:
		return StatusDraw
	}
	return StatusInProgress
}

func (g *Game) Winner() (Player, bool) {
	return g.outcome.Winner()
}

func (g *Game) IsTerminated() bool {
	return g.outcome.Terminal()
}

func (g *Game) IsDraw() bool {
	return g.outcome == OutcomeDraw
}

// Played moves, from the first one
func (g *Game) History() []Move {
	moves := make([]Move, len(g.history))
	for i, h := range g.history {
		moves[i] = h.move
	}
	return moves
}

func (g *Game) MoveCount() int {
	return len(g.history)
}
