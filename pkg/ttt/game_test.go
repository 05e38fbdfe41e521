package ttt

import (
	"errors"
	"testing"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, moves [][2]int) {
	t.Helper()
	for i, m := range moves {
		if err := g.Play(NewMove(m[0], m[1])); err != nil {
			t.Fatalf("move %d (%v) failed: %v", i, m, err)
		}
	}
}

func TestGameInitialState(t *testing.T) {
	g, err := NewGame(3, PlayerO)
	if err != nil {
		t.Fatal(err)
	}

	if g.ToMove() != PlayerO || g.FirstPlayer() != PlayerO {
		t.Fatalf("expected O to start, got %v", g.ToMove())
	}
	if g.Status() != StatusInProgress || g.Outcome() != OutcomeUndecided {
		t.Fatalf("expected game in progress, got %v", g.Status())
	}
	if g.MoveCount() != 0 {
		t.Fatalf("expected 0 moves, got %d", g.MoveCount())
	}

	if _, err := NewGame(0, PlayerX); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("got %v, want ErrInvalidSize", err)
	}
}

func TestGameWin(t *testing.T) {
	g, _ := NewGame(3, PlayerX)
	playMoves(t, g, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})

	if g.Status() != StatusWon {
		t.Fatalf("expected Won, got %v", g.Status())
	}
	if winner, ok := g.Winner(); !ok || winner != PlayerX {
		t.Fatalf("expected X to win, got %v %v", winner, ok)
	}

	if err := g.Play(NewMove(2, 2)); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after win: got %v, want ErrGameOver", err)
	}
}

func TestGameDraw(t *testing.T) {
	g, _ := NewGame(3, PlayerX)
	// x o x
	// x o o
	// o x x
	playMoves(t, g, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}})

	if g.Status() != StatusDraw || !g.IsDraw() {
		t.Fatalf("expected Draw, got %v (%s)", g.Status(), g.Board().Notation())
	}
	if _, ok := g.Winner(); ok {
		t.Fatal("draw has no winner")
	}
	if err := g.Play(NewMove(0, 0)); !errors.Is(err, ErrGameOver) {
		t.Fatalf("got %v, want ErrGameOver", err)
	}
}

func TestGameRejectsIllegalMoves(t *testing.T) {
	g, _ := NewGame(3, PlayerX)
	playMoves(t, g, [][2]int{{1, 1}})

	if err := g.Play(NewMove(1, 1)); !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("got %v, want ErrCellOccupied", err)
	}
	if err := g.Play(NewMove(3, 1)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
	if g.ToMove() != PlayerO || g.MoveCount() != 1 {
		t.Fatal("rejected moves must not change the turn")
	}
}

func TestGameUndo(t *testing.T) {
	g, _ := NewGame(3, PlayerX)
	playMoves(t, g, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})

	if !g.Undo() {
		t.Fatal("undo failed")
	}
	if g.Status() != StatusInProgress || g.ToMove() != PlayerX {
		t.Fatalf("after undo: %v, to move %v", g.Status(), g.ToMove())
	}
	if g.Board().Notation() != "xx./oo./..." {
		t.Fatalf("after undo: %s", g.Board().Notation())
	}

	g.Reset(PlayerO)
	if g.Undo() || g.ToMove() != PlayerO || g.Board().CountEmpty() != 9 {
		t.Fatal("reset must clear the game")
	}
}
