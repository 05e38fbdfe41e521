package ttt

import "errors"

// Type defines for the board
type Cell uint8
type Player uint8
type Outcome uint8
type GameStatus uint8

// Enum for the cell values
const (
	CellEmpty Cell = iota
	CellX
	CellO
)

// Enum for the players, values match the corresponding cells
const (
	PlayerX Player = Player(CellX)
	PlayerO Player = Player(CellO)
)

// Result of the terminal check, Undecided means the game continues
const (
	OutcomeUndecided Outcome = iota
	OutcomeXWon
	OutcomeOWon
	OutcomeDraw
)

const (
	StatusInProgress GameStatus = iota
	StatusWon
	StatusDraw
)

var (
	ErrOutOfBounds     = errors.New("ttt: coordinate out of bounds")
	ErrCellOccupied    = errors.New("ttt: cell is occupied")
	ErrInvalidSize     = errors.New("ttt: board size must be at least 1")
	ErrInvalidCell     = errors.New("ttt: invalid cell value")
	ErrGameOver        = errors.New("ttt: game is over")
	ErrInvalidNotation = errors.New("ttt: invalid board notation")
)

// Get the other player, an involution: Opponent(Opponent(p)) == p
func Opponent(p Player) Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (p Player) Opponent() Player {
	return Opponent(p)
}

// Symbol placed on the board by this player
func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) Valid() bool {
	return p == PlayerX || p == PlayerO
}

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	}
	return "?"
}

// Parse player from a single character, case insensitive
func PlayerFromRune(r rune) (Player, bool) {
	switch r {
	case 'x', 'X':
		return PlayerX, true
	case 'o', 'O':
		return PlayerO, true
	}
	return 0, false
}

func (c Cell) Valid() bool {
	return c <= CellO
}

// Player owning this cell, false for an empty cell
func (c Cell) Player() (Player, bool) {
	if c == CellX || c == CellO {
		return Player(c), true
	}
	return 0, false
}

func (c Cell) Rune() rune {
	switch c {
	case CellX:
		return 'x'
	case CellO:
		return 'o'
	}
	return '.'
}

func (c Cell) String() string {
	return string(c.Rune())
}

func cellFromRune(r rune) (Cell, bool) {
	switch r {
	case 'x', 'X':
		return CellX, true
	case 'o', 'O':
		return CellO, true
	case '.', '-', '_':
		return CellEmpty, true
	}
	return CellEmpty, false
}

// Outcome where given player won
func WinFor(p Player) Outcome {
	if p == PlayerX {
		return OutcomeXWon
	}
	return OutcomeOWon
}

// Whether the game has concluded (win or draw)
func (o Outcome) Terminal() bool {
	return o != OutcomeUndecided
}

// Get the winner, false for draws and undecided positions
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case OutcomeXWon:
		return PlayerX, true
	case OutcomeOWon:
		return PlayerO, true
	}
	return 0, false
}

func (o Outcome) String() string {
	switch o {
	case OutcomeXWon:
		return "X won"
	case OutcomeOWon:
		return "O won"
	case OutcomeDraw:
		return "Draw"
	}
	return "Undecided"
}

func (s GameStatus) String() string {
	switch s {
	case StatusWon:
		return "Won"
	case StatusDraw:
		return "Draw"
	}
	return "InProgress"
}
