package ttt

import "fmt"

// N×N grid of cells stored in row-major order, the size is fixed
// for the lifetime of the board
type Board struct {
	size  int
	cells []Cell
}

// Create an empty board of given size
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Board{size: size, cells: make([]Cell, size*size)}, nil
}

// Same as NewBoard, but panics on invalid size
func MustNewBoard(size int) *Board {
	b, err := NewBoard(size)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

func (b *Board) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
}

// Read the cell at given coordinates
func (b *Board) Get(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return CellEmpty, b.outOfBounds(row, col)
	}
	return b.cells[b.index(row, col)], nil
}

// Write a symbol to an empty cell. Writing to an occupied cell is an error,
// use Clear to empty a cell.
func (b *Board) Set(row, col int, c Cell) error {
	if !b.InBounds(row, col) {
		return b.outOfBounds(row, col)
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCell, c)
	}
	idx := b.index(row, col)
	if b.cells[idx] != CellEmpty {
		return fmt.Errorf("%w: (%d,%d) holds %s", ErrCellOccupied, row, col, b.cells[idx])
	}
	b.cells[idx] = c
	return nil
}

// Reset the cell at given coordinates to empty
func (b *Board) Clear(row, col int) error {
	if !b.InBounds(row, col) {
		return b.outOfBounds(row, col)
	}
	b.cells[b.index(row, col)] = CellEmpty
	return nil
}

// Unchecked read, panics when out of bounds
func (b *Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// Unchecked write of the player's symbol, used by the search as a scratchpad.
// Every MakeMove must be paired with UndoMove on the same move.
func (b *Board) MakeMove(m Move, p Player) {
	b.cells[b.index(m.Row, m.Col)] = p.Cell()
}

// Revert a move made with MakeMove
func (b *Board) UndoMove(m Move) {
	b.cells[b.index(m.Row, m.Col)] = CellEmpty
}

// Check whether the move points at an empty cell inside the board
func (b *Board) IsLegal(m Move) bool {
	return b.InBounds(m.Row, m.Col) && b.At(m.Row, m.Col) == CellEmpty
}

func (b *Board) CountEmpty() int {
	count := 0
	for _, c := range b.cells {
		if c == CellEmpty {
			count++
		}
	}
	return count
}

func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// Exact board configuration as a compact string, one byte per cell
func (b *Board) Key() string {
	return string(b.cells)
}

// Deep copy of the board, without any shared memory
func (b *Board) Clone() *Board {
	clone := &Board{size: b.size, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Set every cell to empty
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = CellEmpty
	}
}

// Get the outcome of the position, see IsTerminal
func (b *Board) Outcome() Outcome {
	return IsTerminal(b)
}

func (b *Board) String() string {
	return b.Notation()
}
