package ttt

import (
	"fmt"
	"strings"
)

// Notation of the board: rows from top to bottom separated with '/',
// cells are 'x', 'o' or '.' for an empty one. Example 3x3 board:
//
//	xx./oo./...
func (b *Board) Notation() string {
	var builder strings.Builder
	builder.Grow(len(b.cells) + b.size)

	for r := range b.size {
		if r > 0 {
			builder.WriteByte('/')
		}
		for c := range b.size {
			builder.WriteRune(b.At(r, c).Rune())
		}
	}
	return builder.String()
}

// Parse board from the notation, the number of rows determines the size
// and every row must have the same length
func ParseBoard(notation string) (*Board, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidNotation)
	}

	rows := strings.Split(notation, "/")
	size := len(rows)
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidNotation, r, len(runes), size)
		}
		for c, ch := range runes {
			cell, ok := cellFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidNotation, ch, r, c)
			}
			board.cells[board.index(r, c)] = cell
		}
	}

	return board, nil
}

// Same as ParseBoard, but panics on error, meant for tests and constants
func MustParseBoard(notation string) *Board {
	b, err := ParseBoard(notation)
	if err != nil {
		panic(err)
	}
	return b
}
