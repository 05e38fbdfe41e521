package ttt

// A straight line of N cells: start coordinate and the step between cells
type line struct {
	row, col   int
	dRow, dCol int
}

// Lines in the fixed scan order: rows, columns, main diagonal, anti-diagonal
func lines(size int) []line {
	result := make([]line, 0, 2*size+2)
	for r := range size {
		result = append(result, line{row: r, col: 0, dRow: 0, dCol: 1})
	}
	for c := range size {
		result = append(result, line{row: 0, col: c, dRow: 1, dCol: 0})
	}
	result = append(result,
		line{row: 0, col: 0, dRow: 1, dCol: 1},
		line{row: 0, col: size - 1, dRow: 1, dCol: -1},
	)
	return result
}

// Returns the symbol filling the whole line, CellEmpty if the line isn't won
func (b *Board) lineOwner(l line) Cell {
	first := b.At(l.row, l.col)
	if first == CellEmpty {
		return CellEmpty
	}
	for i := 1; i < b.size; i++ {
		if b.At(l.row+i*l.dRow, l.col+i*l.dCol) != first {
			return CellEmpty
		}
	}
	return first
}

// Check if the game is over. Rows are scanned first, then columns, then both
// diagonals, the first won line decides the winner. Draw is reported only when
// no line is won and there is no empty cell left.
func IsTerminal(b *Board) Outcome {
	size := b.size

	for r := range size {
		if owner := b.lineOwner(line{row: r, dCol: 1}); owner != CellEmpty {
			return outcomeFor(owner)
		}
	}

	for c := range size {
		if owner := b.lineOwner(line{col: c, dRow: 1}); owner != CellEmpty {
			return outcomeFor(owner)
		}
	}

	if owner := b.lineOwner(line{dRow: 1, dCol: 1}); owner != CellEmpty {
		return outcomeFor(owner)
	}
	if owner := b.lineOwner(line{col: size - 1, dRow: 1, dCol: -1}); owner != CellEmpty {
		return outcomeFor(owner)
	}

	if b.Full() {
		return OutcomeDraw
	}
	return OutcomeUndecided
}

// Find the first won line in scan order, returns its coordinates and the winner
func WinningLine(b *Board) ([]Move, Player, bool) {
	for _, l := range lines(b.size) {
		owner := b.lineOwner(l)
		if owner == CellEmpty {
			continue
		}

		moves := make([]Move, b.size)
		for i := range moves {
			moves[i] = Move{Row: l.row + i*l.dRow, Col: l.col + i*l.dCol}
		}
		p, _ := owner.Player()
		return moves, p, true
	}
	return nil, 0, false
}

func outcomeFor(c Cell) Outcome {
	if c == CellX {
		return OutcomeXWon
	}
	return OutcomeOWon
}
