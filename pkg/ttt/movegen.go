package ttt

// Generate all empty cells as moves, in row-major order
func (b *Board) GenerateMoves() *MoveList {
	movelist := NewMoveList(len(b.cells))
	b.AppendMoves(movelist)
	return movelist
}

// Append all empty cells to the list, in row-major order.
// The list isn't cleared before appending.
func (b *Board) AppendMoves(movelist *MoveList) {
	for idx, c := range b.cells {
		if c == CellEmpty {
			movelist.AppendMove(Move{Row: idx / b.size, Col: idx % b.size})
		}
	}
}
