package ttt

import (
	"fmt"
	"strings"
)

// Board coordinate, valid only when the target cell is empty
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

type MoveList struct {
	moves []Move
}

// Make a new move list with given capacity
func NewMoveList(capacity int) *MoveList {
	return &MoveList{moves: make([]Move, 0, capacity)}
}

// Reset the movelist, keeps the allocated memory
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
}

// Get the actual slice of moves
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

func (ml *MoveList) Size() int {
	return len(ml.moves)
}

func (ml *MoveList) AppendMove(m Move) {
	ml.moves = append(ml.moves, m)
}

func (ml *MoveList) Contains(m Move) bool {
	for _, mv := range ml.moves {
		if mv == m {
			return true
		}
	}
	return false
}

// Convert movelist into a string, moves separated with spaces
func (ml *MoveList) String() string {
	if len(ml.moves) == 0 {
		return "empty"
	}

	strMoves := make([]string, len(ml.moves))
	for i, m := range ml.moves {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}
