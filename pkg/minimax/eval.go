package minimax

import "github.com/IlikeChooros/go-minimax/pkg/ttt"

// Terminal-state heuristic: +10 if 'player' has won, -10 if the opponent has,
// 0 otherwise. Positions cut by the depth limit are neutral, there are no
// positional terms.
func Evaluate(b *ttt.Board, player ttt.Player) Score {
	winner, ok := ttt.IsTerminal(b).Winner()
	switch {
	case !ok:
		return NeutralScore
	case winner == player:
		return WinScore
	default:
		return LossScore
	}
}
