package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/muesli/termenv"
)

// Terminal output of the game, colours are dropped when the writer
// is not a terminal
type renderer struct {
	out *termenv.Output
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{out: termenv.NewOutput(w)}
}

func (r *renderer) cell(c ttt.Cell, highlight bool) string {
	style := r.out.String(string(c.Rune()))
	switch c {
	case ttt.CellX:
		style = style.Foreground(r.out.Color("#E88388")).Bold()
	case ttt.CellO:
		style = style.Foreground(r.out.Color("#66C2CD")).Bold()
	default:
		style = style.Faint()
	}
	if highlight {
		style = style.Reverse()
	}
	return style.String()
}

// Board with row and column coordinates, the winning line is highlighted
func (r *renderer) Board(b *ttt.Board) {
	size := b.Size()
	line, _, won := ttt.WinningLine(b)
	onLine := make(map[ttt.Move]bool, len(line))
	if won {
		for _, m := range line {
			onLine[m] = true
		}
	}

	width := len(strconv.Itoa(size - 1))
	sb := strings.Builder{}
	sb.WriteString(strings.Repeat(" ", width+2))
	for col := range size {
		fmt.Fprintf(&sb, "%-*d ", width+1, col)
	}
	sb.WriteByte('\n')

	for row := range size {
		fmt.Fprintf(&sb, "%*d  ", width, row)
		for col := range size {
			sb.WriteString(r.cell(b.At(row, col), onLine[ttt.NewMove(row, col)]))
			sb.WriteString(strings.Repeat(" ", width+1))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.out, sb.String())
}

func (r *renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *renderer) Warn(err error) {
	fmt.Fprintln(r.out, r.out.String("Invalid move: "+err.Error()).Foreground(r.out.Color("#DBAB79")))
}

func (r *renderer) Result(game *ttt.Game) {
	r.Board(game.Board())
	if winner, ok := game.Winner(); ok {
		fmt.Fprintf(r.out, "%s wins!\n", r.cell(winner.Cell(), false))
	} else {
		fmt.Fprintln(r.out, "The game is a draw!")
	}
	fmt.Fprintf(r.out, "The first player was: %s\n", r.cell(game.FirstPlayer().Cell(), false))
}

func (r *renderer) Summary(s bench.VersusSummaryInfo) {
	bold := func(v int) string {
		return r.out.String(strconv.Itoa(v)).Bold().String()
	}
	fmt.Fprintf(r.out, "games: %s, %s (X) wins: %s, %s (O) wins: %s, draws: %s\n",
		bold(s.TotalGames), s.P1Name, bold(s.P1Wins), s.P2Name, bold(s.P2Wins), bold(s.Draws))
	fmt.Fprintf(r.out, "first to move wins: %s, second to move wins: %s\n",
		bold(s.FirstToMoveWins), bold(s.SecondToMoveWins))
}
