package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var errBadInput = errors.New("expected two numbers: row and column")

type player interface {
	Move(game *ttt.Game) (ttt.Move, error)
}

type computer struct {
	engine *minimax.Engine
	render *renderer
}

func (c *computer) Move(game *ttt.Game) (ttt.Move, error) {
	side := game.ToMove()
	m, ok, err := c.engine.Move(game.Board(), side)
	if err != nil {
		return ttt.Move{}, err
	}
	if !ok {
		return ttt.Move{}, fmt.Errorf("no move for %v on %s", side, game.Board().Notation())
	}
	c.render.Printf("Computer (%s) placed at %d, %d\n", c.render.cell(side.Cell(), false), m.Row, m.Col)
	return m, nil
}

type human struct {
	in     *bufio.Scanner
	render *renderer
}

func (h *human) Move(game *ttt.Game) (ttt.Move, error) {
	for {
		h.render.Printf("Enter your move (row and column): ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return ttt.Move{}, err
			}
			return ttt.Move{}, io.EOF
		}

		m, err := parseMove(h.in.Text())
		if err != nil {
			h.render.Warn(err)
			continue
		}
		return m, nil
	}
}

// Accepts "row col" or "row,col"
func parseMove(s string) (ttt.Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return ttt.Move{}, errBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return ttt.Move{}, errBadInput
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return ttt.Move{}, errBadInput
	}
	return ttt.NewMove(row, col), nil
}

// Play a single game until it ends. Illegal moves (out of the board, occupied
// cell) are reported and the same player is asked again.
func playGame(game *ttt.Game, players map[ttt.Player]player, render *renderer) error {
	for !game.IsTerminated() {
		render.Board(game.Board())
		side := game.ToMove()
		render.Printf("\n%s's turn:\n", render.cell(side.Cell(), false))

		m, err := players[side].Move(game)
		if err != nil {
			return err
		}

		if err := game.Play(m); err != nil {
			if errors.Is(err, ttt.ErrOutOfBounds) || errors.Is(err, ttt.ErrCellOccupied) {
				render.Warn(err)
				continue
			}
			return err
		}
	}

	render.Printf("\n")
	render.Result(game)
	return nil
}
