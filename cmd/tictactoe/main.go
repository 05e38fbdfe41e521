package main

/*

Tic-tac-toe on an N x N board against a minimax engine.

Modes:
  - hvc:   human vs computer, moves are read from stdin as "row col"
  - cvc:   computer vs computer, each side with its own search depth
  - arena: a series of computer games played on parallel workers

*/

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/rs/zerolog"
)

var (
	modeFlag     = flag.String("mode", "hvc", "game mode: hvc, cvc or arena")
	sizeFlag     = flag.Int("size", 3, "board size N")
	depthXFlag   = flag.Int("depth-x", minimax.DefaultDepth, "search depth of the X engine")
	depthOFlag   = flag.Int("depth-o", minimax.DefaultDepth, "search depth of the O engine")
	tieBreakFlag = flag.String("tiebreak", "first", "choice between equally scored moves: first or random")
	memoFlag     = flag.String("memo", "bounded", "memo policy: bounded, search, legacy or off")
	humanFlag    = flag.String("human", "x", "side played by the human in hvc mode: x or o")
	firstFlag    = flag.String("first", "", "side making the first move: x, o or random (default: random, alternate in the arena)")
	gamesFlag    = flag.Int("games", 10, "number of arena games")
	workersFlag  = flag.Int("workers", 2, "number of arena workers")
	verboseFlag  = flag.Bool("verbose", false, "log every search")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *verboseFlag {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, logger); err != nil && !errors.Is(err, io.EOF) {
		logger.Error().Err(err).Msg("tictactoe")
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	tieBreak, err := minimax.ParseTieBreak(*tieBreakFlag)
	if err != nil {
		return err
	}
	memo, err := minimax.ParseMemoPolicy(*memoFlag)
	if err != nil {
		return err
	}

	newEngine := func(depth int, side string) *minimax.Engine {
		engine := minimax.NewEngine(minimax.DefaultConfig().
			SetDepth(depth).
			SetTieBreak(tieBreak).
			SetMemo(memo))
		engine.SetLogger(logger.With().Str("engine", side).Logger())
		return engine
	}
	engineX := newEngine(*depthXFlag, "x")
	engineO := newEngine(*depthOFlag, "o")
	logger.Debug().Stringer("x", engineX.Config()).Stringer("o", engineO.Config()).Msg("engines")

	render := newRenderer(out)
	rng := minimax.NewRand(minimax.SeedGeneratorFn())

	switch strings.ToLower(*modeFlag) {
	case "hvc":
		humanSide, ok := parseSide(*humanFlag)
		if !ok {
			return fmt.Errorf("invalid -human %q", *humanFlag)
		}
		first, err := firstPlayer(*firstFlag, rng)
		if err != nil {
			return err
		}
		game, err := ttt.NewGame(*sizeFlag, first)
		if err != nil {
			return err
		}

		players := map[ttt.Player]player{
			ttt.PlayerX: &computer{engine: engineX, render: render},
			ttt.PlayerO: &computer{engine: engineO, render: render},
		}
		players[humanSide] = &human{in: bufio.NewScanner(in), render: render}
		return playGame(game, players, render)

	case "cvc":
		first, err := firstPlayer(*firstFlag, rng)
		if err != nil {
			return err
		}
		game, err := ttt.NewGame(*sizeFlag, first)
		if err != nil {
			return err
		}

		players := map[ttt.Player]player{
			ttt.PlayerX: &computer{engine: engineX, render: render},
			ttt.PlayerO: &computer{engine: engineO, render: render},
		}
		return playGame(game, players, render)

	case "arena":
		policy, err := firstMoverPolicy(*firstFlag)
		if err != nil {
			return err
		}

		arena := bench.NewVersusArena(*sizeFlag, engineX, engineO).
			WithContext(ctx).
			SetLogger(logger).
			SetNames(fmt.Sprintf("depth%d", *depthXFlag), fmt.Sprintf("depth%d", *depthOFlag)).
			SetFirstMover(policy).
			Setup(*gamesFlag, *workersFlag)

		summary, err := arena.Run(bench.NewLogListener(logger))
		render.Summary(summary)
		return err
	}

	return fmt.Errorf("unknown -mode %q", *modeFlag)
}

func parseSide(s string) (ttt.Player, bool) {
	r := []rune(strings.TrimSpace(s))
	if len(r) != 1 {
		return 0, false
	}
	return ttt.PlayerFromRune(r[0])
}

func firstPlayer(s string, rng minimax.RandSource) (ttt.Player, error) {
	if s == "" || strings.EqualFold(s, "random") {
		if rng.Intn(2) == 0 {
			return ttt.PlayerX, nil
		}
		return ttt.PlayerO, nil
	}
	if p, ok := parseSide(s); ok {
		return p, nil
	}
	return 0, fmt.Errorf("invalid -first %q", s)
}

// Player 1 of the arena is X
func firstMoverPolicy(s string) (bench.FirstMoverPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alternate":
		return bench.FirstAlternate, nil
	case "random":
		return bench.FirstRandom, nil
	case "x":
		return bench.FirstPlayer1, nil
	case "o":
		return bench.FirstPlayer2, nil
	}
	return bench.FirstAlternate, fmt.Errorf("invalid -first %q", s)
}
