package bench

import (
	"context"
	"fmt"
	"sync"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, plays a series of games between two
minimax engine configurations. Player 1 always plays X, player 2 plays O,
the first mover changes according to the FirstMoverPolicy.
*/

type VersusArena struct {
	VersusArenaStats
	Player1    *minimax.Engine
	Player2    *minimax.Engine
	P1Name     string
	P2Name     string
	NGames     int
	NWorkers   int
	BoardSize  int
	FirstMover FirstMoverPolicy
	logger     zerolog.Logger
	ctx        context.Context
	group      *errgroup.Group
	mu         sync.Mutex
	listener   ListenerLike
}

func NewVersusArena(boardSize int, engine1, engine2 *minimax.Engine) *VersusArena {
	return &VersusArena{
		Player1:   engine1,
		Player2:   engine2,
		P1Name:    "player1",
		P2Name:    "player2",
		NGames:    100,
		NWorkers:  2,
		BoardSize: boardSize,
		logger:    zerolog.Nop(),
		ctx:       context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) SetLogger(logger zerolog.Logger) *VersusArena {
	va.logger = logger
	return va
}

func (va *VersusArena) SetNames(p1, p2 string) *VersusArena {
	va.P1Name = p1
	va.P2Name = p2
	return va
}

func (va *VersusArena) SetFirstMover(policy FirstMoverPolicy) *VersusArena {
	va.FirstMover = policy
	return va
}

func (va *VersusArena) Setup(nGames, nWorkers int) *VersusArena {
	va.NGames = nGames
	va.NWorkers = max(1, nWorkers)
	return va
}

// Start equally distributed work between the workers, doesn't block.
// Call Wait to get the summary.
func (va *VersusArena) Start(listener ListenerLike) error {
	if _, err := ttt.NewBoard(va.BoardSize); err != nil {
		return err
	}
	if listener == nil {
		listener = DefaultListener{}
	}

	va.VersusArenaStats.reset()
	group, ctx := errgroup.WithContext(va.ctx)
	va.mu.Lock()
	va.group = group
	va.listener = listener
	va.mu.Unlock()

	nWorkers := max(1, va.NWorkers)
	nGames := va.NGames / nWorkers
	rest := va.NGames % nWorkers
	offset := 0

	for i := range nWorkers {
		games := nGames
		if rest > 0 {
			games++
			rest--
		}

		// Always use a clone, engines are not safe for concurrent use
		w := &versusWorker{
			arena:    va,
			id:       i,
			offset:   offset,
			nGames:   games,
			p1:       va.Player1.Clone(),
			p2:       va.Player2.Clone(),
			listener: listener.Clone(),
			rand:     minimax.NewRand(minimax.SeedGeneratorFn() + int64(i)),
		}
		offset += games
		group.Go(func() error {
			return w.run(ctx)
		})
	}
	return nil
}

// Wait for all workers, returns the summary of the played games and
// the first error of the workers (or the context's)
func (va *VersusArena) Wait() (VersusSummaryInfo, error) {
	va.mu.Lock()
	group, listener := va.group, va.listener
	va.mu.Unlock()

	if group == nil {
		return VersusSummaryInfo{}, fmt.Errorf("bench: arena not started")
	}

	err := group.Wait()
	summary := va.Summary()

	event := va.logger.Info()
	if err != nil {
		event = va.logger.Warn().Err(err)
	}
	event.
		Str("player1", va.P1Name).
		Str("player2", va.P2Name).
		Int("games", summary.TotalGames).
		Int("p1_wins", summary.P1Wins).
		Int("p2_wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Int("first_to_move_wins", summary.FirstToMoveWins).
		Int("second_to_move_wins", summary.SecondToMoveWins).
		Msg("arena finished")

	listener.Summary(summary)
	return summary, err
}

// Start and wait
func (va *VersusArena) Run(listener ListenerLike) (VersusSummaryInfo, error) {
	if err := va.Start(listener); err != nil {
		return VersusSummaryInfo{}, err
	}
	return va.Wait()
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          max(1, va.NWorkers),
		P1Name:           va.P1Name,
		P2Name:           va.P2Name,
	}
}

// Decide if player 1 makes the first move of the game with given index
func (va *VersusArena) p1First(game int, r minimax.RandSource) bool {
	switch va.FirstMover {
	case FirstRandom:
		return r.Intn(2) == 0
	case FirstPlayer1:
		return true
	case FirstPlayer2:
		return false
	}
	return game%2 == 0
}

type versusWorker struct {
	arena    *VersusArena
	id       int
	offset   int
	nGames   int
	p1, p2   *minimax.Engine
	listener ListenerLike
	rand     minimax.RandSource
	local    VersusArenaStats
}

func (w *versusWorker) run(ctx context.Context) error {
	for i := range w.nGames {
		p1First := w.arena.p1First(w.offset+i, w.rand)
		outcome, err := w.playGame(ctx, i, p1First)
		if err != nil {
			return err
		}

		w.arena.add(outcome, p1First)
		w.local.add(outcome, p1First)
	}

	w.listener.OnFinishedWork(w.info(w.nGames, nil))
	return nil
}

// Play a single game, player 1 is X. Cancellation is checked between moves.
func (w *versusWorker) playGame(ctx context.Context, index int, p1First bool) (GameOutcome, error) {
	first := ttt.PlayerO
	if p1First {
		first = ttt.PlayerX
	}

	game, err := ttt.NewGame(w.arena.BoardSize, first)
	if err != nil {
		return GameOutcome{}, err
	}
	w.listener.OnGameStart(w.info(index, game))

	for !game.IsTerminated() {
		if err := ctx.Err(); err != nil {
			return GameOutcome{}, err
		}

		engine := w.p1
		if game.ToMove() == ttt.PlayerO {
			engine = w.p2
		}

		m, ok, err := engine.Move(game.Board(), game.ToMove())
		if err != nil {
			return GameOutcome{}, fmt.Errorf("bench: worker %d, game %d: %w", w.id, w.offset+index, err)
		}
		if !ok {
			return GameOutcome{}, fmt.Errorf("bench: no move on %s", game.Board().Notation())
		}
		if err := game.Play(m); err != nil {
			return GameOutcome{}, err
		}
		w.listener.OnMoveMade(w.info(index, game))
	}

	w.listener.OnFinishedGame(w.info(index+1, game))
	return computeOutcome(game), nil
}

func (w *versusWorker) info(finished int, game *ttt.Game) VersusWorkerInfo {
	info := VersusWorkerInfo{
		WorkerID:         w.id,
		NGames:           w.nGames,
		FinishedGames:    finished,
		P1Wins:           w.local.P1Wins(),
		P2Wins:           w.local.P2Wins(),
		Draws:            w.local.Draws(),
		FirstToMoveWins:  w.local.FirstToMoveWins(),
		SecondToMoveWins: w.local.SecondToMoveWins(),
		P1Name:           w.arena.P1Name,
		P2Name:           w.arena.P2Name,
	}
	if game != nil {
		info.Moves = game.History()
		info.GameMoveNum = game.MoveCount()
		info.Board = game.Board()
		info.Outcome = game.Outcome()
	}
	return info
}
