package bench

import (
	"github.com/rs/zerolog"
)

// Receives the arena events. Every worker gets its own clone,
// so the callbacks of one listener are called from a single goroutine,
// except Summary, called once after all workers finish.
type ListenerLike interface {
	OnGameStart(info VersusWorkerInfo)
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(info VersusSummaryInfo)
	Clone() ListenerLike
}

// Does nothing
type DefaultListener struct{}

func (DefaultListener) OnGameStart(VersusWorkerInfo)    {}
func (DefaultListener) OnMoveMade(VersusWorkerInfo)     {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}
func (d DefaultListener) Clone() ListenerLike           { return d }

// Writes the arena progress to a zerolog logger: every game at Debug,
// the worker totals at Info
type LogListener struct {
	DefaultListener
	logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Int("moves", info.GameMoveNum).
		Stringer("outcome", info.Outcome).
		Str("board", info.Board.Notation()).
		Msg("game finished")
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.logger.Info().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker finished")
}

func (l *LogListener) Clone() ListenerLike {
	return &LogListener{logger: l.logger}
}
