package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/rs/zerolog"
)

// Minimax search engine with alpha-beta pruning and a memo table.
// Not safe for concurrent use, clone it for every goroutine.
type Engine struct {
	config   *Config
	memo     *Memo
	active   *Memo // memo used by the running search, nil when disabled
	stats    SearchStats
	listener *StatsListener
	rand     RandSource
	logger   zerolog.Logger
	timer    *searchTimer
	lists    []*ttt.MoveList // move lists reused per ply
}

// Create new engine, nil config means DefaultConfig
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}

	return &Engine{
		config:   config,
		memo:     NewMemo(),
		listener: &StatsListener{},
		rand:     NewRand(SeedGeneratorFn()),
		logger:   zerolog.Nop(),
		timer:    newSearchTimer(),
	}
}

func (e *Engine) Config() *Config {
	return e.config
}

func (e *Engine) SetConfig(config *Config) {
	e.config = config
}

// Set the random source used by TieBreakRandom
func (e *Engine) SetRand(r RandSource) {
	if r != nil {
		e.rand = r
	}
}

func (e *Engine) SetLogger(logger zerolog.Logger) {
	e.logger = logger
}

func (e *Engine) Logger() *zerolog.Logger {
	return &e.logger
}

func (e *Engine) StatsListener() *StatsListener {
	return e.listener
}

func (e *Engine) SetListener(listener StatsListener) {
	*e.listener = listener
}

func (e *Engine) ResetListener() {
	e.listener.OnRootMove(nil).OnStop(nil)
}

// Statistics of the last search
func (e *Engine) Stats() SearchStats {
	return e.stats
}

// Memo of the last search, the shared one for MemoLegacy,
// nil if memoization is turned off
func (e *Engine) Memo() *Memo {
	switch e.config.Memo {
	case MemoOff:
		return nil
	case MemoLegacy:
		return sharedMemo
	}
	return e.memo
}

// Copy of the engine with the same configuration and logger,
// but with its own memo, listener and random generator
func (e *Engine) Clone() *Engine {
	clone := NewEngine(e.config.Clone())
	clone.logger = e.logger
	return clone
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine={Config=%v, Stats:{nodes=%d, memohits=%d, cutoffs=%d}}",
		e.config, e.stats.Nodes, e.stats.MemoHits, e.stats.Cutoffs)
}
