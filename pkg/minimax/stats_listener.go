package minimax

// Called after each root candidate is scored, receives the line and stats so far
type RootListenerFunc func(line RootLine, stats SearchStats)

// Called once the move is selected
type StopListenerFunc func(result SearchResult)

type StatsListener struct {
	// called after every root move is evaluated
	onRootMove RootListenerFunc

	// called when the search ends
	onStop StopListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach new root move callback
func (listener *StatsListener) OnRootMove(onRootMove RootListenerFunc) *StatsListener {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback, receives the full search result
func (listener *StatsListener) OnStop(onStop StopListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeRootMove(line RootLine, stats SearchStats) {
	if listener.onRootMove != nil {
		listener.onRootMove(line, stats)
	}
}

func (listener *StatsListener) invokeStop(result SearchResult) {
	if listener.onStop != nil {
		listener.onStop(result)
	}
}
