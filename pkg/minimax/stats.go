package minimax

// Counters of a single search, reset at the beginning of every SelectMove call
type SearchStats struct {
	Nodes      uint64 `json:"nodes"`
	Leaves     uint64 `json:"leaves"`
	MemoHits   uint64 `json:"memo_hits"`
	MemoStores uint64 `json:"memo_stores"`
	Cutoffs    uint64 `json:"cutoffs"`
	MemoSize   int    `json:"memo_size"`
	TimeMs     int    `json:"time_ms"`
}

// Nodes per second
func (s SearchStats) Nps() uint64 {
	return s.Nodes * 1000 / uint64(max(s.TimeMs, 1))
}

func (s *SearchStats) reset() {
	*s = SearchStats{}
}
