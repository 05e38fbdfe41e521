package minimax

import (
	"time"
)

type searchTimer struct {
	start time.Time
}

func newSearchTimer() *searchTimer {
	return &searchTimer{time.Now()}
}

// Set the 'start' as now
func (t *searchTimer) Reset() {
	t.start = time.Now()
}

// In milliseconds, never less than 1
func (t *searchTimer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}
