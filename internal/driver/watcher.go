package driver

// DefaultStableStreak is the number of consecutive generations with an
// unchanged population after which a run is considered stable.
const DefaultStableStreak = 20

// Watcher tracks how many consecutive generations kept the same live count.
// Only the population size is compared, so oscillators whose count changes
// are never reported as stable.
type Watcher struct {
	streak int
	limit  int
}

// NewWatcher returns a Watcher that reports stability after limit equal
// generations. Non-positive limits use DefaultStableStreak.
func NewWatcher(limit int) *Watcher {
	if limit <= 0 {
		limit = DefaultStableStreak
	}
	return &Watcher{limit: limit}
}

// Observe records one generation's population before and after advancing and
// reports whether the streak reached the limit. The streak stops growing at
// the limit and drops to zero whenever the counts differ.
func (w *Watcher) Observe(before, after int) bool {
	if before == after {
		if w.streak != w.limit {
			w.streak++
		}
	} else {
		w.streak = 0
	}
	return w.streak == w.limit
}

// Streak returns the current streak length.
func (w *Watcher) Streak() int { return w.streak }

// Limit returns the streak length that counts as stable.
func (w *Watcher) Limit() int { return w.limit }

// Stable reports whether the limit has been reached.
func (w *Watcher) Stable() bool { return w.streak == w.limit }

// Reset clears the streak.
func (w *Watcher) Reset() { w.streak = 0 }
