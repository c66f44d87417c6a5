package availability

import (
	"iter"
	"time"
)

// Tile yields candidate slots of exactly duration within the window, starting
// at window.Start and advancing by step while the slot still fits. The
// sequence is lazy and restartable; step may be smaller than duration, which
// produces overlapping candidates on purpose (guests may pick any
// step-aligned start).
func Tile(window Interval, duration, step time.Duration) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		if duration <= 0 || step <= 0 {
			return
		}
		for start := window.Start; !start.Add(duration).After(window.End); start = start.Add(step) {
			if !yield(Interval{Start: start, End: start.Add(duration)}) {
				return
			}
		}
	}
}
