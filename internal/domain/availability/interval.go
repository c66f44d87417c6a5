package availability

import "time"

// Interval is a half-open [Start, End) span of absolute instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

func (iv Interval) IsZero() bool {
	return iv.Start.IsZero() && iv.End.IsZero()
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not count as overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Expand widens the interval by the given buffers. Buffers apply to the
// obstruction being tested against, never to the candidate slot, so a slot
// starting exactly at a booking's end is excluded when after > 0.
func (iv Interval) Expand(before, after time.Duration) Interval {
	return Interval{
		Start: iv.Start.Add(-before),
		End:   iv.End.Add(after),
	}
}
