package availability

import "time"

// IsFree reports whether the slot avoids every busy interval once each
// obstruction is widened by the buffers. The candidate itself is never
// expanded; with zero-width buffers, touching endpoints do not conflict.
func IsFree(slot Interval, busy []Interval, bufferBefore, bufferAfter time.Duration) bool {
	for _, b := range busy {
		if slot.Overlaps(b.Expand(bufferBefore, bufferAfter)) {
			return false
		}
	}
	return true
}
