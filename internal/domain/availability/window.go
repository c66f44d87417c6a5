package availability

import (
	"slotwise/internal/domain/schedule"
)

// WindowsForDate resolves a host's bookable windows on one calendar date as
// absolute intervals.
//
// An override for the date supersedes the weekly rules entirely: a blocked
// override yields no windows, an explicit one yields exactly that span.
// Without an override every rule matching the date's weekday contributes one
// window. Local times convert through the schedule's location, so the result
// is correct on DST transition dates.
func WindowsForDate(date schedule.Date, resolved schedule.Resolved) []Interval {
	loc := resolved.Location

	if o, ok := resolved.OverrideFor(date); ok {
		if o.Blocked || o.Start == nil || o.End == nil {
			return nil
		}
		return []Interval{{
			Start: o.Start.On(date.Year, date.Month, date.Day, loc),
			End:   o.End.On(date.Year, date.Month, date.Day, loc),
		}}
	}

	var windows []Interval
	for _, rule := range resolved.RulesFor(date) {
		windows = append(windows, Interval{
			Start: rule.Start.On(date.Year, date.Month, date.Day, loc),
			End:   rule.End.On(date.Year, date.Month, date.Day, loc),
		})
	}
	return windows
}
