package availability

import (
	"slices"
	"time"

	"slotwise/internal/domain/schedule"
)

// Config carries the event-type parameters the engine honors.
type Config struct {
	Duration      time.Duration
	Step          time.Duration // defaults to Duration when zero
	BufferBefore  time.Duration
	BufferAfter   time.Duration
	MinimumNotice time.Duration
	MaxPerDay     int // 0 means uncapped
}

// Input is everything the computation depends on. Bookings are the host's
// existing active (confirmed or pending) bookings in range; they obstruct
// slots exactly like external busy time and additionally count toward the
// per-day cap.
type Input struct {
	From     time.Time
	To       time.Time
	Schedule schedule.Resolved
	Busy     []Interval
	Bookings []Interval
	Now      time.Time
}

// DaySlots is one local calendar day's free slots, chronologically ordered.
type DaySlots struct {
	Date  schedule.Date
	Slots []Interval
}

// FreeSlots computes the bookable slots for every calendar day of the range,
// observed in the schedule's timezone. Pure: no I/O, deterministic for fixed
// inputs including Now.
func FreeSlots(cfg Config, in Input) []DaySlots {
	step := cfg.Step
	if step <= 0 {
		step = cfg.Duration
	}

	loc := in.Schedule.Location
	obstructions := make([]Interval, 0, len(in.Busy)+len(in.Bookings))
	obstructions = append(obstructions, in.Busy...)
	obstructions = append(obstructions, in.Bookings...)

	earliestStart := in.Now.Add(cfg.MinimumNotice)

	var days []DaySlots
	// The range is half-open: a To falling exactly on midnight does not bring
	// its own (necessarily empty) day into the result.
	lastDate := schedule.DateOf(in.To.Add(-time.Nanosecond), loc)
	for date := schedule.DateOf(in.From, loc); !date.After(lastDate); date = date.Next() {
		day := DaySlots{Date: date}

		// Cap pre-check runs before any slot-level filtering: a day at its
		// booking cap is empty even if windows remain open.
		if cfg.MaxPerDay > 0 && bookingsOnDate(in.Bookings, date, loc) >= cfg.MaxPerDay {
			days = append(days, day)
			continue
		}

		for _, window := range WindowsForDate(date, in.Schedule) {
			for slot := range Tile(window, cfg.Duration, step) {
				if slot.Start.Before(in.From) || !slot.Start.Before(in.To) {
					continue
				}
				if !slot.Start.After(earliestStart) {
					continue
				}
				if !IsFree(slot, obstructions, cfg.BufferBefore, cfg.BufferAfter) {
					continue
				}
				day.Slots = append(day.Slots, slot)
			}
		}

		slices.SortFunc(day.Slots, func(a, b Interval) int {
			return a.Start.Compare(b.Start)
		})
		days = append(days, day)
	}
	return days
}

func bookingsOnDate(bookings []Interval, date schedule.Date, loc *time.Location) int {
	n := 0
	for _, b := range bookings {
		if schedule.DateOf(b.Start, loc) == date {
			n++
		}
	}
	return n
}
