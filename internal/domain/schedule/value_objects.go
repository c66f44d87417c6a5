package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidLocalTime = errors.New("invalid local time")
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Sunday) and 6")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrInvalidDate      = errors.New("invalid calendar date")
)

// LocalTime is a wall-clock time of day ("09:00") with no date or zone
// attached. Rules and overrides store local times; conversion to absolute
// instants happens per date through the schedule's location so that DST
// transitions on the specific date are honored.
type LocalTime struct {
	minutes int // minutes since midnight
}

func ParseLocalTime(s string) (LocalTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return LocalTime{}, fmt.Errorf("%w: %q", ErrInvalidLocalTime, s)
	}
	return LocalTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

func NewLocalTime(hour, minute int) (LocalTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return LocalTime{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidLocalTime, hour, minute)
	}
	return LocalTime{minutes: hour*60 + minute}, nil
}

func (lt LocalTime) Minutes() int {
	return lt.minutes
}

func (lt LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", lt.minutes/60, lt.minutes%60)
}

func (lt LocalTime) Before(other LocalTime) bool {
	return lt.minutes < other.minutes
}

// On converts the local time into an absolute instant on the given calendar
// date in loc. time.Date normalizes through the location's zone rules, so a
// date that crosses a DST transition resolves the way a wall clock would.
func (lt LocalTime) On(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, lt.minutes/60, lt.minutes%60, 0, 0, loc)
}

// Rule is one weekly recurring availability span: day-of-week plus a local
// start/end pair. A day may carry several rules (split shifts).
type Rule struct {
	Weekday time.Weekday
	Start   LocalTime
	End     LocalTime
}

func NewRule(weekday int, start, end LocalTime) (Rule, error) {
	if weekday < 0 || weekday > 6 {
		return Rule{}, ErrInvalidWeekday
	}
	if !start.Before(end) {
		return Rule{}, ErrInvalidTimeRange
	}
	return Rule{Weekday: time.Weekday(weekday), Start: start, End: end}, nil
}

// Override pins a specific calendar date: either blocked (no availability) or
// an explicit local span replacing that day's rules. An override fully
// supersedes rules for its date.
type Override struct {
	Date    Date
	Blocked bool
	Start   *LocalTime
	End     *LocalTime
}

func NewBlockedOverride(date Date) Override {
	return Override{Date: date, Blocked: true}
}

func NewOverride(date Date, start, end LocalTime) (Override, error) {
	if !start.Before(end) {
		return Override{}, ErrInvalidTimeRange
	}
	return Override{Date: date, Start: &start, End: &end}, nil
}

// Date is a zone-independent calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf returns the calendar date of an instant as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	local := t.In(loc)
	return Date{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Midnight returns the start of the date in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Next returns the following calendar date.
func (d Date) Next() Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Weekday returns the day of week of the date.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}
