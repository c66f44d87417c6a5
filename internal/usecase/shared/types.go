package shared

import (
	"time"

	"slotwise/internal/domain/availability"
	"slotwise/internal/domain/booking"
	"slotwise/internal/domain/eventtype"
	"slotwise/internal/domain/schedule"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations.

type EventTypeSnapshot struct {
	ID                   uuid.UUID
	HostID               uuid.UUID
	Name                 string
	DurationMin          int
	SlotStepMin          int
	BufferBeforeMin      int
	BufferAfterMin       int
	MinimumNoticeMin     int
	MaxPerDay            *int
	ScheduleID           *uuid.UUID
	RequiresConfirmation bool
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (s *EventTypeSnapshot) ToDomain() *eventtype.EventType {
	return eventtype.ReconstructEventType(
		s.ID, s.HostID, s.Name,
		s.DurationMin, s.SlotStepMin, s.BufferBeforeMin, s.BufferAfterMin, s.MinimumNoticeMin,
		s.MaxPerDay, s.ScheduleID,
		s.RequiresConfirmation, s.Active,
		s.CreatedAt, s.UpdatedAt,
	)
}

type ScheduleSnapshot struct {
	ID        uuid.UUID
	HostID    uuid.UUID
	Name      string
	Timezone  string
	IsDefault bool
	Rules     []RuleRow
	Overrides []OverrideRow
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RuleRow struct {
	Weekday int
	Start   string // "15:04"
	End     string
}

type OverrideRow struct {
	Date    string // "2006-01-02"
	Blocked bool
	Start   *string
	End     *string
}

// Resolved converts the stored rows into the engine's resolved-schedule form.
func (s *ScheduleSnapshot) Resolved() (schedule.Resolved, error) {
	rules := make([]schedule.Rule, 0, len(s.Rules))
	for _, r := range s.Rules {
		start, err := schedule.ParseLocalTime(r.Start)
		if err != nil {
			return schedule.Resolved{}, err
		}
		end, err := schedule.ParseLocalTime(r.End)
		if err != nil {
			return schedule.Resolved{}, err
		}
		rule, err := schedule.NewRule(r.Weekday, start, end)
		if err != nil {
			return schedule.Resolved{}, err
		}
		rules = append(rules, rule)
	}

	overrides := make([]schedule.Override, 0, len(s.Overrides))
	for _, o := range s.Overrides {
		date, err := schedule.ParseDate(o.Date)
		if err != nil {
			return schedule.Resolved{}, err
		}
		if o.Blocked || o.Start == nil || o.End == nil {
			overrides = append(overrides, schedule.NewBlockedOverride(date))
			continue
		}
		start, err := schedule.ParseLocalTime(*o.Start)
		if err != nil {
			return schedule.Resolved{}, err
		}
		end, err := schedule.ParseLocalTime(*o.End)
		if err != nil {
			return schedule.Resolved{}, err
		}
		override, err := schedule.NewOverride(date, start, end)
		if err != nil {
			return schedule.Resolved{}, err
		}
		overrides = append(overrides, override)
	}

	agg := schedule.ReconstructSchedule(
		s.ID, s.HostID, s.Name, s.Timezone, s.IsDefault,
		rules, overrides, s.CreatedAt, s.UpdatedAt,
	)
	return agg.Resolved()
}

type BookingSnapshot struct {
	ID              uuid.UUID
	Reference       string
	HostID          uuid.UUID
	EventTypeID     uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestTimezone   string
	StartTime       time.Time
	EndTime         time.Time
	Status          string
	Notes           string
	Answers         booking.Answers
	Location        string
	ExternalEventID string
	RescheduledFrom *uuid.UUID
	CancelReason    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *BookingSnapshot) Interval() availability.Interval {
	return availability.Interval{Start: s.StartTime, End: s.EndTime}
}
