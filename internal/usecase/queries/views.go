package queries

import (
	"time"

	"slotwise/internal/domain/booking"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DaySlotsView is one local calendar day of the availability response. Days
// with no free slots are present with an empty slot list, so consumers can
// render the full range without diffing dates.
type DaySlotsView struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

type BookingView struct {
	ID              uuid.UUID       `json:"id"`
	Reference       string          `json:"reference"`
	HostID          uuid.UUID       `json:"host_id"`
	EventTypeID     uuid.UUID       `json:"event_type_id"`
	GuestName       string          `json:"guest_name"`
	GuestEmail      string          `json:"guest_email"`
	GuestTimezone   string          `json:"guest_timezone,omitempty"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	Answers         booking.Answers `json:"answers"`
	Location        string          `json:"location,omitempty"`
	RescheduledFrom *uuid.UUID      `json:"rescheduled_from,omitempty"`
	CancelReason    string          `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type EventTypeView struct {
	ID                   uuid.UUID  `json:"id"`
	HostID               uuid.UUID  `json:"host_id"`
	Name                 string     `json:"name"`
	DurationMin          int        `json:"duration_min"`
	SlotStepMin          int        `json:"slot_step_min"`
	BufferBeforeMin      int        `json:"buffer_before_min"`
	BufferAfterMin       int        `json:"buffer_after_min"`
	MinimumNoticeMin     int        `json:"minimum_notice_min"`
	MaxPerDay            *int       `json:"max_per_day,omitempty"`
	ScheduleID           *uuid.UUID `json:"schedule_id,omitempty"`
	RequiresConfirmation bool       `json:"requires_confirmation"`
	Active               bool       `json:"active"`
}

type ScheduleRuleView struct {
	Weekday int    `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type ScheduleOverrideView struct {
	Date    string  `json:"date"`
	Blocked bool    `json:"blocked"`
	Start   *string `json:"start,omitempty"`
	End     *string `json:"end,omitempty"`
}

type ScheduleView struct {
	ID        uuid.UUID              `json:"id"`
	HostID    uuid.UUID              `json:"host_id"`
	Name      string                 `json:"name"`
	Timezone  string                 `json:"timezone"`
	IsDefault bool                   `json:"is_default"`
	Rules     []ScheduleRuleView     `json:"rules"`
	Overrides []ScheduleOverrideView `json:"overrides"`
}

func bookingView(s *shared.BookingSnapshot) *BookingView {
	return &BookingView{
		ID:              s.ID,
		Reference:       s.Reference,
		HostID:          s.HostID,
		EventTypeID:     s.EventTypeID,
		GuestName:       s.GuestName,
		GuestEmail:      s.GuestEmail,
		GuestTimezone:   s.GuestTimezone,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Status:          s.Status,
		Notes:           s.Notes,
		Answers:         s.Answers,
		Location:        s.Location,
		RescheduledFrom: s.RescheduledFrom,
		CancelReason:    s.CancelReason,
		CreatedAt:       s.CreatedAt,
	}
}

func eventTypeView(s *shared.EventTypeSnapshot) *EventTypeView {
	return &EventTypeView{
		ID:                   s.ID,
		HostID:               s.HostID,
		Name:                 s.Name,
		DurationMin:          s.DurationMin,
		SlotStepMin:          s.SlotStepMin,
		BufferBeforeMin:      s.BufferBeforeMin,
		BufferAfterMin:       s.BufferAfterMin,
		MinimumNoticeMin:     s.MinimumNoticeMin,
		MaxPerDay:            s.MaxPerDay,
		ScheduleID:           s.ScheduleID,
		RequiresConfirmation: s.RequiresConfirmation,
		Active:               s.Active,
	}
}

func scheduleView(s *shared.ScheduleSnapshot) *ScheduleView {
	rules := make([]ScheduleRuleView, 0, len(s.Rules))
	for _, r := range s.Rules {
		rules = append(rules, ScheduleRuleView{Weekday: r.Weekday, Start: r.Start, End: r.End})
	}
	overrides := make([]ScheduleOverrideView, 0, len(s.Overrides))
	for _, o := range s.Overrides {
		overrides = append(overrides, ScheduleOverrideView{Date: o.Date, Blocked: o.Blocked, Start: o.Start, End: o.End})
	}
	return &ScheduleView{
		ID:        s.ID,
		HostID:    s.HostID,
		Name:      s.Name,
		Timezone:  s.Timezone,
		IsDefault: s.IsDefault,
		Rules:     rules,
		Overrides: overrides,
	}
}
