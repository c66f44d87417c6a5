package eventtype

import (
	"errors"
	"strings"
	"time"

	"slotwise/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("event type name cannot be empty")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidStep     = errors.New("slot step must be positive")
	ErrInvalidBuffer   = errors.New("buffers cannot be negative")
	ErrInvalidNotice   = errors.New("minimum notice cannot be negative")
	ErrInvalidCap      = errors.New("max bookings per day must be positive when set")
)

// EventType is a bookable meeting definition: duration, slot step, buffers,
// minimum notice, optional daily cap, and an optional link to a specific
// schedule (nil falls back to the host's default schedule).
type EventType struct {
	id                   uuid.UUID
	hostID               uuid.UUID
	name                 string
	durationMin          int
	slotStepMin          int // 0 means "same as duration"
	bufferBeforeMin      int
	bufferAfterMin       int
	minimumNoticeMin     int
	maxPerDay            *int
	scheduleID           *uuid.UUID
	requiresConfirmation bool
	active               bool
	createdAt            time.Time
	updatedAt            time.Time
}

type Params struct {
	Name                 string
	DurationMin          int
	SlotStepMin          int
	BufferBeforeMin      int
	BufferAfterMin       int
	MinimumNoticeMin     int
	MaxPerDay            *int
	ScheduleID           *uuid.UUID
	RequiresConfirmation bool
}

func NewEventType(hostID uuid.UUID, p Params) (*EventType, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return &EventType{
		id:                   uuid.New(),
		hostID:               hostID,
		name:                 strings.TrimSpace(p.Name),
		durationMin:          p.DurationMin,
		slotStepMin:          p.SlotStepMin,
		bufferBeforeMin:      p.BufferBeforeMin,
		bufferAfterMin:       p.BufferAfterMin,
		minimumNoticeMin:     p.MinimumNoticeMin,
		maxPerDay:            p.MaxPerDay,
		scheduleID:           p.ScheduleID,
		requiresConfirmation: p.RequiresConfirmation,
		active:               true,
	}, nil
}

func validate(p Params) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.DurationMin <= 0 {
		return ErrInvalidDuration
	}
	if p.SlotStepMin < 0 {
		return ErrInvalidStep
	}
	if p.BufferBeforeMin < 0 || p.BufferAfterMin < 0 {
		return ErrInvalidBuffer
	}
	if p.MinimumNoticeMin < 0 {
		return ErrInvalidNotice
	}
	if p.MaxPerDay != nil && *p.MaxPerDay <= 0 {
		return ErrInvalidCap
	}
	return nil
}

func ReconstructEventType(
	id, hostID uuid.UUID,
	name string,
	durationMin, slotStepMin, bufferBeforeMin, bufferAfterMin, minimumNoticeMin int,
	maxPerDay *int,
	scheduleID *uuid.UUID,
	requiresConfirmation, active bool,
	createdAt, updatedAt time.Time,
) *EventType {
	return &EventType{
		id:                   id,
		hostID:               hostID,
		name:                 name,
		durationMin:          durationMin,
		slotStepMin:          slotStepMin,
		bufferBeforeMin:      bufferBeforeMin,
		bufferAfterMin:       bufferAfterMin,
		minimumNoticeMin:     minimumNoticeMin,
		maxPerDay:            maxPerDay,
		scheduleID:           scheduleID,
		requiresConfirmation: requiresConfirmation,
		active:               active,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// Update replaces the mutable configuration wholesale.
func (e *EventType) Update(p Params) error {
	if err := validate(p); err != nil {
		return err
	}
	e.name = strings.TrimSpace(p.Name)
	e.durationMin = p.DurationMin
	e.slotStepMin = p.SlotStepMin
	e.bufferBeforeMin = p.BufferBeforeMin
	e.bufferAfterMin = p.BufferAfterMin
	e.minimumNoticeMin = p.MinimumNoticeMin
	e.maxPerDay = p.MaxPerDay
	e.scheduleID = p.ScheduleID
	e.requiresConfirmation = p.RequiresConfirmation
	return nil
}

func (e *EventType) Deactivate() {
	e.active = false
}

// Duration returns the booking length.
func (e *EventType) Duration() time.Duration {
	return time.Duration(e.durationMin) * time.Minute
}

// Step returns the slot start alignment, falling back to the duration.
func (e *EventType) Step() time.Duration {
	if e.slotStepMin > 0 {
		return time.Duration(e.slotStepMin) * time.Minute
	}
	return e.Duration()
}

// EngineConfig maps the event type onto the availability engine's knobs.
func (e *EventType) EngineConfig() availability.Config {
	cfg := availability.Config{
		Duration:      e.Duration(),
		Step:          e.Step(),
		BufferBefore:  time.Duration(e.bufferBeforeMin) * time.Minute,
		BufferAfter:   time.Duration(e.bufferAfterMin) * time.Minute,
		MinimumNotice: time.Duration(e.minimumNoticeMin) * time.Minute,
	}
	if e.maxPerDay != nil {
		cfg.MaxPerDay = *e.maxPerDay
	}
	return cfg
}

func (e *EventType) ID() uuid.UUID              { return e.id }
func (e *EventType) HostID() uuid.UUID          { return e.hostID }
func (e *EventType) Name() string               { return e.name }
func (e *EventType) DurationMin() int           { return e.durationMin }
func (e *EventType) SlotStepMin() int           { return e.slotStepMin }
func (e *EventType) BufferBeforeMin() int       { return e.bufferBeforeMin }
func (e *EventType) BufferAfterMin() int        { return e.bufferAfterMin }
func (e *EventType) MinimumNoticeMin() int      { return e.minimumNoticeMin }
func (e *EventType) MaxPerDay() *int            { return e.maxPerDay }
func (e *EventType) ScheduleID() *uuid.UUID     { return e.scheduleID }
func (e *EventType) RequiresConfirmation() bool { return e.requiresConfirmation }
func (e *EventType) IsActive() bool             { return e.active }
func (e *EventType) CreatedAt() time.Time       { return e.createdAt }
func (e *EventType) UpdatedAt() time.Time       { return e.updatedAt }
