//go:build unit || e2e

package builder

import (
	reqdto "slotwise/internal/handler/dto/request"
	"slotwise/internal/usecase/queries"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventTypeBuilder struct {
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
}

func NewEventTypeBuilder() *EventTypeBuilder {
	return &EventTypeBuilder{
		ID:               uuid.New(),
		HostID:           uuid.New(),
		Name:             "Intro Call",
		DurationMin:      30,
		SlotStepMin:      30,
		MinimumNoticeMin: 60,
		Active:           true,
	}
}

func (e *EventTypeBuilder) With(mutate func(*EventTypeBuilder)) *EventTypeBuilder {
	mutate(e)
	return e
}

// Build methods
func (e *EventTypeBuilder) BuildUpsertRequestDTO() reqdto.UpsertEventTypeRequest {
	return reqdto.UpsertEventTypeRequest{
		Name:                 e.Name,
		DurationMin:          e.DurationMin,
		SlotStepMin:          e.SlotStepMin,
		BufferBeforeMin:      e.BufferBeforeMin,
		BufferAfterMin:       e.BufferAfterMin,
		MinimumNoticeMin:     e.MinimumNoticeMin,
		MaxPerDay:            e.MaxPerDay,
		ScheduleID:           e.ScheduleID,
		RequiresConfirmation: e.RequiresConfirmation,
	}
}

func (e *EventTypeBuilder) BuildView() *queries.EventTypeView {
	return &queries.EventTypeView{
		ID:                   e.ID,
		HostID:               e.HostID,
		Name:                 e.Name,
		DurationMin:          e.DurationMin,
		SlotStepMin:          e.SlotStepMin,
		BufferBeforeMin:      e.BufferBeforeMin,
		BufferAfterMin:       e.BufferAfterMin,
		MinimumNoticeMin:     e.MinimumNoticeMin,
		MaxPerDay:            e.MaxPerDay,
		ScheduleID:           e.ScheduleID,
		RequiresConfirmation: e.RequiresConfirmation,
		Active:               e.Active,
	}
}

func (e *EventTypeBuilder) BuildSnapshot() *shared.EventTypeSnapshot {
	return &shared.EventTypeSnapshot{
		ID:                   e.ID,
		HostID:               e.HostID,
		Name:                 e.Name,
		DurationMin:          e.DurationMin,
		SlotStepMin:          e.SlotStepMin,
		BufferBeforeMin:      e.BufferBeforeMin,
		BufferAfterMin:       e.BufferAfterMin,
		MinimumNoticeMin:     e.MinimumNoticeMin,
		MaxPerDay:            e.MaxPerDay,
		ScheduleID:           e.ScheduleID,
		RequiresConfirmation: e.RequiresConfirmation,
		Active:               e.Active,
	}
}

// Fluent builder methods
func (e *EventTypeBuilder) WithHostID(hostID uuid.UUID) *EventTypeBuilder {
	e.HostID = hostID
	return e
}

func (e *EventTypeBuilder) WithDuration(durationMin int) *EventTypeBuilder {
	e.DurationMin = durationMin
	return e
}

func (e *EventTypeBuilder) WithBuffers(beforeMin, afterMin int) *EventTypeBuilder {
	e.BufferBeforeMin = beforeMin
	e.BufferAfterMin = afterMin
	return e
}

func (e *EventTypeBuilder) WithMaxPerDay(n int) *EventTypeBuilder {
	e.MaxPerDay = &n
	return e
}

func (e *EventTypeBuilder) WithScheduleID(scheduleID uuid.UUID) *EventTypeBuilder {
	e.ScheduleID = &scheduleID
	return e
}

func (e *EventTypeBuilder) WithRequiresConfirmation() *EventTypeBuilder {
	e.RequiresConfirmation = true
	return e
}

func (e *EventTypeBuilder) AsInactive() *EventTypeBuilder {
	e.Active = false
	return e
}
