package repository

import (
	"context"

	"slotwise/internal/domain/eventtype"
	"slotwise/internal/infra"
	"slotwise/internal/infra/db"

	"github.com/google/uuid"
)

type EventTypeRepository struct{}

func NewEventTypeRepository() *EventTypeRepository {
	return &EventTypeRepository{}
}

func (r *EventTypeRepository) Create(ctx context.Context, dbtx db.DBTX, e *eventtype.EventType) (uuid.UUID, error) {
	const query = `
		INSERT INTO event_types (
			id, host_id, name, duration_min, slot_step_min,
			buffer_before_min, buffer_after_min, minimum_notice_min,
			max_per_day, schedule_id, requires_confirmation, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		e.ID(), e.HostID(), e.Name(), e.DurationMin(), e.SlotStepMin(),
		e.BufferBeforeMin(), e.BufferAfterMin(), e.MinimumNoticeMin(),
		e.MaxPerDay(), e.ScheduleID(), e.RequiresConfirmation(), e.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create event type", err)
	}
	return id, nil
}

func (r *EventTypeRepository) Update(ctx context.Context, dbtx db.DBTX, e *eventtype.EventType) error {
	const query = `
		UPDATE event_types
		SET name = $2, duration_min = $3, slot_step_min = $4,
		    buffer_before_min = $5, buffer_after_min = $6, minimum_notice_min = $7,
		    max_per_day = $8, schedule_id = $9, requires_confirmation = $10,
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		e.ID(), e.Name(), e.DurationMin(), e.SlotStepMin(),
		e.BufferBeforeMin(), e.BufferAfterMin(), e.MinimumNoticeMin(),
		e.MaxPerDay(), e.ScheduleID(), e.RequiresConfirmation(),
	)
	if err != nil {
		return wrapPgErr("failed to update event type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event type not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventTypeRepository) SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE event_types SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return wrapPgErr("failed to set event type active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event type not found", nil, infra.KindNotFound)
	}
	return nil
}
