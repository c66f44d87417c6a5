package commands

import (
	"context"

	"slotwise/internal/domain/eventtype"
	"slotwise/internal/infra"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpsertEventTypeRequest struct {
	HostID uuid.UUID
	Params eventtype.Params
}

type EventTypeCommands interface {
	Create(ctx context.Context, req UpsertEventTypeRequest) (uuid.UUID, error)
	Update(ctx context.Context, eventTypeID uuid.UUID, req UpsertEventTypeRequest) error
	Deactivate(ctx context.Context, eventTypeID, hostID uuid.UUID) error
}

type eventTypeUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewEventTypeCommands(uow shared.UnitOfWork) EventTypeCommands {
	return &eventTypeUseCaseImpl{uow: uow}
}

func (uc *eventTypeUseCaseImpl) Create(ctx context.Context, req UpsertEventTypeRequest) (uuid.UUID, error) {
	if err := uc.checkScheduleRef(ctx, req.HostID, req.Params.ScheduleID); err != nil {
		return uuid.Nil, err
	}

	entity, err := eventtype.NewEventType(req.HostID, req.Params)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.EventTypes().Create(ctx, tx.DB(), entity)
		return cerr
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *eventTypeUseCaseImpl) Update(ctx context.Context, eventTypeID uuid.UUID, req UpsertEventTypeRequest) error {
	if err := uc.checkScheduleRef(ctx, req.HostID, req.Params.ScheduleID); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().EventTypeByID(ctx, eventTypeID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrEventTypeNotFound
			}
			return derr
		}
		if snap.HostID != req.HostID {
			return errs.ErrNotAuthorized
		}

		entity := snap.ToDomain()
		if uerr := entity.Update(req.Params); uerr != nil {
			return errs.Mark(uerr, errs.ErrDomainValidationFailed)
		}
		return tx.EventTypes().Update(ctx, tx.DB(), entity)
	})
}

// Deactivate soft-disables the event type. Existing bookings stay untouched
// and keep occupying their slots; only new bookings are refused.
func (uc *eventTypeUseCaseImpl) Deactivate(ctx context.Context, eventTypeID, hostID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().EventTypeByID(ctx, eventTypeID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrEventTypeNotFound
			}
			return derr
		}
		if snap.HostID != hostID {
			return errs.ErrNotAuthorized
		}
		return tx.EventTypes().SetActive(ctx, tx.DB(), eventTypeID, false)
	})
}

// checkScheduleRef verifies an explicitly linked schedule exists and belongs
// to the same host. A nil link means "use the host's default schedule" and
// needs no check here.
func (uc *eventTypeUseCaseImpl) checkScheduleRef(ctx context.Context, hostID uuid.UUID, scheduleID *uuid.UUID) error {
	if scheduleID == nil {
		return nil
	}
	snap, err := uc.uow.CommandReads().ScheduleByID(ctx, *scheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrScheduleNotFound
		}
		return errs.Wrap(err, "failed to load schedule")
	}
	if snap.HostID != hostID {
		return errs.ErrNotAuthorized
	}
	return nil
}
