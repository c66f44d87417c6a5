package queries

import (
	"context"

	"slotwise/internal/infra"
	"slotwise/internal/infra/db"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

// CatalogQueries reads the host's bookable surface: event types and schedules.
type CatalogQueries interface {
	EventTypeByID(ctx context.Context, id uuid.UUID) (*EventTypeView, error)
	ListEventTypes(ctx context.Context, hostID uuid.UUID, activeOnly bool) ([]*EventTypeView, error)
	ScheduleByID(ctx context.Context, id uuid.UUID) (*ScheduleView, error)
	ListSchedules(ctx context.Context, hostID uuid.UUID) ([]*ScheduleView, error)
}

type catalogQueriesImpl struct {
	uow   shared.UnitOfWork
	reads ReadStore
}

func NewCatalogQueries(uow shared.UnitOfWork, reads ReadStore) CatalogQueries {
	return &catalogQueriesImpl{uow: uow, reads: reads}
}

func (uc *catalogQueriesImpl) EventTypeByID(ctx context.Context, id uuid.UUID) (*EventTypeView, error) {
	var view *EventTypeView
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snap, derr := uc.reads.EventTypeByID(ctx, dbtx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrEventTypeNotFound
			}
			return derr
		}
		view = eventTypeView(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *catalogQueriesImpl) ListEventTypes(ctx context.Context, hostID uuid.UUID, activeOnly bool) ([]*EventTypeView, error) {
	var views []*EventTypeView
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snaps, derr := uc.reads.EventTypesByHost(ctx, dbtx, hostID, activeOnly)
		if derr != nil {
			return derr
		}
		views = make([]*EventTypeView, 0, len(snaps))
		for _, s := range snaps {
			views = append(views, eventTypeView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (uc *catalogQueriesImpl) ScheduleByID(ctx context.Context, id uuid.UUID) (*ScheduleView, error) {
	var view *ScheduleView
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snap, derr := uc.reads.ScheduleByID(ctx, dbtx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrScheduleNotFound
			}
			return derr
		}
		view = scheduleView(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *catalogQueriesImpl) ListSchedules(ctx context.Context, hostID uuid.UUID) ([]*ScheduleView, error) {
	var views []*ScheduleView
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snaps, derr := uc.reads.SchedulesByHost(ctx, dbtx, hostID)
		if derr != nil {
			return derr
		}
		views = make([]*ScheduleView, 0, len(snaps))
		for _, s := range snaps {
			views = append(views, scheduleView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
