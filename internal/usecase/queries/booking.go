package queries

import (
	"context"

	"slotwise/internal/infra"
	"slotwise/internal/infra/db"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetByReference(ctx context.Context, reference string) (*BookingView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, filter BookingFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	uow   shared.UnitOfWork
	reads ReadStore
}

func NewBookingQueries(uow shared.UnitOfWork, reads ReadStore) BookingQueries {
	return &bookingQueriesImpl{uow: uow, reads: reads}
}

func (uc *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snap, derr := uc.reads.BookingByID(ctx, dbtx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return derr
		}
		view = bookingView(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *bookingQueriesImpl) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	var view *BookingView
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snap, derr := uc.reads.BookingByReference(ctx, dbtx, reference)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return derr
		}
		view = bookingView(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *bookingQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID, filter BookingFilter) ([]*BookingView, error) {
	var views []*BookingView
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snaps, derr := uc.reads.BookingsByHost(ctx, dbtx, hostID, filter)
		if derr != nil {
			return derr
		}
		views = make([]*BookingView, 0, len(snaps))
		for _, s := range snaps {
			views = append(views, bookingView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
