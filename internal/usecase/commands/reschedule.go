package commands

import (
	"context"
	"time"

	"slotwise/internal/domain/availability"
	"slotwise/internal/domain/booking"
	"slotwise/internal/infra"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type RescheduleBookingRequest struct {
	BookingID    uuid.UUID
	EventTypeID  *uuid.UUID // nil keeps the source booking's event type
	NewStartTime time.Time
	Requester    Requester
}

// Reschedule retires the source booking and creates its successor as one
// atomic transition: at no observable point do both occupy a slot, and at no
// point is neither recorded. The successor's slot is conflict-checked with
// the source excluded, so moving a booking within its own window works.
func (uc *bookingUseCaseImpl) Reschedule(ctx context.Context, req RescheduleBookingRequest) (*shared.BookingSnapshot, error) {
	var successor *booking.Booking

	txCtx, cancel := context.WithTimeout(ctx, uc.cfg.TxTimeout)
	defer cancel()

	var old *shared.BookingSnapshot
	err := uc.uow.Within(txCtx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		old, derr = tx.Reads().BookingByID(ctx, req.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return derr
		}
		if aerr := authorize(old, req.Requester); aerr != nil {
			return aerr
		}
		if !booking.Status(old.Status).OccupiesSlot() {
			return errs.ErrInvalidBookingState
		}

		targetEventTypeID := old.EventTypeID
		if req.EventTypeID != nil {
			targetEventTypeID = *req.EventTypeID
		}
		et, derr := tx.Reads().EventTypeByID(ctx, targetEventTypeID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrEventTypeNotFound
			}
			return derr
		}
		// A successor may switch event types, but never hosts.
		if et.HostID != old.HostID {
			return errs.ErrEventTypeNotFound
		}
		if targetEventTypeID != old.EventTypeID && !et.Active {
			return errs.ErrEventTypeInactive
		}

		slot := availability.Interval{
			Start: req.NewStartTime,
			End:   req.NewStartTime.Add(time.Duration(et.DurationMin) * time.Minute),
		}
		if cerr := ensureSlotFree(ctx, tx, et, slot, old.ID); cerr != nil {
			return cerr
		}

		source := reconstructFromSnapshot(old)
		if merr := source.MarkRescheduled(); merr != nil {
			return errs.ErrInvalidBookingState
		}

		var nerr error
		successor, nerr = booking.NewSuccessor(source, et.ID, slot, et.RequiresConfirmation)
		if nerr != nil {
			return errs.Mark(nerr, errs.ErrDomainValidationFailed)
		}

		if uerr := tx.Bookings().UpdateStatus(ctx, tx.DB(), source.ID(), booking.StatusRescheduled, nil); uerr != nil {
			return uerr
		}
		_, ierr := tx.Bookings().Create(ctx, tx.DB(), successor)
		return ierr
	})
	if err != nil {
		return nil, mapConflictErr(err)
	}

	uc.cleanupCalendarEvent(old)
	uc.runSideEffects(successor, shared.NotifyBookingRescheduled)
	return snapshotOf(successor), nil
}

func reconstructFromSnapshot(s *shared.BookingSnapshot) *booking.Booking {
	return booking.ReconstructBooking(
		s.ID, s.Reference, s.HostID, s.EventTypeID,
		booking.ReconstructGuest(s.GuestName, s.GuestEmail, s.GuestTimezone),
		availability.Interval{Start: s.StartTime, End: s.EndTime},
		booking.Status(s.Status),
		s.Notes, s.Answers, s.Location, s.ExternalEventID,
		s.RescheduledFrom, s.CancelReason,
		s.CreatedAt, s.UpdatedAt,
	)
}
