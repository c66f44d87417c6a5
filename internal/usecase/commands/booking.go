package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"slotwise/internal/domain/availability"
	"slotwise/internal/domain/booking"
	"slotwise/internal/infra"
	"slotwise/internal/infra/db"
	"slotwise/internal/pkg/clock"
	"slotwise/internal/pkg/config"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventTypeID      uuid.UUID
	StartTime        time.Time
	GuestName        string
	GuestEmail       string
	GuestTimezone    string
	Notes            string
	AdditionalGuests []string
	Questions        []booking.QuestionAnswer
}

// Requester identifies who is acting on an existing booking: the original
// guest (by email, compared case-insensitively) or the owning host.
type Requester struct {
	Email  string
	HostID *uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*shared.BookingSnapshot, error)
	Reschedule(ctx context.Context, req RescheduleBookingRequest) (*shared.BookingSnapshot, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, requester Requester, reason *string) error
	Confirm(ctx context.Context, bookingID, hostID uuid.UUID) error
	MarkNoShow(ctx context.Context, bookingID, hostID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	bookings  shared.BookingRepository
	publisher shared.EventPublisher
	notifier  shared.Notifier
	clock     clock.Clock
	cfg       config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookings shared.BookingRepository,
	publisher shared.EventPublisher,
	notifier shared.Notifier,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		bookings:  bookings,
		publisher: publisher,
		notifier:  notifier,
		clock:     clk,
		cfg:       cfg.Booking,
	}
}

// Create is the booking conflict resolver: it re-validates the chosen slot
// against live data at commit time and inserts the booking in the same
// transaction. The availability computation shown to the guest may be stale;
// this transactional re-check is the sole authority preventing double-booking.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest) (*shared.BookingSnapshot, error) {
	et, err := uc.uow.CommandReads().EventTypeByID(ctx, req.EventTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEventTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to load event type")
	}
	if !et.Active {
		return nil, errs.ErrEventTypeInactive
	}

	guest, err := booking.NewGuest(req.GuestName, req.GuestEmail, req.GuestTimezone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	slot := availability.Interval{
		Start: req.StartTime,
		End:   req.StartTime.Add(time.Duration(et.DurationMin) * time.Minute),
	}

	entity, err := booking.NewBooking(
		et.HostID, et.ID, guest, slot,
		et.RequiresConfirmation,
		req.Notes,
		booking.NewAnswers(req.AdditionalGuests, req.Questions),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	txCtx, cancel := context.WithTimeout(ctx, uc.cfg.TxTimeout)
	defer cancel()

	err = uc.uow.Within(txCtx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := ensureSlotFree(ctx, tx, et, slot, uuid.Nil); cerr != nil {
			return cerr
		}
		_, ierr := tx.Bookings().Create(ctx, tx.DB(), entity)
		return ierr
	})
	if err != nil {
		return nil, mapConflictErr(err)
	}

	snap := snapshotOf(entity)
	uc.runSideEffects(entity, shared.NotifyBookingCreated)
	return snap, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, requester Requester, reason *string) error {
	var snap *shared.BookingSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		snap, derr = tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return derr
		}
		if aerr := authorize(snap, requester); aerr != nil {
			return aerr
		}

		status := booking.Status(snap.Status)
		if status == booking.StatusCancelled {
			return errs.ErrAlreadyCancelled
		}
		if status.IsTerminal() {
			return errs.ErrInvalidBookingState
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusCancelled, reason)
	})
	if err != nil {
		return err
	}

	uc.cleanupCalendarEvent(snap)
	uc.notify(shared.NotifyBookingCancelled, snap)
	return nil
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, bookingID, hostID uuid.UUID) error {
	var snap *shared.BookingSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		snap, derr = tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return derr
		}
		if snap.HostID != hostID {
			return errs.ErrNotAuthorized
		}
		if booking.Status(snap.Status) != booking.StatusPending {
			return errs.ErrInvalidBookingState
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusConfirmed, nil)
	})
	if err != nil {
		return err
	}

	uc.notify(shared.NotifyBookingConfirmed, snap)
	return nil
}

func (uc *bookingUseCaseImpl) MarkNoShow(ctx context.Context, bookingID, hostID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return derr
		}
		if snap.HostID != hostID {
			return errs.ErrNotAuthorized
		}
		if booking.Status(snap.Status) != booking.StatusConfirmed {
			return errs.ErrInvalidBookingState
		}
		if !uc.clock.Now().After(snap.EndTime) {
			return errs.ErrInvalidBookingState
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusNoShow, nil)
	})
}

// ensureSlotFree is the precise conflict check shared by create and
// reschedule. Buffers expand the existing bookings' intervals, never the
// candidate; the repository locks the candidate range so two concurrent
// requests for overlapping times serialize on the same rows.
func ensureSlotFree(
	ctx context.Context,
	tx shared.Tx,
	et *shared.EventTypeSnapshot,
	slot availability.Interval,
	exclude uuid.UUID,
) error {
	before := time.Duration(et.BufferBeforeMin) * time.Minute
	after := time.Duration(et.BufferAfterMin) * time.Minute

	// Broad range pre-filter: anything whose buffer-expanded interval could
	// reach the candidate.
	existing, err := tx.Bookings().ListActiveOverlapping(
		ctx, tx.DB(), et.HostID,
		slot.Start.Add(-after), slot.End.Add(before),
	)
	if err != nil {
		return err
	}

	for _, b := range existing {
		if b.ID == exclude {
			continue
		}
		if slot.Overlaps(b.Interval().Expand(before, after)) {
			return errs.ErrSlotUnavailable
		}
	}
	return nil
}

func mapConflictErr(err error) error {
	switch {
	case errors.Is(err, errs.ErrSlotUnavailable):
		return errs.ErrSlotUnavailable
	case errors.Is(err, shared.ErrTxRetryExceeded):
		// Could not prove the slot free; treat as not free.
		return errs.ErrSlotUnavailable
	case infra.IsKind(err, infra.KindConflict):
		// The exclusion-constraint backstop fired before our check did.
		return errs.ErrSlotUnavailable
	default:
		return err
	}
}

func authorize(snap *shared.BookingSnapshot, requester Requester) error {
	if requester.HostID != nil && *requester.HostID == snap.HostID {
		return nil
	}
	email := strings.TrimSpace(requester.Email)
	if email != "" && strings.EqualFold(email, snap.GuestEmail) {
		return nil
	}
	return errs.ErrNotAuthorized
}

// runSideEffects publishes the remote calendar event and dispatches the
// notification after the transaction committed. Best-effort: bounded by the
// configured timeout, failures logged, never propagated.
func (uc *bookingUseCaseImpl) runSideEffects(entity *booking.Booking, kind shared.NotificationKind) {
	snap := snapshotOf(entity)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.cfg.SideEffectTimeout)
		defer cancel()

		published, err := uc.publisher.CreateEvent(ctx, snap.HostID, shared.EventFacts{
			BookingRef: snap.Reference,
			Title:      snap.GuestName,
			GuestName:  snap.GuestName,
			GuestEmail: snap.GuestEmail,
			StartTime:  snap.StartTime,
			EndTime:    snap.EndTime,
			Notes:      snap.Notes,
		})
		if err != nil {
			slog.Warn("calendar event creation failed",
				"booking", snap.Reference, "error", err.Error())
		} else if published != nil {
			uerr := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
				return uc.bookings.SetCalendarEvent(ctx, dbtx, snap.ID,
					published.ExternalEventID, published.ConferenceLink)
			})
			if uerr != nil {
				slog.Warn("calendar event link persistence failed",
					"booking", snap.Reference, "error", uerr.Error())
			}
		}

		uc.notifyCtx(ctx, kind, snap)
	}()
}

func (uc *bookingUseCaseImpl) cleanupCalendarEvent(snap *shared.BookingSnapshot) {
	if snap == nil || snap.ExternalEventID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.cfg.SideEffectTimeout)
		defer cancel()
		if err := uc.publisher.DeleteEvent(ctx, snap.HostID, snap.ExternalEventID); err != nil {
			slog.Warn("calendar event deletion failed",
				"booking", snap.Reference, "error", err.Error())
		}
	}()
}

func (uc *bookingUseCaseImpl) notify(kind shared.NotificationKind, snap *shared.BookingSnapshot) {
	if snap == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.cfg.SideEffectTimeout)
		defer cancel()
		uc.notifyCtx(ctx, kind, snap)
	}()
}

func (uc *bookingUseCaseImpl) notifyCtx(ctx context.Context, kind shared.NotificationKind, snap *shared.BookingSnapshot) {
	err := uc.notifier.Notify(ctx, kind, shared.RecipientFacts{
		GuestName:  snap.GuestName,
		GuestEmail: snap.GuestEmail,
		HostID:     snap.HostID,
		BookingRef: snap.Reference,
		StartTime:  snap.StartTime,
		EndTime:    snap.EndTime,
	})
	if err != nil {
		slog.Warn("notification dispatch failed",
			"kind", string(kind), "booking", snap.Reference, "error", err.Error())
	}
}

func snapshotOf(b *booking.Booking) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              b.ID(),
		Reference:       b.Reference(),
		HostID:          b.HostID(),
		EventTypeID:     b.EventTypeID(),
		GuestName:       b.Guest().Name(),
		GuestEmail:      b.Guest().Email(),
		GuestTimezone:   b.Guest().Timezone(),
		StartTime:       b.Interval().Start,
		EndTime:         b.Interval().End,
		Status:          b.Status().String(),
		Notes:           b.Notes(),
		Answers:         b.Answers(),
		Location:        b.Location(),
		ExternalEventID: b.ExternalEventID(),
		RescheduledFrom: b.RescheduledFrom(),
		CancelReason:    b.CancelReason(),
	}
}
