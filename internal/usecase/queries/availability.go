package queries

import (
	"context"
	"log/slog"
	"time"

	"slotwise/internal/domain/availability"
	"slotwise/internal/infra"
	"slotwise/internal/infra/db"
	"slotwise/internal/pkg/clock"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxSlotRange bounds how far a single availability query may span. Wider
// ranges should be paged by the caller.
const maxSlotRange = 90 * 24 * time.Hour

type GetFreeSlotsQuery struct {
	HostID        uuid.UUID
	EventTypeID   uuid.UUID
	From          time.Time
	To            time.Time
	GuestTimezone string // optional, display only
}

type AvailabilityQueries interface {
	GetFreeSlots(ctx context.Context, q GetFreeSlotsQuery) ([]DaySlotsView, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	reads ReadStore
	busy  shared.ExternalBusyProvider
	clock clock.Clock
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	reads ReadStore,
	busy shared.ExternalBusyProvider,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, reads: reads, busy: busy, clock: clk}
}

// GetFreeSlots resolves the event type and its schedule, gathers obstructions,
// and runs the pure availability computation. The result is advisory: booking
// re-validates against live data inside its own transaction.
func (uc *availabilityQueriesImpl) GetFreeSlots(ctx context.Context, q GetFreeSlotsQuery) ([]DaySlotsView, error) {
	if !q.From.Before(q.To) {
		return nil, errs.Mark(errs.New("range end must be after start"), errs.ErrInvalidInput)
	}
	if q.To.Sub(q.From) > maxSlotRange {
		return nil, errs.Mark(errs.New("range exceeds maximum"), errs.ErrInvalidInput)
	}

	var displayLoc *time.Location
	if q.GuestTimezone != "" {
		loc, err := time.LoadLocation(q.GuestTimezone)
		if err != nil {
			return nil, errs.Mark(errs.New("invalid guest timezone"), errs.ErrInvalidInput)
		}
		displayLoc = loc
	}

	var (
		et       *shared.EventTypeSnapshot
		sched    *shared.ScheduleSnapshot
		bookings []*shared.BookingSnapshot
	)
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var derr error
		et, derr = uc.reads.EventTypeByID(ctx, dbtx, q.EventTypeID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrEventTypeNotFound
			}
			return derr
		}
		if et.HostID != q.HostID {
			return errs.ErrEventTypeNotFound
		}
		if !et.Active {
			return errs.ErrEventTypeInactive
		}

		if et.ScheduleID != nil {
			sched, derr = uc.reads.ScheduleByID(ctx, dbtx, *et.ScheduleID)
		} else {
			sched, derr = uc.reads.DefaultScheduleByHost(ctx, dbtx, et.HostID)
		}
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrScheduleNotFound
			}
			return derr
		}

		// The fetch window is widened by the buffers: a booking ending at or
		// before From can still obstruct the first slots once its interval is
		// expanded, and symmetrically at the To edge.
		fetchFrom := q.From.Add(-time.Duration(et.BufferAfterMin) * time.Minute)
		fetchTo := q.To.Add(time.Duration(et.BufferBeforeMin) * time.Minute)
		bookings, derr = uc.reads.ActiveBookingsInRange(ctx, dbtx, et.HostID, fetchFrom, fetchTo)
		return derr
	})
	if err != nil {
		return nil, err
	}

	resolved, err := sched.Resolved()
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve schedule")
	}

	busy := uc.fetchBusy(ctx, et.HostID, q.From, q.To)

	bookingIntervals := make([]availability.Interval, 0, len(bookings))
	for _, b := range bookings {
		bookingIntervals = append(bookingIntervals, b.Interval())
	}

	days := availability.FreeSlots(et.ToDomain().EngineConfig(), availability.Input{
		From:     q.From,
		To:       q.To,
		Schedule: resolved,
		Busy:     busy,
		Bookings: bookingIntervals,
		Now:      uc.clock.Now(),
	})

	views := make([]DaySlotsView, 0, len(days))
	for _, day := range days {
		view := DaySlotsView{Date: day.Date.String(), Slots: make([]SlotView, 0, len(day.Slots))}
		for _, slot := range day.Slots {
			start, end := slot.Start, slot.End
			if displayLoc != nil {
				start, end = start.In(displayLoc), end.In(displayLoc)
			}
			view.Slots = append(view.Slots, SlotView{Start: start, End: end})
		}
		views = append(views, view)
	}
	return views, nil
}

// fetchBusy queries the external busy provider, failing open: unreachable
// upstreams reduce to "no external busy time", never a failed computation.
func (uc *availabilityQueriesImpl) fetchBusy(ctx context.Context, hostID uuid.UUID, from, to time.Time) []availability.Interval {
	busy, err := uc.busy.GetBusyIntervals(ctx, hostID, from, to)
	if err != nil {
		slog.Warn("external busy provider unavailable",
			"host_id", hostID.String(), "error", err.Error())
		return nil
	}
	return busy
}
