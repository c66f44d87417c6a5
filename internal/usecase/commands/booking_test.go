//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotwise/internal/domain/booking"
	"slotwise/internal/infra"
	"slotwise/internal/infra/calendar"
	"slotwise/internal/infra/notify"
	"slotwise/internal/pkg/clock"
	"slotwise/internal/pkg/config"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/commands"
	"slotwise/internal/usecase/shared"
	"slotwise/tests/common/builder"
	sharedmock "slotwise/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockReads    *sharedmock.MockCommandReads
	mockBookings *sharedmock.MockBookingRepository
	clock        *clock.MockClock
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockBookings = sharedmock.NewMockBookingRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	s.commands = commands.NewBookingCommands(
		s.mockUoW,
		s.mockBookings,
		calendar.Noop{},
		notify.NewLogNotifier(),
		s.clock,
		config.NewTestConfig(),
	)

	s.mockTx.EXPECT().Bookings().Return(s.mockBookings).AnyTimes()
	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// expectWithin routes UnitOfWork.Within through the mocked transaction.
func (s *BookingCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(1)
}

func (s *BookingCommandsTestSuite) createRequest(et *shared.EventTypeSnapshot, start time.Time) commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		EventTypeID: et.ID,
		StartTime:   start,
		GuestName:   "Alex Guest",
		GuestEmail:  "guest@example.com",
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreate() {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	s.Run("success: books a free slot", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		s.expectWithin()
		s.mockBookings.EXPECT().
			ListActiveOverlapping(gomock.Any(), gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)
		s.mockBookings.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(et.HostID, b.HostID())
				s.Equal(start, b.Interval().Start)
				s.Equal(start.Add(30*time.Minute), b.Interval().End)
				s.Equal(booking.StatusConfirmed, b.Status())
				return b.ID(), nil
			}).Times(1)

		snap, err := s.commands.Create(context.Background(), s.createRequest(et, start))

		s.Require().NoError(err)
		s.Equal(et.ID, snap.EventTypeID)
		s.Equal("confirmed", snap.Status)
		s.Len(snap.Reference, 10)
	})

	s.Run("success: requires-confirmation event types start pending", func() {
		et := builder.NewEventTypeBuilder().WithRequiresConfirmation().BuildSnapshot()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		s.expectWithin()
		s.mockBookings.EXPECT().
			ListActiveOverlapping(gomock.Any(), gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)
		s.mockBookings.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil).Times(1)

		snap, err := s.commands.Create(context.Background(), s.createRequest(et, start))

		s.Require().NoError(err)
		s.Equal("pending", snap.Status)
	})

	s.Run("conflict: overlapping booking rejects the slot", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		taken := builder.NewBookingBuilder().
			WithHostID(et.HostID).
			WithSlot(start.Add(15*time.Minute), 30*time.Minute).
			BuildSnapshot()

		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		s.expectWithin()
		s.mockBookings.EXPECT().
			ListActiveOverlapping(gomock.Any(), gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
			Return([]*shared.BookingSnapshot{taken}, nil).Times(1)

		_, err := s.commands.Create(context.Background(), s.createRequest(et, start))
		s.ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("no conflict: touching bookings share an endpoint", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		adjacent := builder.NewBookingBuilder().
			WithHostID(et.HostID).
			WithSlot(start.Add(30*time.Minute), 30*time.Minute).
			BuildSnapshot()

		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		s.expectWithin()
		s.mockBookings.EXPECT().
			ListActiveOverlapping(gomock.Any(), gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
			Return([]*shared.BookingSnapshot{adjacent}, nil).Times(1)
		s.mockBookings.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil).Times(1)

		_, err := s.commands.Create(context.Background(), s.createRequest(et, start))
		s.NoError(err)
	})

	s.Run("conflict: buffers expand the existing booking into the slot", func() {
		et := builder.NewEventTypeBuilder().WithBuffers(15, 15).BuildSnapshot()
		adjacent := builder.NewBookingBuilder().
			WithHostID(et.HostID).
			WithSlot(start.Add(30*time.Minute), 30*time.Minute).
			BuildSnapshot()

		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		s.expectWithin()
		s.mockBookings.EXPECT().
			ListActiveOverlapping(gomock.Any(), gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
			Return([]*shared.BookingSnapshot{adjacent}, nil).Times(1)

		_, err := s.commands.Create(context.Background(), s.createRequest(et, start))
		s.ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("conflict: retry exhaustion reads as slot unavailable", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
			Return(shared.ErrTxRetryExceeded).Times(1)

		_, err := s.commands.Create(context.Background(), s.createRequest(et, start))
		s.ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("conflict: exclusion constraint backstop reads as slot unavailable", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("bookings overlap", nil, infra.KindConflict)).Times(1)

		_, err := s.commands.Create(context.Background(), s.createRequest(et, start))
		s.ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("error: inactive event type refuses bookings", func() {
		et := builder.NewEventTypeBuilder().AsInactive().BuildSnapshot()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)

		_, err := s.commands.Create(context.Background(), s.createRequest(et, start))
		s.ErrorIs(err, errs.ErrEventTypeInactive)
	})

	s.Run("error: unknown event type", func() {
		id := uuid.New()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("event type not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.Create(context.Background(), commands.CreateBookingRequest{
			EventTypeID: id,
			StartTime:   start,
			GuestName:   "Alex Guest",
			GuestEmail:  "guest@example.com",
		})
		s.ErrorIs(err, errs.ErrEventTypeNotFound)
	})

	s.Run("error: malformed guest email fails domain validation", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)

		req := s.createRequest(et, start)
		req.GuestEmail = "not-an-email"
		_, err := s.commands.Create(context.Background(), req)
		s.ErrorIs(err, errs.ErrDomainValidationFailed)
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *BookingCommandsTestSuite) TestReschedule() {
	newStart := time.Date(2026, 9, 8, 14, 0, 0, 0, time.UTC)

	s.Run("success: retires the source and creates a successor", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		source := builder.NewBookingBuilder().
			WithHostID(et.HostID).
			WithEventTypeID(et.ID).
			BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), source.ID).Return(source, nil).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		s.mockBookings.EXPECT().
			ListActiveOverlapping(gomock.Any(), gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
			Return([]*shared.BookingSnapshot{source}, nil).Times(1)
		s.mockBookings.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), source.ID, booking.StatusRescheduled, gomock.Nil()).
			Return(nil).Times(1)
		s.mockBookings.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
				s.NotEqual(source.ID, b.ID())
				s.NotEqual(source.Reference, b.Reference())
				s.Require().NotNil(b.RescheduledFrom())
				s.Equal(source.ID, *b.RescheduledFrom())
				s.Equal(newStart, b.Interval().Start)
				return b.ID(), nil
			}).Times(1)

		snap, err := s.commands.Reschedule(context.Background(), commands.RescheduleBookingRequest{
			BookingID:    source.ID,
			NewStartTime: newStart,
			Requester:    commands.Requester{Email: source.GuestEmail},
		})

		s.Require().NoError(err)
		s.Equal(source.GuestEmail, snap.GuestEmail)
		s.Equal(newStart, snap.StartTime)
	})

	s.Run("success: moving within the original window excludes the source", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		source := builder.NewBookingBuilder().
			WithHostID(et.HostID).
			WithEventTypeID(et.ID).
			WithSlot(newStart.Add(-15*time.Minute), 30*time.Minute).
			BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), source.ID).Return(source, nil).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
		// The source booking itself overlaps the new slot; it must be ignored.
		s.mockBookings.EXPECT().
			ListActiveOverlapping(gomock.Any(), gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
			Return([]*shared.BookingSnapshot{source}, nil).Times(1)
		s.mockBookings.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), source.ID, booking.StatusRescheduled, gomock.Nil()).
			Return(nil).Times(1)
		s.mockBookings.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil).Times(1)

		_, err := s.commands.Reschedule(context.Background(), commands.RescheduleBookingRequest{
			BookingID:    source.ID,
			NewStartTime: newStart,
			Requester:    commands.Requester{Email: source.GuestEmail},
		})
		s.NoError(err)
	})

	s.Run("success: successor switches to another of the host's event types", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		target := builder.NewEventTypeBuilder().
			WithHostID(et.HostID).
			WithDuration(60).
			BuildSnapshot()
		source := builder.NewBookingBuilder().
			WithHostID(et.HostID).
			WithEventTypeID(et.ID).
			BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), source.ID).Return(source, nil).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), target.ID).Return(target, nil).Times(1)
		s.mockBookings.EXPECT().
			ListActiveOverlapping(gomock.Any(), gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)
		s.mockBookings.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), source.ID, booking.StatusRescheduled, gomock.Nil()).
			Return(nil).Times(1)
		s.mockBookings.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(target.ID, b.EventTypeID())
				s.Equal(newStart.Add(60*time.Minute), b.Interval().End)
				return b.ID(), nil
			}).Times(1)

		snap, err := s.commands.Reschedule(context.Background(), commands.RescheduleBookingRequest{
			BookingID:    source.ID,
			EventTypeID:  &target.ID,
			NewStartTime: newStart,
			Requester:    commands.Requester{Email: source.GuestEmail},
		})

		s.Require().NoError(err)
		s.Equal(target.ID, snap.EventTypeID)
	})

	s.Run("error: target event type belongs to another host", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		foreign := builder.NewEventTypeBuilder().BuildSnapshot()
		source := builder.NewBookingBuilder().
			WithHostID(et.HostID).
			WithEventTypeID(et.ID).
			BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), source.ID).Return(source, nil).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), foreign.ID).Return(foreign, nil).Times(1)

		_, err := s.commands.Reschedule(context.Background(), commands.RescheduleBookingRequest{
			BookingID:    source.ID,
			EventTypeID:  &foreign.ID,
			NewStartTime: newStart,
			Requester:    commands.Requester{Email: source.GuestEmail},
		})
		s.ErrorIs(err, errs.ErrEventTypeNotFound)
	})

	s.Run("error: target event type is inactive", func() {
		et := builder.NewEventTypeBuilder().BuildSnapshot()
		target := builder.NewEventTypeBuilder().
			WithHostID(et.HostID).
			AsInactive().
			BuildSnapshot()
		source := builder.NewBookingBuilder().
			WithHostID(et.HostID).
			WithEventTypeID(et.ID).
			BuildSnapshot()

		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), source.ID).Return(source, nil).Times(1)
		s.mockReads.EXPECT().EventTypeByID(gomock.Any(), target.ID).Return(target, nil).Times(1)

		_, err := s.commands.Reschedule(context.Background(), commands.RescheduleBookingRequest{
			BookingID:    source.ID,
			EventTypeID:  &target.ID,
			NewStartTime: newStart,
			Requester:    commands.Requester{Email: source.GuestEmail},
		})
		s.ErrorIs(err, errs.ErrEventTypeInactive)
	})

	s.Run("error: requester matches neither guest nor host", func() {
		source := builder.NewBookingBuilder().BuildSnapshot()
		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), source.ID).Return(source, nil).Times(1)

		_, err := s.commands.Reschedule(context.Background(), commands.RescheduleBookingRequest{
			BookingID:    source.ID,
			NewStartTime: newStart,
			Requester:    commands.Requester{Email: "stranger@example.com"},
		})
		s.ErrorIs(err, errs.ErrNotAuthorized)
	})

	s.Run("error: cancelled bookings cannot be rescheduled", func() {
		source := builder.NewBookingBuilder().AsCancelled().BuildSnapshot()
		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), source.ID).Return(source, nil).Times(1)

		_, err := s.commands.Reschedule(context.Background(), commands.RescheduleBookingRequest{
			BookingID:    source.ID,
			NewStartTime: newStart,
			Requester:    commands.Requester{Email: source.GuestEmail},
		})
		s.ErrorIs(err, errs.ErrInvalidBookingState)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancel() {
	s.Run("success: guest cancels by matching email, case-insensitively", func() {
		snap := builder.NewBookingBuilder().WithGuestEmail("guest@example.com").BuildSnapshot()
		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusCancelled, gomock.Nil()).
			Return(nil).Times(1)

		err := s.commands.Cancel(context.Background(), snap.ID,
			commands.Requester{Email: "  GUEST@example.com "}, nil)
		s.NoError(err)
	})

	s.Run("success: owning host cancels with a reason", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		reason := "host emergency"
		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusCancelled, &reason).
			Return(nil).Times(1)

		err := s.commands.Cancel(context.Background(), snap.ID,
			commands.Requester{HostID: &snap.HostID}, &reason)
		s.NoError(err)
	})

	s.Run("error: second cancellation is not idempotent", func() {
		snap := builder.NewBookingBuilder().AsCancelled().BuildSnapshot()
		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)

		err := s.commands.Cancel(context.Background(), snap.ID,
			commands.Requester{Email: snap.GuestEmail}, nil)
		s.ErrorIs(err, errs.ErrAlreadyCancelled)
	})

	s.Run("error: a different host is not authorized", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		otherHost := uuid.New()
		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)

		err := s.commands.Cancel(context.Background(), snap.ID,
			commands.Requester{HostID: &otherHost}, nil)
		s.ErrorIs(err, errs.ErrNotAuthorized)
	})
}

// ================================================================================
// TestConfirm / TestMarkNoShow
// ================================================================================

func (s *BookingCommandsTestSuite) TestConfirm() {
	s.Run("success: host confirms a pending booking", func() {
		snap := builder.NewBookingBuilder().AsPending().BuildSnapshot()
		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusConfirmed, gomock.Nil()).
			Return(nil).Times(1)

		s.NoError(s.commands.Confirm(context.Background(), snap.ID, snap.HostID))
	})

	s.Run("error: confirming an already-confirmed booking", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)

		err := s.commands.Confirm(context.Background(), snap.ID, snap.HostID)
		s.ErrorIs(err, errs.ErrInvalidBookingState)
	})
}

func (s *BookingCommandsTestSuite) TestMarkNoShow() {
	s.Run("success: confirmed booking past its end", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		s.clock.Set(snap.EndTime.Add(time.Hour))

		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusNoShow, gomock.Nil()).
			Return(nil).Times(1)

		s.NoError(s.commands.MarkNoShow(context.Background(), snap.ID, snap.HostID))
	})

	s.Run("error: booking has not ended yet", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		s.clock.Set(snap.EndTime.Add(-time.Minute))

		s.expectWithin()
		s.mockReads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)

		err := s.commands.MarkNoShow(context.Background(), snap.ID, snap.HostID)
		s.ErrorIs(err, errs.ErrInvalidBookingState)
	})
}
