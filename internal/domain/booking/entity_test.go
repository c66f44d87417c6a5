//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotwise/internal/domain/availability"
	"slotwise/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGuest(t *testing.T) booking.Guest {
	t.Helper()
	g, err := booking.NewGuest("Ada Lovelace", "Ada@Example.com", "Europe/London")
	require.NoError(t, err)
	return g
}

func testInterval() availability.Interval {
	start := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	return availability.Interval{Start: start, End: start.Add(30 * time.Minute)}
}

func newBooking(t *testing.T, requiresConfirmation bool) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		uuid.New(), uuid.New(),
		testGuest(t),
		testInterval(),
		requiresConfirmation,
		"bring the contract",
		booking.NewAnswers(nil, nil),
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("auto-confirms when no confirmation required", func(t *testing.T) {
		b := newBooking(t, false)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Len(t, b.Reference(), 10)
	})

	t.Run("starts pending when confirmation required", func(t *testing.T) {
		b := newBooking(t, true)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		iv := testInterval()
		iv.Start, iv.End = iv.End, iv.Start
		_, err := booking.NewBooking(uuid.New(), uuid.New(), testGuest(t), iv, false, "", booking.Answers{})
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("rejects zero-width interval", func(t *testing.T) {
		iv := testInterval()
		iv.End = iv.Start
		_, err := booking.NewBooking(uuid.New(), uuid.New(), testGuest(t), iv, false, "", booking.Answers{})
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

func TestBooking_Confirm(t *testing.T) {
	b := newBooking(t, true)
	require.NoError(t, b.Confirm())
	assert.Equal(t, booking.StatusConfirmed, b.Status())

	assert.ErrorIs(t, b.Confirm(), booking.ErrInvalidTransition, "confirm is not idempotent")
}

func TestBooking_Cancel(t *testing.T) {
	t.Run("pending and confirmed can cancel", func(t *testing.T) {
		for _, requiresConfirmation := range []bool{true, false} {
			b := newBooking(t, requiresConfirmation)
			require.NoError(t, b.Cancel("guest request"))
			assert.Equal(t, booking.StatusCancelled, b.Status())
			assert.Equal(t, "guest request", b.CancelReason())
		}
	})

	t.Run("terminal states refuse cancel", func(t *testing.T) {
		b := newBooking(t, false)
		require.NoError(t, b.Cancel(""))
		assert.ErrorIs(t, b.Cancel(""), booking.ErrInvalidTransition)
	})
}

func TestBooking_MarkNoShow(t *testing.T) {
	end := testInterval().End

	t.Run("confirmed booking after end", func(t *testing.T) {
		b := newBooking(t, false)
		require.NoError(t, b.MarkNoShow(end.Add(time.Minute)))
		assert.Equal(t, booking.StatusNoShow, b.Status())
	})

	t.Run("refused before end", func(t *testing.T) {
		b := newBooking(t, false)
		assert.ErrorIs(t, b.MarkNoShow(end.Add(-time.Minute)), booking.ErrNotYetEnded)
	})

	t.Run("refused exactly at end", func(t *testing.T) {
		b := newBooking(t, false)
		assert.ErrorIs(t, b.MarkNoShow(end), booking.ErrNotYetEnded)
	})

	t.Run("refused on pending booking", func(t *testing.T) {
		b := newBooking(t, true)
		assert.ErrorIs(t, b.MarkNoShow(end.Add(time.Minute)), booking.ErrInvalidTransition)
	})
}

func TestBooking_Reschedule(t *testing.T) {
	source := newBooking(t, false)
	newStart := time.Date(2026, 1, 6, 14, 0, 0, 0, time.UTC)
	newInterval := availability.Interval{Start: newStart, End: newStart.Add(30 * time.Minute)}

	successor, err := booking.NewSuccessor(source, source.EventTypeID(), newInterval, false)
	require.NoError(t, err)
	require.NoError(t, source.MarkRescheduled())

	assert.Equal(t, booking.StatusRescheduled, source.Status())
	assert.False(t, source.Status().OccupiesSlot())

	assert.NotEqual(t, source.ID(), successor.ID())
	assert.NotEqual(t, source.Reference(), successor.Reference())
	require.NotNil(t, successor.RescheduledFrom())
	assert.Equal(t, source.ID(), *successor.RescheduledFrom())
	assert.Equal(t, source.Guest(), successor.Guest())
	assert.Equal(t, source.Notes(), successor.Notes())
	assert.Equal(t, newInterval, successor.Interval())

	t.Run("terminal source cannot reschedule again", func(t *testing.T) {
		assert.ErrorIs(t, source.MarkRescheduled(), booking.ErrInvalidTransition)
	})
}

func TestBooking_SetCalendarEvent(t *testing.T) {
	b := newBooking(t, false)

	b.SetCalendarEvent("evt_123", "https://meet.example.com/abc")
	assert.Equal(t, "evt_123", b.ExternalEventID())
	assert.Equal(t, "https://meet.example.com/abc", b.Location())

	// Empty conference link keeps the existing location.
	b.SetCalendarEvent("evt_456", "")
	assert.Equal(t, "evt_456", b.ExternalEventID())
	assert.Equal(t, "https://meet.example.com/abc", b.Location())
}

func TestStatus(t *testing.T) {
	occupies := map[booking.Status]bool{
		booking.StatusPending:     true,
		booking.StatusConfirmed:   true,
		booking.StatusCancelled:   false,
		booking.StatusRescheduled: false,
		booking.StatusNoShow:      false,
	}
	for status, want := range occupies {
		assert.Equal(t, want, status.OccupiesSlot(), "OccupiesSlot(%s)", status)
		assert.Equal(t, !want, status.IsTerminal(), "IsTerminal(%s)", status)
		assert.True(t, status.IsValid())
	}
	assert.False(t, booking.Status("bogus").IsValid())
}
