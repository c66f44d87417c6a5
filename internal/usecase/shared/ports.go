package shared

import (
	"context"
	"time"

	"slotwise/internal/domain/availability"

	"github.com/google/uuid"
)

// ExternalBusyProvider surfaces host commitments held outside this system.
// Implementations must fail open: an unreachable provider yields an empty
// list, never a blocked availability computation.
type ExternalBusyProvider interface {
	GetBusyIntervals(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]availability.Interval, error)
}

// EventFacts is what the calendar publisher needs to mirror a booking.
type EventFacts struct {
	BookingRef string
	Title      string
	GuestName  string
	GuestEmail string
	StartTime  time.Time
	EndTime    time.Time
	Notes      string
}

type PublishedEvent struct {
	ExternalEventID string
	ConferenceLink  string
}

// EventPublisher mirrors bookings into the host's remote calendar.
// Best-effort and idempotent-safe to retry; failures never fail a booking.
type EventPublisher interface {
	CreateEvent(ctx context.Context, hostID uuid.UUID, facts EventFacts) (*PublishedEvent, error)
	DeleteEvent(ctx context.Context, hostID uuid.UUID, externalEventID string) error
}

type NotificationKind string

const (
	NotifyBookingCreated     NotificationKind = "booking_created"
	NotifyBookingConfirmed   NotificationKind = "booking_confirmed"
	NotifyBookingCancelled   NotificationKind = "booking_cancelled"
	NotifyBookingRescheduled NotificationKind = "booking_rescheduled"
)

type RecipientFacts struct {
	GuestName  string
	GuestEmail string
	HostID     uuid.UUID
	BookingRef string
	StartTime  time.Time
	EndTime    time.Time
}

// Notifier is fire-and-forget; delivery failures are logged, never surfaced.
type Notifier interface {
	Notify(ctx context.Context, kind NotificationKind, facts RecipientFacts) error
}
