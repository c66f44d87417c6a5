package shared

import (
	"context"
	"time"

	"slotwise/internal/domain/booking"
	"slotwise/internal/domain/eventtype"
	"slotwise/internal/domain/schedule"
	"slotwise/internal/infra/db"
	"slotwise/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxRetryExceeded marks a transaction that still failed after the
// transparent retry. The booking resolver maps it to SlotUnavailable: not
// being able to prove a slot free is treated as not free.
var ErrTxRetryExceeded = errs.New("transaction failed after retries")

// UnitOfWork is the explicit transaction boundary. Commands receive the
// transaction handle as an argument instead of threading it ambiently.
type UnitOfWork interface {
	// Within: full read-then-write transaction, serializable isolation,
	// retried transparently on serialization failure.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent multi-table snapshot for read paths.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single statements on the pool, outside any explicit transaction.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: validation reads outside a transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Schedules() ScheduleRepository
	EventTypes() EventTypeRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the snapshot lookups command handlers validate against.
type CommandReads interface {
	EventTypeByID(ctx context.Context, id uuid.UUID) (*EventTypeSnapshot, error)
	ScheduleByID(ctx context.Context, id uuid.UUID) (*ScheduleSnapshot, error)
	DefaultScheduleByHost(ctx context.Context, hostID uuid.UUID) (*ScheduleSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	CountSchedulesByHost(ctx context.Context, hostID uuid.UUID) (int, error)
	ScheduleHasActiveEventTypes(ctx context.Context, scheduleID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status, reason *string) error
	SetCalendarEvent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, externalEventID, location string) error
	// ListActiveOverlapping locks and returns the host's confirmed/pending
	// bookings whose intervals could overlap [from, to). The range is a broad
	// pre-filter; callers run the precise buffer-expanded check.
	ListActiveOverlapping(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID, from, to time.Time) ([]*BookingSnapshot, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *schedule.Schedule) (uuid.UUID, error)
	ReplaceRules(ctx context.Context, dbtx db.DBTX, scheduleID uuid.UUID, rules []schedule.Rule, overrides []schedule.Override) error
	Delete(ctx context.Context, dbtx db.DBTX, scheduleID uuid.UUID) error
}

type EventTypeRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, e *eventtype.EventType) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, e *eventtype.EventType) error
	SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error
}
