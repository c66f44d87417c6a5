package queries

import (
	"context"
	"time"

	"slotwise/internal/infra/db"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReadStore is the query side's data access. Methods take the DBTX they run
// on so a single read-only transaction can span several lookups.
type ReadStore interface {
	EventTypeByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.EventTypeSnapshot, error)
	EventTypesByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID, activeOnly bool) ([]*shared.EventTypeSnapshot, error)

	ScheduleByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ScheduleSnapshot, error)
	SchedulesByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID) ([]*shared.ScheduleSnapshot, error)
	DefaultScheduleByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID) (*shared.ScheduleSnapshot, error)

	BookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error)
	BookingByReference(ctx context.Context, dbtx db.DBTX, reference string) (*shared.BookingSnapshot, error)
	BookingsByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID, filter BookingFilter) ([]*shared.BookingSnapshot, error)
	// ActiveBookingsInRange returns pending and confirmed bookings whose
	// intervals intersect [from, to). No locking: this feeds the availability
	// computation, which is advisory by design.
	ActiveBookingsInRange(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID, from, to time.Time) ([]*shared.BookingSnapshot, error)
}

type BookingFilter struct {
	From     *time.Time
	To       *time.Time
	Statuses []string
	Limit    int
	Offset   int
}
