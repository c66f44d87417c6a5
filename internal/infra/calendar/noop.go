package calendar

import (
	"context"
	"time"

	"slotwise/internal/domain/availability"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

// Noop stands in when no calendar integration is configured: no external busy
// time, no published events. Keeps the rest of the system oblivious to
// whether a calendar is attached.
type Noop struct{}

var (
	_ shared.ExternalBusyProvider = Noop{}
	_ shared.EventPublisher       = Noop{}
)

func (Noop) GetBusyIntervals(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]availability.Interval, error) {
	return nil, nil
}

func (Noop) CreateEvent(ctx context.Context, hostID uuid.UUID, facts shared.EventFacts) (*shared.PublishedEvent, error) {
	return nil, nil
}

func (Noop) DeleteEvent(ctx context.Context, hostID uuid.UUID, externalEventID string) error {
	return nil
}
