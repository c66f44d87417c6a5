package components

import (
	"context"

	"slotwise/internal/infra/calendar"
	"slotwise/internal/infra/notify"
	"slotwise/internal/infra/readstore"
	"slotwise/internal/infra/repository"
	"slotwise/internal/infra/uow"
	"slotwise/internal/pkg/config"
	"slotwise/internal/usecase/queries"
	"slotwise/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewStore,
			fx.As(new(queries.ReadStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			notify.NewLogNotifier,
			fx.As(new(shared.Notifier)),
		),
		NewCalendarIntegration,
	),
)

// NewCalendarIntegration picks the busy-time source and event publisher.
// Google Calendar when configured, otherwise no-ops so the core never has to
// care whether a calendar is attached.
func NewCalendarIntegration(cfg config.Config) (shared.ExternalBusyProvider, shared.EventPublisher, error) {
	if !cfg.Calendar.Enabled {
		return calendar.Noop{}, calendar.Noop{}, nil
	}

	gc, err := calendar.NewGoogleCalendar(context.Background(), cfg.Calendar)
	if err != nil {
		return nil, nil, err
	}
	return gc, gc, nil
}
