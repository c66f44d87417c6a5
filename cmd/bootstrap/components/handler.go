package components

import (
	"slotwise/internal/handler"
	"slotwise/internal/handler/api"
	"slotwise/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewEventTypeHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	schedule *api.ScheduleHandler,
	eventType *api.EventTypeHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Booking:      booking,
		Schedule:     schedule,
		EventType:    eventType,
	}
}
