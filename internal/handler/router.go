package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotwise/internal/handler/api"
	"slotwise/internal/handler/middleware"
	"slotwise/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Schedule     *api.ScheduleHandler
	EventType    *api.EventTypeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/slots", Handler: h.Availability.GetFreeSlots},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			// Guest-facing routes. A host token is honored when present so
			// hosts can act on their own bookings without a guest email.
			public := bookings.Group("")
			public.Use(authMiddleware.OptionalHost())
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: h.Booking.RescheduleBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking},
			})
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/ref/:reference", Handler: h.Booking.GetBookingByReference},
			})

			hostOnly := bookings.Group("")
			hostOnly.Use(authMiddleware.RequireHost())
			addRoutes(hostOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.ConfirmBooking},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Booking.MarkNoShow},
			})
		}

		schedules := apiGroup.Group("/schedules")
		schedules.Use(authMiddleware.RequireHost())
		{
			addRoutes(schedules, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Schedule.CreateSchedule},
				{Method: http.MethodGet, Path: "", Handler: h.Schedule.ListSchedules},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Schedule.GetSchedule},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Schedule.ReplaceSchedule},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Schedule.DeleteSchedule},
			})
		}

		eventTypes := apiGroup.Group("/event-types")
		{
			addRoutes(eventTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.EventType.ListEventTypes},
				{Method: http.MethodGet, Path: "/:id", Handler: h.EventType.GetEventType},
			})

			etHost := eventTypes.Group("")
			etHost.Use(authMiddleware.RequireHost())
			addRoutes(etHost, []route{
				{Method: http.MethodPost, Path: "", Handler: h.EventType.CreateEventType},
				{Method: http.MethodPut, Path: "/:id", Handler: h.EventType.UpdateEventType},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.EventType.DeactivateEventType},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
