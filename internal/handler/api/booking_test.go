//go:build unit

package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"slotwise/internal/handler/api"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/commands"
	"slotwise/internal/usecase/queries"
	"slotwise/internal/usecase/shared"
	"slotwise/tests/common/builder"
	"slotwise/tests/common/httptest"
	"slotwise/tests/common/testutil"
	commandsmock "slotwise/tests/mock/commands"
	queriesmock "slotwise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	hostID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.hostID = uuid.New()

	// Mock authentication middleware for testing
	requireHost := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("host_id", s.hostID)
		c.Next()
	}
	optionalHost := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("host_id", s.hostID)
		}
		c.Next()
	}

	s.router.POST("/bookings", optionalHost, s.handler.CreateBooking)
	s.router.POST("/bookings/:id/reschedule", optionalHost, s.handler.RescheduleBooking)
	s.router.POST("/bookings/:id/cancel", optionalHost, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/confirm", requireHost, s.handler.ConfirmBooking)
	s.router.POST("/bookings/:id/no-show", requireHost, s.handler.MarkNoShow)
	s.router.GET("/bookings", requireHost, s.handler.ListBookings)
	s.router.GET("/bookings/:id", requireHost, s.handler.GetBooking)
	s.router.GET("/bookings/ref/:reference", s.handler.GetBookingByReference)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	snap := builder.NewBookingBuilder().BuildSnapshot()

	s.Run("success: returns 201 Created with booking payload", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(snap, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(snap.ID.String(), body["id"])
		s.Equal(snap.Reference, body["reference"])
		s.Equal(snap.Status, body["status"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: event_type_id", mutate: testutil.Field("event_type_id", nil)},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: guest_name", mutate: testutil.Field("guest_name", nil)},
			{name: "missing field: guest_email", mutate: testutil.Field("guest_email", nil)},
			{name: "malformed guest_email", mutate: testutil.Field("guest_email", "not-an-email")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow-ish")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot taken",
				commandsError:  errs.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot unavailable",
			},
			{
				name:           "event type not found",
				commandsError:  errs.ErrEventTypeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "",
			},
			{
				name:           "event type inactive",
				commandsError:  errs.ErrEventTypeInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "inactive",
			},
			{
				name:           "domain validation failed",
				commandsError:  errs.ErrDomainValidationFailed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("connection refused"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRescheduleBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestRescheduleBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reschedule"
	newStart := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Minute)
	reqBody := map[string]any{
		"new_start_time":  newStart.Format(time.RFC3339),
		"requester_email": "guest@example.com",
	}

	s.Run("success: returns 200 with the successor booking", func() {
		successor := builder.NewBookingBuilder().WithSlot(newStart, 30*time.Minute).BuildSnapshot()
		s.mockCommands.EXPECT().
			Reschedule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.RescheduleBookingRequest) (*shared.BookingSnapshot, error) {
				s.Equal(bookingID, req.BookingID)
				s.Equal("guest@example.com", req.Requester.Email)
				s.Nil(req.Requester.HostID)
				return successor, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(successor.ID.String(), body["id"])
	})

	s.Run("success: host token attaches host identity", func() {
		successor := builder.NewBookingBuilder().WithSlot(newStart, 30*time.Minute).BuildSnapshot()
		s.mockCommands.EXPECT().
			Reschedule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.RescheduleBookingRequest) (*shared.BookingSnapshot, error) {
				s.Require().NotNil(req.Requester.HostID)
				s.Equal(s.hostID, *req.Requester.HostID)
				return successor, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "host-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/reschedule", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "new slot taken", commandsError: errs.ErrSlotUnavailable, expectedStatus: http.StatusConflict},
			{name: "booking not found", commandsError: errs.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "requester not authorized", commandsError: errs.ErrNotAuthorized, expectedStatus: http.StatusForbidden},
			{name: "terminal booking", commandsError: errs.ErrInvalidBookingState, expectedStatus: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reschedule(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"
	reqBody := map[string]any{"requester_email": "guest@example.com"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), bookingID, gomock.Any(), gomock.Nil()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: forwards the cancellation reason", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ commands.Requester, reason *string) error {
				s.Require().NotNil(reason)
				s.Equal("conflict came up", *reason)
				return nil
			}).Times(1)
		body := map[string]any{"requester_email": "guest@example.com", "reason": "conflict came up"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), bookingID, gomock.Any(), gomock.Nil()).
			Return(errs.ErrAlreadyCancelled).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})

	s.Run("error: 403 when requester matches neither guest nor host", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), bookingID, gomock.Any(), gomock.Nil()).
			Return(errs.ErrNotAuthorized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestHostActions
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/confirm"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), bookingID, s.hostID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "host-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 409 when booking is not pending", func() {
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), bookingID, s.hostID).
			Return(errs.ErrInvalidBookingState).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *BookingHandlerTestSuite) TestMarkNoShow() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/no-show"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			MarkNoShow(gomock.Any(), bookingID, s.hostID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "host-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 before the booking has ended", func() {
		s.mockCommands.EXPECT().
			MarkNoShow(gomock.Any(), bookingID, s.hostID).
			Return(errs.ErrInvalidBookingState).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the host's own booking", func() {
		view := builder.NewBookingBuilder().WithHostID(s.hostID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "host-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Reference, body["reference"])
	})

	s.Run("error: 404 for another host's booking", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BookingHandlerTestSuite) TestGetBookingByReference() {
	s.Run("success: public lookup by reference", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), view.Reference).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/ref/"+view.Reference, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
	})

	s.Run("error: 404 for an unknown reference", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "NOPE000000").
			Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/ref/NOPE000000", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: passes range and status filters through", func() {
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
		views := []*builder.BookingBuilder{builder.NewBookingBuilder(), builder.NewBookingBuilder()}

		s.mockQueries.EXPECT().
			ListByHost(gomock.Any(), s.hostID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, filter queries.BookingFilter) ([]*queries.BookingView, error) {
				s.Require().NotNil(filter.From)
				s.Require().NotNil(filter.To)
				s.True(filter.From.Equal(from))
				s.True(filter.To.Equal(to))
				s.Equal([]string{"confirmed", "pending"}, filter.Statuses)
				return []*queries.BookingView{views[0].BuildView(), views[1].BuildView()}, nil
			}).Times(1)

		url := fmt.Sprintf("/bookings?from=%s&to=%s&status=confirmed&status=pending",
			from.Format(time.RFC3339), to.Format(time.RFC3339))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "host-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 400 on malformed range bound", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=yesterday", nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid from")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
