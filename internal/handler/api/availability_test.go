//go:build unit

package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"slotwise/internal/handler/api"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/queries"
	"slotwise/tests/common/httptest"
	queriesmock "slotwise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/availability/slots", s.handler.GetFreeSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetFreeSlots() {
	hostID := uuid.New()
	eventTypeID := uuid.New()
	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)

	slotsURL := func(host, eventType, fromStr, toStr string) string {
		return fmt.Sprintf("/availability/slots?host_id=%s&event_type_id=%s&from=%s&to=%s",
			host, eventType, fromStr, toStr)
	}
	validURL := slotsURL(hostID.String(), eventTypeID.String(),
		from.Format(time.RFC3339), to.Format(time.RFC3339))

	s.Run("success: returns day-grouped slots", func() {
		days := []queries.DaySlotsView{
			{Date: "2026-09-07", Slots: []queries.SlotView{
				{Start: from.Add(9 * time.Hour), End: from.Add(9*time.Hour + 30*time.Minute)},
			}},
			{Date: "2026-09-08", Slots: []queries.SlotView{}},
		}
		s.mockQueries.EXPECT().
			GetFreeSlots(gomock.Any(), queries.GetFreeSlotsQuery{
				HostID:      hostID,
				EventTypeID: eventTypeID,
				From:        from,
				To:          to,
			}).
			Return(days, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validURL, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		returned, ok := body["days"].([]any)
		s.Require().True(ok)
		s.Len(returned, 2)
	})

	s.Run("success: forwards the display timezone", func() {
		s.mockQueries.EXPECT().
			GetFreeSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q queries.GetFreeSlotsQuery) ([]queries.DaySlotsView, error) {
				s.Equal("Asia/Tokyo", q.GuestTimezone)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validURL+"&timezone=Asia/Tokyo", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed parameters", func() {
		cases := []struct {
			name string
			url  string
			msg  string
		}{
			{
				name: "bad host_id",
				url:  slotsURL("nope", eventTypeID.String(), from.Format(time.RFC3339), to.Format(time.RFC3339)),
				msg:  "host_id",
			},
			{
				name: "bad event_type_id",
				url:  slotsURL(hostID.String(), "nope", from.Format(time.RFC3339), to.Format(time.RFC3339)),
				msg:  "event_type_id",
			},
			{
				name: "bad from",
				url:  slotsURL(hostID.String(), eventTypeID.String(), "next-tuesday", to.Format(time.RFC3339)),
				msg:  "from",
			},
			{
				name: "bad to",
				url:  slotsURL(hostID.String(), eventTypeID.String(), from.Format(time.RFC3339), ""),
				msg:  "to",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			queriesError   error
			expectedStatus int
		}{
			{name: "event type not found", queriesError: errs.ErrEventTypeNotFound, expectedStatus: http.StatusNotFound},
			{name: "range invalid", queriesError: errs.ErrInvalidInput, expectedStatus: http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetFreeSlots(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validURL, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
