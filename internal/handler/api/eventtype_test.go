//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"slotwise/internal/handler/api"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/queries"
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

type EventTypeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEventTypeCommands
	mockCatalog  *queriesmock.MockCatalogQueries
	handler      *api.EventTypeHandler
	hostID       uuid.UUID
}

func (s *EventTypeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEventTypeCommands(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewEventTypeHandler(s.mockCommands, s.mockCatalog)
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

	s.router.POST("/event-types", requireHost, s.handler.CreateEventType)
	s.router.PUT("/event-types/:id", requireHost, s.handler.UpdateEventType)
	s.router.DELETE("/event-types/:id", requireHost, s.handler.DeactivateEventType)
	s.router.GET("/event-types", s.handler.ListEventTypes)
	s.router.GET("/event-types/:id", s.handler.GetEventType)
}

func (s *EventTypeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventTypeHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventTypeHandlerTestSuite))
}

func (s *EventTypeHandlerTestSuite) TestCreateEventType() {
	url := "/event-types"
	reqBody := builder.NewEventTypeBuilder().BuildUpsertRequestDTO()
	eventTypeID := uuid.New()

	s.Run("success: returns 201 Created with the new ID", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(eventTypeID, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "host-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(eventTypeID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: duration_min", mutate: testutil.Field("duration_min", nil)},
			{name: "negative buffer_before_min", mutate: testutil.Field("buffer_before_min", -5)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "host-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrDomainValidationFailed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *EventTypeHandlerTestSuite) TestUpdateEventType() {
	eventTypeID := uuid.New()
	url := "/event-types/" + eventTypeID.String()
	reqBody := builder.NewEventTypeBuilder().BuildUpsertRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), eventTypeID, gomock.Any()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "host-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the event type does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), eventTypeID, gomock.Any()).
			Return(errs.ErrEventTypeNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *EventTypeHandlerTestSuite) TestDeactivateEventType() {
	eventTypeID := uuid.New()
	url := "/event-types/" + eventTypeID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), eventTypeID, s.hostID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "host-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/event-types/nope", nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event type ID")
	})
}

func (s *EventTypeHandlerTestSuite) TestGetEventType() {
	s.Run("success: public fetch by ID", func() {
		view := builder.NewEventTypeBuilder().BuildView()
		s.mockCatalog.EXPECT().EventTypeByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/event-types/"+view.ID.String(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body["name"])
	})

	s.Run("error: 404 when unknown", func() {
		id := uuid.New()
		s.mockCatalog.EXPECT().EventTypeByID(gomock.Any(), id).
			Return(nil, errs.ErrEventTypeNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/event-types/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *EventTypeHandlerTestSuite) TestListEventTypes() {
	hostID := uuid.New()

	s.Run("success: lists a host's event types", func() {
		views := []*queries.EventTypeView{
			builder.NewEventTypeBuilder().WithHostID(hostID).BuildView(),
			builder.NewEventTypeBuilder().WithHostID(hostID).AsInactive().BuildView(),
		}
		s.mockCatalog.EXPECT().ListEventTypes(gomock.Any(), hostID, false).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/event-types?host_id="+hostID.String(), nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: active=true narrows to active event types", func() {
		s.mockCatalog.EXPECT().ListEventTypes(gomock.Any(), hostID, true).
			Return([]*queries.EventTypeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/event-types?host_id="+hostID.String()+"&active=true", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without a host_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/event-types", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "host_id")
	})
}
