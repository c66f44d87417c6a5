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

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	mockCatalog  *queriesmock.MockCatalogQueries
	handler      *api.ScheduleHandler
	hostID       uuid.UUID
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockCommands, s.mockCatalog)
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

	s.router.POST("/schedules", requireHost, s.handler.CreateSchedule)
	s.router.GET("/schedules", requireHost, s.handler.ListSchedules)
	s.router.GET("/schedules/:id", requireHost, s.handler.GetSchedule)
	s.router.PUT("/schedules/:id", requireHost, s.handler.ReplaceSchedule)
	s.router.DELETE("/schedules/:id", requireHost, s.handler.DeleteSchedule)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func (s *ScheduleHandlerTestSuite) TestCreateSchedule() {
	url := "/schedules"
	reqBody := builder.NewScheduleBuilder().BuildCreateRequestDTO()
	scheduleID := uuid.New()

	s.Run("success: returns 201 Created with the new ID", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(scheduleID, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "host-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(scheduleID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: timezone", mutate: testutil.Field("timezone", nil)},
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

func (s *ScheduleHandlerTestSuite) TestReplaceSchedule() {
	scheduleID := uuid.New()
	url := "/schedules/" + scheduleID.String()
	reqBody := builder.NewScheduleBuilder().BuildReplaceRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ReplaceRules(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "host-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the schedule does not exist", func() {
		s.mockCommands.EXPECT().ReplaceRules(gomock.Any(), gomock.Any()).
			Return(errs.ErrScheduleNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 on malformed schedule ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/schedules/not-a-uuid", reqBody, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid schedule ID")
	})
}

func (s *ScheduleHandlerTestSuite) TestDeleteSchedule() {
	scheduleID := uuid.New()
	url := "/schedules/" + scheduleID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), scheduleID, s.hostID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "host-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when deleting the last schedule", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), scheduleID, s.hostID).
			Return(errs.ErrLastSchedule).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "last schedule")
	})

	s.Run("error: 409 when active event types reference it", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), scheduleID, s.hostID).
			Return(errs.ErrScheduleReferenced).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "referenced")
	})
}

func (s *ScheduleHandlerTestSuite) TestGetSchedule() {
	s.Run("success: returns the host's own schedule", func() {
		view := builder.NewScheduleBuilder().WithHostID(s.hostID).BuildView()
		s.mockCatalog.EXPECT().ScheduleByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules/"+view.ID.String(), nil, "host-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body["name"])
	})

	s.Run("error: 404 for another host's schedule", func() {
		view := builder.NewScheduleBuilder().BuildView()
		s.mockCatalog.EXPECT().ScheduleByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules/"+view.ID.String(), nil, "host-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *ScheduleHandlerTestSuite) TestListSchedules() {
	s.Run("success: returns all the host's schedules", func() {
		views := []*queries.ScheduleView{
			builder.NewScheduleBuilder().WithHostID(s.hostID).BuildView(),
			builder.NewScheduleBuilder().WithHostID(s.hostID).AsSecondary().WithName("Weekend").BuildView(),
		}
		s.mockCatalog.EXPECT().ListSchedules(gomock.Any(), s.hostID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules", nil, "host-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}
