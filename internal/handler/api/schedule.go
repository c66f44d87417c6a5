package api

import (
	"net/http"

	reqdto "slotwise/internal/handler/dto/request"
	resdto "slotwise/internal/handler/dto/response"
	"slotwise/internal/handler/middleware"
	"slotwise/internal/usecase/commands"
	"slotwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	commands commands.ScheduleCommands
	catalog  queries.CatalogQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, catalog queries.CatalogQueries) *ScheduleHandler {
	return &ScheduleHandler{commands: cmds, catalog: catalog}
}

// @Summary Create schedule
// @Description Create an availability schedule with rules and overrides
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateScheduleRequest true "Schedule"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToCommand(hostID))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Replace schedule rules
// @Description Replace the schedule's full rule and override sets
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body reqdto.ReplaceScheduleRequest true "New rule sets"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) ReplaceSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID format"})
		return
	}

	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ReplaceScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.ReplaceRules(c.Request.Context(), req.ToCommand(id, hostID)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete schedule
// @Description Delete a schedule that is neither the last one nor referenced
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID format"})
		return
	}

	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id, hostID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get schedule
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID format"})
		return
	}

	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.catalog.ScheduleByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if view.HostID != hostID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary List schedules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScheduleResponse
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.catalog.ListSchedules(c.Request.Context(), hostID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]*resdto.ScheduleResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, resdto.FromScheduleView(v))
	}
	c.JSON(http.StatusOK, resp)
}
