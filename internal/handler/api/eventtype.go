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

type EventTypeHandler struct {
	commands commands.EventTypeCommands
	catalog  queries.CatalogQueries
}

func NewEventTypeHandler(cmds commands.EventTypeCommands, catalog queries.CatalogQueries) *EventTypeHandler {
	return &EventTypeHandler{commands: cmds, catalog: catalog}
}

// @Summary Create event type
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertEventTypeRequest true "Event type"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /event-types [post]
func (h *EventTypeHandler) CreateEventType(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpsertEventTypeRequest
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

// @Summary Update event type
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Param request body reqdto.UpsertEventTypeRequest true "Event type"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /event-types/{id} [put]
func (h *EventTypeHandler) UpdateEventType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type ID format"})
		return
	}

	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpsertEventTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req.ToCommand(hostID)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate event type
// @Description Existing bookings keep their slots; new bookings are refused
// @Tags event-types
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /event-types/{id} [delete]
func (h *EventTypeHandler) DeactivateEventType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type ID format"})
		return
	}

	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.commands.Deactivate(c.Request.Context(), id, hostID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get event type
// @Tags event-types
// @Produce json
// @Param id path string true "Event type ID"
// @Success 200 {object} resdto.EventTypeResponse
// @Failure 404 {object} map[string]string
// @Router /event-types/{id} [get]
func (h *EventTypeHandler) GetEventType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type ID format"})
		return
	}

	view, err := h.catalog.EventTypeByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventTypeView(view))
}

// @Summary List event types
// @Tags event-types
// @Produce json
// @Param host_id query string true "Host ID"
// @Param active query bool false "Active only"
// @Success 200 {array} resdto.EventTypeResponse
// @Router /event-types [get]
func (h *EventTypeHandler) ListEventTypes(c *gin.Context) {
	hostID, err := uuid.Parse(c.Query("host_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid host_id"})
		return
	}

	activeOnly := c.Query("active") == "true"

	views, err := h.catalog.ListEventTypes(c.Request.Context(), hostID, activeOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]*resdto.EventTypeResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, resdto.FromEventTypeView(v))
	}
	c.JSON(http.StatusOK, resp)
}
