package api

import (
	"net/http"
	"time"

	resdto "slotwise/internal/handler/dto/response"
	"slotwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Get free slots
// @Description Compute bookable slots for an event type over a date range
// @Tags availability
// @Produce json
// @Param host_id query string true "Host ID"
// @Param event_type_id query string true "Event type ID"
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Param timezone query string false "Display timezone (IANA name)"
// @Success 200 {object} resdto.FreeSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/slots [get]
func (h *AvailabilityHandler) GetFreeSlots(c *gin.Context) {
	hostID, err := uuid.Parse(c.Query("host_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid host_id"})
		return
	}
	eventTypeID, err := uuid.Parse(c.Query("event_type_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_type_id"})
		return
	}
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from timestamp"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to timestamp"})
		return
	}

	days, err := h.availability.GetFreeSlots(c.Request.Context(), queries.GetFreeSlotsQuery{
		HostID:        hostID,
		EventTypeID:   eventTypeID,
		From:          from,
		To:            to,
		GuestTimezone: c.Query("timezone"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDaySlots(days))
}
