package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "slotwise/internal/handler/dto/request"
	resdto "slotwise/internal/handler/dto/response"
	"slotwise/internal/handler/middleware"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/commands"
	"slotwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrys queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmds, queries: qrys}
}

// @Summary Create booking
// @Description Book a slot as a guest; the slot is re-validated transactionally
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	snap, err := h.commands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, errs.ErrSlotUnavailable) {
			middleware.ObserveBookingConflict()
		}
		writeError(c, err)
		return
	}

	middleware.ObserveBookingCreated(snap.Status)
	c.JSON(http.StatusCreated, resdto.FromBookingSnapshot(snap))
}

// @Summary Reschedule booking
// @Description Atomically retire the booking and create its successor at a new time
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "Reschedule request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	var req reqdto.RescheduleBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	snap, err := h.commands.Reschedule(c.Request.Context(), commands.RescheduleBookingRequest{
		BookingID:    id,
		EventTypeID:  req.EventTypeID,
		NewStartTime: req.NewStartTime,
		Requester:    requesterFrom(c, req.RequesterEmail),
	})
	if err != nil {
		if errors.Is(err, errs.ErrSlotUnavailable) {
			middleware.ObserveBookingConflict()
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

// @Summary Cancel booking
// @Description Cancel a booking as its guest or the owning host
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancel request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.commands.Cancel(c.Request.Context(), id, requesterFrom(c, req.RequesterEmail), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Confirm booking
// @Description Confirm a pending booking (host only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.hostAction(c, h.commands.Confirm)
}

// @Summary Mark no-show
// @Description Mark a confirmed, ended booking as a no-show (host only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/no-show [post]
func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	h.hostAction(c, h.commands.MarkNoShow)
}

// @Summary Get booking
// @Description Get booking by ID (host only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if view.HostID != hostID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking by reference
// @Description Look up a booking by its external reference code
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/ref/{reference} [get]
func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	view, err := h.queries.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List host bookings
// @Description List the authenticated host's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Param status query []string false "Status filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	filter, err := bookingFilterFrom(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	views, err := h.queries.ListByHost(c.Request.Context(), hostID, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]*resdto.BookingResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, resdto.FromBookingView(v))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) hostAction(c *gin.Context, action func(ctx context.Context, bookingID, hostID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	hostID, ok := middleware.GetHostID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := action(c.Request.Context(), id, hostID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// requesterFrom assembles the identity acting on a booking: the bearer token's
// host when present, plus any guest email supplied in the request body.
func requesterFrom(c *gin.Context, email string) commands.Requester {
	req := commands.Requester{Email: email}
	if hostID, ok := middleware.GetHostID(c); ok {
		req.HostID = &hostID
	}
	return req
}

func bookingFilterFrom(c *gin.Context) (queries.BookingFilter, error) {
	var filter queries.BookingFilter

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return filter, errors.New("invalid from timestamp")
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return filter, errors.New("invalid to timestamp")
		}
		filter.To = &to
	}
	filter.Statuses = c.QueryArray("status")

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return filter, errors.New("invalid limit")
		}
		filter.Limit = limit
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return filter, errors.New("invalid offset")
		}
		filter.Offset = offset
	}
	return filter, nil
}
