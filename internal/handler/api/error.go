package api

import (
	"errors"
	"net/http"

	"slotwise/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// writeError translates usecase sentinel errors into HTTP responses. Anything
// unmatched is a 500 with no internals leaked; the logging middleware keeps
// the original error.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrEventTypeNotFound),
		errors.Is(err, errs.ErrScheduleNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrHostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Slot unavailable"})
	case errors.Is(err, errs.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking already cancelled"})
	case errors.Is(err, errs.ErrInvalidBookingState):
		c.JSON(http.StatusConflict, gin.H{"error": "Action not valid for booking state"})
	case errors.Is(err, errs.ErrEventTypeInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Event type is inactive"})
	case errors.Is(err, errs.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized for this booking"})
	case errors.Is(err, errs.ErrLastSchedule):
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete the last schedule"})
	case errors.Is(err, errs.ErrScheduleReferenced):
		c.JSON(http.StatusConflict, gin.H{"error": "Schedule is referenced by active event types"})
	case errors.Is(err, errs.ErrDomainValidationFailed), errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
