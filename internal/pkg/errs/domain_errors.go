package errs

import "errors"

// Sentinel errors shared across usecase layers. Handlers branch on these to
// pick a response; SlotUnavailable and InvalidBookingState are expected
// business outcomes, not failures.
var (
	// Lookup errors
	ErrHostNotFound      = errors.New("host not found")
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrBookingNotFound   = errors.New("booking not found")

	// Booking errors
	ErrEventTypeInactive   = errors.New("event type is inactive")
	ErrSlotUnavailable     = errors.New("slot unavailable")
	ErrInvalidBookingState = errors.New("action not valid for booking state")
	ErrAlreadyCancelled    = errors.New("booking already cancelled")
	ErrNotAuthorized       = errors.New("requester not authorized for booking")

	// Validation errors
	ErrInvalidInput           = errors.New("invalid input")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Schedule errors
	ErrLastSchedule       = errors.New("cannot delete the host's last schedule")
	ErrScheduleReferenced = errors.New("schedule referenced by active event type")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
