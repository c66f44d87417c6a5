package request

import (
	"strings"
	"time"

	"slotwise/internal/domain/booking"
	"slotwise/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuestionAnswer struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
}

type CreateBookingRequest struct {
	EventTypeID      uuid.UUID        `json:"event_type_id" binding:"required"`
	StartTime        time.Time        `json:"start_time" binding:"required"`
	GuestName        string           `json:"guest_name" binding:"required"`
	GuestEmail       string           `json:"guest_email" binding:"required,email"`
	GuestTimezone    string           `json:"guest_timezone,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	AdditionalGuests []string         `json:"additional_guests,omitempty"`
	Questions        []QuestionAnswer `json:"questions,omitempty"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	questions := make([]booking.QuestionAnswer, 0, len(r.Questions))
	for _, q := range r.Questions {
		questions = append(questions, booking.QuestionAnswer{
			Question: strings.TrimSpace(q.Question),
			Answer:   strings.TrimSpace(q.Answer),
		})
	}
	return commands.CreateBookingRequest{
		EventTypeID:      r.EventTypeID,
		StartTime:        r.StartTime,
		GuestName:        r.GuestName,
		GuestEmail:       r.GuestEmail,
		GuestTimezone:    r.GuestTimezone,
		Notes:            strings.TrimSpace(r.Notes),
		AdditionalGuests: r.AdditionalGuests,
		Questions:        questions,
	}
}

type RescheduleBookingRequest struct {
	NewStartTime time.Time `json:"new_start_time" binding:"required"`
	// EventTypeID moves the successor onto another of the host's event types.
	// Omitted, the successor keeps the source booking's event type.
	EventTypeID *uuid.UUID `json:"event_type_id,omitempty"`
	// RequesterEmail identifies the guest on unauthenticated calls. Ignored
	// when the caller holds a host token for the booking's owner.
	RequesterEmail string `json:"requester_email,omitempty"`
}

type CancelBookingRequest struct {
	RequesterEmail string  `json:"requester_email,omitempty"`
	Reason         *string `json:"reason,omitempty"`
}
