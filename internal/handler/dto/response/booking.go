package response

import (
	"time"

	"slotwise/internal/domain/booking"
	"slotwise/internal/usecase/queries"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID       `json:"id"`
	Reference       string          `json:"reference"`
	HostID          uuid.UUID       `json:"hostId"`
	EventTypeID     uuid.UUID       `json:"eventTypeId"`
	GuestName       string          `json:"guestName"`
	GuestEmail      string          `json:"guestEmail"`
	GuestTimezone   string          `json:"guestTimezone,omitempty"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         time.Time       `json:"endTime"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	Answers         booking.Answers `json:"answers"`
	Location        string          `json:"location,omitempty"`
	RescheduledFrom *uuid.UUID      `json:"rescheduledFrom,omitempty"`
	CancelReason    string          `json:"cancelReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingSnapshot(snap *shared.BookingSnapshot) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, snap)
	return &resp
}
