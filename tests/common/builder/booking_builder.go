//go:build unit || e2e

package builder

import (
	"time"

	dombooking "slotwise/internal/domain/booking"
	reqdto "slotwise/internal/handler/dto/request"
	"slotwise/internal/usecase/queries"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	Reference     string
	HostID        uuid.UUID
	EventTypeID   uuid.UUID
	GuestName     string
	GuestEmail    string
	GuestTimezone string
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	Notes         string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Minute)
	start := now.Add(48 * time.Hour)
	return &BookingBuilder{
		ID:            uuid.New(),
		Reference:     "BK7Q2M4XNP",
		HostID:        uuid.New(),
		EventTypeID:   uuid.New(),
		GuestName:     "Alex Guest",
		GuestEmail:    "guest@example.com",
		GuestTimezone: "America/New_York",
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		Status:        string(dombooking.StatusConfirmed),
		CreatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		EventTypeID:   b.EventTypeID,
		StartTime:     b.StartTime,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestTimezone: b.GuestTimezone,
		Notes:         b.Notes,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:            b.ID,
		Reference:     b.Reference,
		HostID:        b.HostID,
		EventTypeID:   b.EventTypeID,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestTimezone: b.GuestTimezone,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status,
		Notes:         b.Notes,
		Answers:       dombooking.NewAnswers(nil, nil),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		Reference:     b.Reference,
		HostID:        b.HostID,
		EventTypeID:   b.EventTypeID,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestTimezone: b.GuestTimezone,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status,
		Notes:         b.Notes,
		Answers:       dombooking.NewAnswers(nil, nil),
		CreatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithHostID(hostID uuid.UUID) *BookingBuilder {
	b.HostID = hostID
	return b
}

func (b *BookingBuilder) WithEventTypeID(eventTypeID uuid.UUID) *BookingBuilder {
	b.EventTypeID = eventTypeID
	return b
}

func (b *BookingBuilder) WithGuestEmail(email string) *BookingBuilder {
	b.GuestEmail = email
	return b
}

func (b *BookingBuilder) WithSlot(start time.Time, duration time.Duration) *BookingBuilder {
	b.StartTime = start
	b.EndTime = start.Add(duration)
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = string(status)
	return b
}

func (b *BookingBuilder) AsPending() *BookingBuilder {
	b.Status = string(dombooking.StatusPending)
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = string(dombooking.StatusCancelled)
	return b
}
