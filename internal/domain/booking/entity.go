package booking

import (
	"errors"
	"time"

	"slotwise/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval   = errors.New("booking end must be after start")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNotYetEnded       = errors.New("booking has not ended yet")
)

// Booking is one guest's hold on a host's time. Identity is dual: the internal
// uuid and an opaque external reference code.
type Booking struct {
	id              uuid.UUID
	reference       string
	hostID          uuid.UUID
	eventTypeID     uuid.UUID
	guest           Guest
	interval        availability.Interval
	status          Status
	notes           string
	answers         Answers
	location        string
	externalEventID string
	rescheduledFrom *uuid.UUID
	cancelReason    string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking creates a booking occupying [start, start+duration). The initial
// status comes from the event type's confirmation requirement.
func NewBooking(
	hostID, eventTypeID uuid.UUID,
	guest Guest,
	interval availability.Interval,
	requiresConfirmation bool,
	notes string,
	answers Answers,
) (*Booking, error) {
	if !interval.Start.Before(interval.End) {
		return nil, ErrInvalidInterval
	}

	status := StatusConfirmed
	if requiresConfirmation {
		status = StatusPending
	}

	return &Booking{
		id:          uuid.New(),
		reference:   NewReference(),
		hostID:      hostID,
		eventTypeID: eventTypeID,
		guest:       guest,
		interval:    interval,
		status:      status,
		notes:       notes,
		answers:     answers,
	}, nil
}

// NewSuccessor creates the replacement booking of a reschedule, carrying over
// guest identity, notes and answers, with a back-reference to the source.
func NewSuccessor(
	source *Booking,
	eventTypeID uuid.UUID,
	interval availability.Interval,
	requiresConfirmation bool,
) (*Booking, error) {
	successor, err := NewBooking(
		source.hostID,
		eventTypeID,
		source.guest,
		interval,
		requiresConfirmation,
		source.notes,
		source.answers,
	)
	if err != nil {
		return nil, err
	}
	sourceID := source.id
	successor.rescheduledFrom = &sourceID
	return successor, nil
}

func ReconstructBooking(
	id uuid.UUID,
	reference string,
	hostID, eventTypeID uuid.UUID,
	guest Guest,
	interval availability.Interval,
	status Status,
	notes string,
	answers Answers,
	location, externalEventID string,
	rescheduledFrom *uuid.UUID,
	cancelReason string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		reference:       reference,
		hostID:          hostID,
		eventTypeID:     eventTypeID,
		guest:           guest,
		interval:        interval,
		status:          status,
		notes:           notes,
		answers:         answers,
		location:        location,
		externalEventID: externalEventID,
		rescheduledFrom: rescheduledFrom,
		cancelReason:    cancelReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Confirm transitions a pending booking to confirmed.
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	return nil
}

// Cancel transitions any non-terminal booking to cancelled.
func (b *Booking) Cancel(reason string) error {
	if b.status.IsTerminal() {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.cancelReason = reason
	return nil
}

// MarkNoShow records that the guest did not attend. Only allowed on a
// confirmed booking after its end time.
func (b *Booking) MarkNoShow(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if !now.After(b.interval.End) {
		return ErrNotYetEnded
	}
	b.status = StatusNoShow
	return nil
}

// MarkRescheduled is the source side of a reschedule: terminal, paired with
// the creation of a successor in the same transaction.
func (b *Booking) MarkRescheduled() error {
	if !b.status.OccupiesSlot() {
		return ErrInvalidTransition
	}
	b.status = StatusRescheduled
	return nil
}

// SetCalendarEvent captures the remote calendar event id and any conferencing
// link produced when the event was published.
func (b *Booking) SetCalendarEvent(externalEventID, conferenceLink string) {
	b.externalEventID = externalEventID
	if conferenceLink != "" {
		b.location = conferenceLink
	}
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) Reference() string              { return b.reference }
func (b *Booking) HostID() uuid.UUID              { return b.hostID }
func (b *Booking) EventTypeID() uuid.UUID         { return b.eventTypeID }
func (b *Booking) Guest() Guest                   { return b.guest }
func (b *Booking) Interval() availability.Interval { return b.interval }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) Notes() string                  { return b.notes }
func (b *Booking) Answers() Answers               { return b.answers }
func (b *Booking) Location() string               { return b.location }
func (b *Booking) ExternalEventID() string        { return b.externalEventID }
func (b *Booking) RescheduledFrom() *uuid.UUID    { return b.rescheduledFrom }
func (b *Booking) CancelReason() string           { return b.cancelReason }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
