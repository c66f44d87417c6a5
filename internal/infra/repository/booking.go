package repository

import (
	"context"
	"encoding/json"
	"time"

	"slotwise/internal/domain/booking"
	"slotwise/internal/infra"
	"slotwise/internal/infra/db"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	answers, err := json.Marshal(b.Answers())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode booking answers", err)
	}

	const query = `
		INSERT INTO bookings (
			id, reference, host_id, event_type_id,
			guest_name, guest_email, guest_timezone,
			start_time, end_time, status, notes, answers,
			location, external_event_id, rescheduled_from, cancel_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	var id uuid.UUID
	err = dbtx.QueryRow(ctx, query,
		b.ID(), b.Reference(), b.HostID(), b.EventTypeID(),
		b.Guest().Name(), b.Guest().Email(), b.Guest().Timezone(),
		b.Interval().Start, b.Interval().End, b.Status().String(), b.Notes(), answers,
		b.Location(), b.ExternalEventID(), b.RescheduledFrom(), b.CancelReason(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status, reason *string) error {
	const query = `
		UPDATE bookings
		SET status = $2,
		    cancel_reason = COALESCE($3, cancel_reason),
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String(), reason)
	if err != nil {
		return wrapPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SetCalendarEvent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, externalEventID, location string) error {
	const query = `
		UPDATE bookings
		SET external_event_id = $2,
		    location = CASE WHEN $3 <> '' THEN $3 ELSE location END,
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, externalEventID, location)
	if err != nil {
		return wrapPgErr("failed to set booking calendar event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListActiveOverlapping is the conflict check's data source. FOR UPDATE
// serializes concurrent booking attempts over the same rows; the range
// predicate is a broad pre-filter and callers apply the precise
// buffer-expanded overlap test.
func (r *BookingRepository) ListActiveOverlapping(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID, from, to time.Time) ([]*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, reference, host_id, event_type_id,
		       guest_name, guest_email, guest_timezone,
		       start_time, end_time, status, notes, answers,
		       location, external_event_id, rescheduled_from, cancel_reason,
		       created_at, updated_at
		FROM bookings
		WHERE host_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
		FOR UPDATE`

	rows, err := dbtx.Query(ctx, query, hostID, from, to)
	if err != nil {
		return nil, wrapPgErr("failed to list overlapping bookings", err)
	}
	defer rows.Close()

	var snaps []*shared.BookingSnapshot
	for rows.Next() {
		snap, serr := scanBooking(rows.Scan)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", serr)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate booking rows", err)
	}
	return snaps, nil
}

func scanBooking(scan func(dest ...any) error) (*shared.BookingSnapshot, error) {
	var (
		snap    shared.BookingSnapshot
		answers []byte
	)
	err := scan(
		&snap.ID, &snap.Reference, &snap.HostID, &snap.EventTypeID,
		&snap.GuestName, &snap.GuestEmail, &snap.GuestTimezone,
		&snap.StartTime, &snap.EndTime, &snap.Status, &snap.Notes, &answers,
		&snap.Location, &snap.ExternalEventID, &snap.RescheduledFrom, &snap.CancelReason,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &snap.Answers); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}
