package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"slotwise/internal/infra"
	"slotwise/internal/infra/db"
	"slotwise/internal/usecase/queries"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store is the query-side data access over raw SQL. Stateless; the DBTX to
// run on comes in per call so reads can share a transaction when needed.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var _ queries.ReadStore = (*Store)(nil)

const bookingColumns = `
	id, reference, host_id, event_type_id,
	guest_name, guest_email, guest_timezone,
	start_time, end_time, status, notes, answers,
	location, external_event_id, rescheduled_from, cancel_reason,
	created_at, updated_at`

func (s *Store) BookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	snap, err := scanBooking(row.Scan)
	if err != nil {
		return nil, wrapReadErr("failed to find booking by id", err)
	}
	return snap, nil
}

func (s *Store) BookingByReference(ctx context.Context, dbtx db.DBTX, reference string) (*shared.BookingSnapshot, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE reference = $1`, reference)
	snap, err := scanBooking(row.Scan)
	if err != nil {
		return nil, wrapReadErr("failed to find booking by reference", err)
	}
	return snap, nil
}

func (s *Store) BookingsByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID, filter queries.BookingFilter) ([]*shared.BookingSnapshot, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE host_id = $1
		  AND ($2::timestamptz IS NULL OR end_time > $2)
		  AND ($3::timestamptz IS NULL OR start_time < $3)
		  AND ($4::text[] IS NULL OR status = ANY($4))
		ORDER BY start_time
		LIMIT $5 OFFSET $6`

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var statuses any
	if len(filter.Statuses) > 0 {
		statuses = filter.Statuses
	}

	rows, err := dbtx.Query(ctx, query, hostID, filter.From, filter.To, statuses, limit, filter.Offset)
	if err != nil {
		return nil, wrapReadErr("failed to list bookings", err)
	}
	defer rows.Close()

	var snaps []*shared.BookingSnapshot
	for rows.Next() {
		snap, serr := scanBooking(rows.Scan)
		if serr != nil {
			return nil, wrapReadErr("failed to scan booking row", serr)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate booking rows", err)
	}
	return snaps, nil
}

func (s *Store) ActiveBookingsInRange(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID, from, to time.Time) ([]*shared.BookingSnapshot, error) {
	const query = `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE host_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time`

	rows, err := dbtx.Query(ctx, query, hostID, from, to)
	if err != nil {
		return nil, wrapReadErr("failed to list active bookings in range", err)
	}
	defer rows.Close()

	var snaps []*shared.BookingSnapshot
	for rows.Next() {
		snap, serr := scanBooking(rows.Scan)
		if serr != nil {
			return nil, wrapReadErr("failed to scan booking row", serr)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate booking rows", err)
	}
	return snaps, nil
}

const eventTypeColumns = `
	id, host_id, name, duration_min, slot_step_min,
	buffer_before_min, buffer_after_min, minimum_notice_min,
	max_per_day, schedule_id, requires_confirmation, active,
	created_at, updated_at`

func (s *Store) EventTypeByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.EventTypeSnapshot, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+eventTypeColumns+` FROM event_types WHERE id = $1`, id)
	snap, err := scanEventType(row.Scan)
	if err != nil {
		return nil, wrapReadErr("failed to find event type", err)
	}
	return snap, nil
}

func (s *Store) EventTypesByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID, activeOnly bool) ([]*shared.EventTypeSnapshot, error) {
	const query = `SELECT ` + eventTypeColumns + `
		FROM event_types
		WHERE host_id = $1 AND ($2 = FALSE OR active)
		ORDER BY created_at`

	rows, err := dbtx.Query(ctx, query, hostID, activeOnly)
	if err != nil {
		return nil, wrapReadErr("failed to list event types", err)
	}
	defer rows.Close()

	var snaps []*shared.EventTypeSnapshot
	for rows.Next() {
		snap, serr := scanEventType(rows.Scan)
		if serr != nil {
			return nil, wrapReadErr("failed to scan event type row", serr)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate event type rows", err)
	}
	return snaps, nil
}

func (s *Store) ScheduleByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ScheduleSnapshot, error) {
	const query = `
		SELECT id, host_id, name, timezone, is_default, created_at, updated_at
		FROM schedules WHERE id = $1`
	return s.loadSchedule(ctx, dbtx, query, id)
}

func (s *Store) DefaultScheduleByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID) (*shared.ScheduleSnapshot, error) {
	const query = `
		SELECT id, host_id, name, timezone, is_default, created_at, updated_at
		FROM schedules WHERE host_id = $1 AND is_default`
	return s.loadSchedule(ctx, dbtx, query, hostID)
}

func (s *Store) SchedulesByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID) ([]*shared.ScheduleSnapshot, error) {
	const query = `
		SELECT id, host_id, name, timezone, is_default, created_at, updated_at
		FROM schedules WHERE host_id = $1
		ORDER BY is_default DESC, created_at`

	rows, err := dbtx.Query(ctx, query, hostID)
	if err != nil {
		return nil, wrapReadErr("failed to list schedules", err)
	}
	defer rows.Close()

	var snaps []*shared.ScheduleSnapshot
	for rows.Next() {
		var snap shared.ScheduleSnapshot
		if serr := rows.Scan(&snap.ID, &snap.HostID, &snap.Name, &snap.Timezone,
			&snap.IsDefault, &snap.CreatedAt, &snap.UpdatedAt); serr != nil {
			return nil, wrapReadErr("failed to scan schedule row", serr)
		}
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate schedule rows", err)
	}

	for _, snap := range snaps {
		if err := s.loadRuleSet(ctx, dbtx, snap); err != nil {
			return nil, err
		}
	}
	return snaps, nil
}

func (s *Store) CountSchedulesByHost(ctx context.Context, dbtx db.DBTX, hostID uuid.UUID) (int, error) {
	var count int
	err := dbtx.QueryRow(ctx, `SELECT count(*) FROM schedules WHERE host_id = $1`, hostID).Scan(&count)
	if err != nil {
		return 0, wrapReadErr("failed to count schedules", err)
	}
	return count, nil
}

func (s *Store) ScheduleHasActiveEventTypes(ctx context.Context, dbtx db.DBTX, scheduleID uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM event_types WHERE schedule_id = $1 AND active)`,
		scheduleID).Scan(&exists)
	if err != nil {
		return false, wrapReadErr("failed to check schedule references", err)
	}
	return exists, nil
}

func (s *Store) loadSchedule(ctx context.Context, dbtx db.DBTX, query string, arg any) (*shared.ScheduleSnapshot, error) {
	var snap shared.ScheduleSnapshot
	err := dbtx.QueryRow(ctx, query, arg).Scan(
		&snap.ID, &snap.HostID, &snap.Name, &snap.Timezone,
		&snap.IsDefault, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("failed to find schedule", err)
	}
	if err := s.loadRuleSet(ctx, dbtx, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// loadRuleSet attaches rules and overrides. Local times come back as "HH:MM"
// strings and dates as "YYYY-MM-DD"; the snapshot keeps them textual and the
// domain layer parses on resolve.
func (s *Store) loadRuleSet(ctx context.Context, dbtx db.DBTX, snap *shared.ScheduleSnapshot) error {
	const rulesQuery = `
		SELECT weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM availability_rules
		WHERE schedule_id = $1
		ORDER BY weekday, start_time`

	rows, err := dbtx.Query(ctx, rulesQuery, snap.ID)
	if err != nil {
		return wrapReadErr("failed to list availability rules", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r shared.RuleRow
		if serr := rows.Scan(&r.Weekday, &r.Start, &r.End); serr != nil {
			return wrapReadErr("failed to scan availability rule", serr)
		}
		snap.Rules = append(snap.Rules, r)
	}
	if err := rows.Err(); err != nil {
		return wrapReadErr("failed to iterate availability rules", err)
	}

	const overridesQuery = `
		SELECT to_char(date, 'YYYY-MM-DD'), blocked,
		       to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM date_overrides
		WHERE schedule_id = $1
		ORDER BY date`

	oRows, err := dbtx.Query(ctx, overridesQuery, snap.ID)
	if err != nil {
		return wrapReadErr("failed to list date overrides", err)
	}
	defer oRows.Close()

	for oRows.Next() {
		var o shared.OverrideRow
		if serr := oRows.Scan(&o.Date, &o.Blocked, &o.Start, &o.End); serr != nil {
			return wrapReadErr("failed to scan date override", serr)
		}
		snap.Overrides = append(snap.Overrides, o)
	}
	if err := oRows.Err(); err != nil {
		return wrapReadErr("failed to iterate date overrides", err)
	}
	return nil
}

func scanEventType(scan func(dest ...any) error) (*shared.EventTypeSnapshot, error) {
	var snap shared.EventTypeSnapshot
	err := scan(
		&snap.ID, &snap.HostID, &snap.Name, &snap.DurationMin, &snap.SlotStepMin,
		&snap.BufferBeforeMin, &snap.BufferAfterMin, &snap.MinimumNoticeMin,
		&snap.MaxPerDay, &snap.ScheduleID, &snap.RequiresConfirmation, &snap.Active,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
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

func wrapReadErr(msg string, err error) error {
	return infra.WrapRepoErr(msg, err, classify(err))
}

func classify(err error) infra.RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.KindNotFound
	}
	return infra.KindDBFailure
}
