package repository

import (
	"context"

	"slotwise/internal/domain/schedule"
	"slotwise/internal/infra"
	"slotwise/internal/infra/db"

	"github.com/google/uuid"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) Create(ctx context.Context, dbtx db.DBTX, s *schedule.Schedule) (uuid.UUID, error) {
	// A new default schedule demotes any previous default for the host.
	if s.IsDefault() {
		const demote = `UPDATE schedules SET is_default = FALSE, updated_at = now() WHERE host_id = $1 AND is_default`
		if _, err := dbtx.Exec(ctx, demote, s.HostID()); err != nil {
			return uuid.Nil, wrapPgErr("failed to demote default schedule", err)
		}
	}

	const query = `
		INSERT INTO schedules (id, host_id, name, timezone, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		s.ID(), s.HostID(), s.Name(), s.Timezone(), s.IsDefault(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create schedule", err)
	}

	if err := r.insertRuleSet(ctx, dbtx, id, s.Rules(), s.Overrides()); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ReplaceRules swaps the full rule and override sets in place. Deletes plus
// inserts inside the caller's transaction; there is no partial patching.
func (r *ScheduleRepository) ReplaceRules(ctx context.Context, dbtx db.DBTX, scheduleID uuid.UUID, rules []schedule.Rule, overrides []schedule.Override) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM availability_rules WHERE schedule_id = $1`, scheduleID); err != nil {
		return wrapPgErr("failed to clear availability rules", err)
	}
	if _, err := dbtx.Exec(ctx, `DELETE FROM date_overrides WHERE schedule_id = $1`, scheduleID); err != nil {
		return wrapPgErr("failed to clear date overrides", err)
	}
	if _, err := dbtx.Exec(ctx, `UPDATE schedules SET updated_at = now() WHERE id = $1`, scheduleID); err != nil {
		return wrapPgErr("failed to touch schedule", err)
	}
	return r.insertRuleSet(ctx, dbtx, scheduleID, rules, overrides)
}

func (r *ScheduleRepository) Delete(ctx context.Context, dbtx db.DBTX, scheduleID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, scheduleID)
	if err != nil {
		return wrapPgErr("failed to delete schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) insertRuleSet(ctx context.Context, dbtx db.DBTX, scheduleID uuid.UUID, rules []schedule.Rule, overrides []schedule.Override) error {
	const insertRule = `
		INSERT INTO availability_rules (id, schedule_id, weekday, start_time, end_time)
		VALUES ($1, $2, $3, $4::time, $5::time)`
	for _, rule := range rules {
		_, err := dbtx.Exec(ctx, insertRule,
			uuid.New(), scheduleID, int(rule.Weekday), rule.Start.String(), rule.End.String())
		if err != nil {
			return wrapPgErr("failed to insert availability rule", err)
		}
	}

	const insertOverride = `
		INSERT INTO date_overrides (id, schedule_id, date, blocked, start_time, end_time)
		VALUES ($1, $2, $3::date, $4, $5::time, $6::time)`
	for _, o := range overrides {
		var start, end *string
		if o.Start != nil {
			s := o.Start.String()
			start = &s
		}
		if o.End != nil {
			e := o.End.String()
			end = &e
		}
		_, err := dbtx.Exec(ctx, insertOverride,
			uuid.New(), scheduleID, o.Date.String(), o.Blocked, start, end)
		if err != nil {
			return wrapPgErr("failed to insert date override", err)
		}
	}
	return nil
}
