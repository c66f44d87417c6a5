package commands

import (
	"context"

	"slotwise/internal/domain/schedule"
	"slotwise/internal/infra"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type RuleInput struct {
	Weekday int
	Start   string // "15:04"
	End     string
}

type OverrideInput struct {
	Date    string // "2006-01-02"
	Blocked bool
	Start   *string
	End     *string
}

type CreateScheduleRequest struct {
	HostID    uuid.UUID
	Name      string
	Timezone  string
	IsDefault bool
	Rules     []RuleInput
	Overrides []OverrideInput
}

type ReplaceRulesRequest struct {
	ScheduleID uuid.UUID
	HostID     uuid.UUID
	Rules      []RuleInput
	Overrides  []OverrideInput
}

type ScheduleCommands interface {
	Create(ctx context.Context, req CreateScheduleRequest) (uuid.UUID, error)
	ReplaceRules(ctx context.Context, req ReplaceRulesRequest) error
	Delete(ctx context.Context, scheduleID, hostID uuid.UUID) error
}

type scheduleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleCommands(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow}
}

func (uc *scheduleUseCaseImpl) Create(ctx context.Context, req CreateScheduleRequest) (uuid.UUID, error) {
	entity, err := schedule.NewSchedule(req.HostID, req.Name, req.Timezone, req.IsDefault)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	rules, overrides, err := parseRuleSet(req.Rules, req.Overrides)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	entity.ReplaceRules(rules, overrides)

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.Schedules().Create(ctx, tx.DB(), entity)
		return cerr
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ReplaceRules swaps the schedule's full rule and override sets atomically.
// Existing bookings are untouched: availability rules only shape future
// computations, never already-accepted bookings.
func (uc *scheduleUseCaseImpl) ReplaceRules(ctx context.Context, req ReplaceRulesRequest) error {
	rules, overrides, err := parseRuleSet(req.Rules, req.Overrides)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ScheduleByID(ctx, req.ScheduleID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrScheduleNotFound
			}
			return derr
		}
		if snap.HostID != req.HostID {
			return errs.ErrNotAuthorized
		}
		return tx.Schedules().ReplaceRules(ctx, tx.DB(), req.ScheduleID, rules, overrides)
	})
}

func (uc *scheduleUseCaseImpl) Delete(ctx context.Context, scheduleID, hostID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ScheduleByID(ctx, scheduleID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrScheduleNotFound
			}
			return derr
		}
		if snap.HostID != hostID {
			return errs.ErrNotAuthorized
		}

		count, derr := tx.Reads().CountSchedulesByHost(ctx, hostID)
		if derr != nil {
			return derr
		}
		if count <= 1 {
			return errs.ErrLastSchedule
		}

		referenced, derr := tx.Reads().ScheduleHasActiveEventTypes(ctx, scheduleID)
		if derr != nil {
			return derr
		}
		if referenced {
			return errs.ErrScheduleReferenced
		}

		return tx.Schedules().Delete(ctx, tx.DB(), scheduleID)
	})
}

func parseRuleSet(ruleInputs []RuleInput, overrideInputs []OverrideInput) ([]schedule.Rule, []schedule.Override, error) {
	rules := make([]schedule.Rule, 0, len(ruleInputs))
	for _, in := range ruleInputs {
		start, err := schedule.ParseLocalTime(in.Start)
		if err != nil {
			return nil, nil, err
		}
		end, err := schedule.ParseLocalTime(in.End)
		if err != nil {
			return nil, nil, err
		}
		rule, err := schedule.NewRule(in.Weekday, start, end)
		if err != nil {
			return nil, nil, err
		}
		rules = append(rules, rule)
	}

	overrides := make([]schedule.Override, 0, len(overrideInputs))
	for _, in := range overrideInputs {
		date, err := schedule.ParseDate(in.Date)
		if err != nil {
			return nil, nil, err
		}
		if in.Blocked || in.Start == nil || in.End == nil {
			overrides = append(overrides, schedule.NewBlockedOverride(date))
			continue
		}
		start, err := schedule.ParseLocalTime(*in.Start)
		if err != nil {
			return nil, nil, err
		}
		end, err := schedule.ParseLocalTime(*in.End)
		if err != nil {
			return nil, nil, err
		}
		override, err := schedule.NewOverride(date, start, end)
		if err != nil {
			return nil, nil, err
		}
		overrides = append(overrides, override)
	}

	return rules, overrides, nil
}
