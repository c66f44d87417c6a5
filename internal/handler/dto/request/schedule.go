package request

import (
	"slotwise/internal/usecase/commands"

	"github.com/google/uuid"
)

type ScheduleRule struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}

type ScheduleOverride struct {
	Date    string  `json:"date" binding:"required"`
	Blocked bool    `json:"blocked"`
	Start   *string `json:"start,omitempty"`
	End     *string `json:"end,omitempty"`
}

type CreateScheduleRequest struct {
	Name      string             `json:"name" binding:"required"`
	Timezone  string             `json:"timezone" binding:"required"`
	IsDefault bool               `json:"is_default"`
	Rules     []ScheduleRule     `json:"rules"`
	Overrides []ScheduleOverride `json:"overrides"`
}

func (r CreateScheduleRequest) ToCommand(hostID uuid.UUID) commands.CreateScheduleRequest {
	return commands.CreateScheduleRequest{
		HostID:    hostID,
		Name:      r.Name,
		Timezone:  r.Timezone,
		IsDefault: r.IsDefault,
		Rules:     toRuleInputs(r.Rules),
		Overrides: toOverrideInputs(r.Overrides),
	}
}

// ReplaceScheduleRequest carries the full new rule and override sets; the
// update is wholesale, not a patch.
type ReplaceScheduleRequest struct {
	Rules     []ScheduleRule     `json:"rules"`
	Overrides []ScheduleOverride `json:"overrides"`
}

func (r ReplaceScheduleRequest) ToCommand(scheduleID, hostID uuid.UUID) commands.ReplaceRulesRequest {
	return commands.ReplaceRulesRequest{
		ScheduleID: scheduleID,
		HostID:     hostID,
		Rules:      toRuleInputs(r.Rules),
		Overrides:  toOverrideInputs(r.Overrides),
	}
}

func toRuleInputs(rules []ScheduleRule) []commands.RuleInput {
	out := make([]commands.RuleInput, 0, len(rules))
	for _, r := range rules {
		out = append(out, commands.RuleInput{Weekday: r.Weekday, Start: r.Start, End: r.End})
	}
	return out
}

func toOverrideInputs(overrides []ScheduleOverride) []commands.OverrideInput {
	out := make([]commands.OverrideInput, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, commands.OverrideInput{Date: o.Date, Blocked: o.Blocked, Start: o.Start, End: o.End})
	}
	return out
}
