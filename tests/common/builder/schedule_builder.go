//go:build unit || e2e

package builder

import (
	reqdto "slotwise/internal/handler/dto/request"
	"slotwise/internal/usecase/queries"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	ID        uuid.UUID
	HostID    uuid.UUID
	Name      string
	Timezone  string
	IsDefault bool
	Rules     []shared.RuleRow
	Overrides []shared.OverrideRow
}

func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		ID:        uuid.New(),
		HostID:    uuid.New(),
		Name:      "Working Hours",
		Timezone:  "UTC",
		IsDefault: true,
		// Monday through Friday, 09:00-17:00
		Rules: []shared.RuleRow{
			{Weekday: 1, Start: "09:00", End: "17:00"},
			{Weekday: 2, Start: "09:00", End: "17:00"},
			{Weekday: 3, Start: "09:00", End: "17:00"},
			{Weekday: 4, Start: "09:00", End: "17:00"},
			{Weekday: 5, Start: "09:00", End: "17:00"},
		},
	}
}

func (s *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *ScheduleBuilder) BuildCreateRequestDTO() reqdto.CreateScheduleRequest {
	return reqdto.CreateScheduleRequest{
		Name:      s.Name,
		Timezone:  s.Timezone,
		IsDefault: s.IsDefault,
		Rules:     s.buildRuleDTOs(),
		Overrides: s.buildOverrideDTOs(),
	}
}

func (s *ScheduleBuilder) BuildReplaceRequestDTO() reqdto.ReplaceScheduleRequest {
	return reqdto.ReplaceScheduleRequest{
		Rules:     s.buildRuleDTOs(),
		Overrides: s.buildOverrideDTOs(),
	}
}

func (s *ScheduleBuilder) BuildView() *queries.ScheduleView {
	rules := make([]queries.ScheduleRuleView, 0, len(s.Rules))
	for _, r := range s.Rules {
		rules = append(rules, queries.ScheduleRuleView{Weekday: r.Weekday, Start: r.Start, End: r.End})
	}
	overrides := make([]queries.ScheduleOverrideView, 0, len(s.Overrides))
	for _, o := range s.Overrides {
		overrides = append(overrides, queries.ScheduleOverrideView{Date: o.Date, Blocked: o.Blocked, Start: o.Start, End: o.End})
	}
	return &queries.ScheduleView{
		ID:        s.ID,
		HostID:    s.HostID,
		Name:      s.Name,
		Timezone:  s.Timezone,
		IsDefault: s.IsDefault,
		Rules:     rules,
		Overrides: overrides,
	}
}

func (s *ScheduleBuilder) BuildSnapshot() *shared.ScheduleSnapshot {
	return &shared.ScheduleSnapshot{
		ID:        s.ID,
		HostID:    s.HostID,
		Name:      s.Name,
		Timezone:  s.Timezone,
		IsDefault: s.IsDefault,
		Rules:     s.Rules,
		Overrides: s.Overrides,
	}
}

func (s *ScheduleBuilder) buildRuleDTOs() []reqdto.ScheduleRule {
	rules := make([]reqdto.ScheduleRule, 0, len(s.Rules))
	for _, r := range s.Rules {
		rules = append(rules, reqdto.ScheduleRule{Weekday: r.Weekday, Start: r.Start, End: r.End})
	}
	return rules
}

func (s *ScheduleBuilder) buildOverrideDTOs() []reqdto.ScheduleOverride {
	overrides := make([]reqdto.ScheduleOverride, 0, len(s.Overrides))
	for _, o := range s.Overrides {
		overrides = append(overrides, reqdto.ScheduleOverride{Date: o.Date, Blocked: o.Blocked, Start: o.Start, End: o.End})
	}
	return overrides
}

// Fluent builder methods
func (s *ScheduleBuilder) WithHostID(hostID uuid.UUID) *ScheduleBuilder {
	s.HostID = hostID
	return s
}

func (s *ScheduleBuilder) WithName(name string) *ScheduleBuilder {
	s.Name = name
	return s
}

func (s *ScheduleBuilder) WithTimezone(tz string) *ScheduleBuilder {
	s.Timezone = tz
	return s
}

func (s *ScheduleBuilder) WithRules(rules ...shared.RuleRow) *ScheduleBuilder {
	s.Rules = rules
	return s
}

func (s *ScheduleBuilder) WithBlockedDate(date string) *ScheduleBuilder {
	s.Overrides = append(s.Overrides, shared.OverrideRow{Date: date, Blocked: true})
	return s
}

func (s *ScheduleBuilder) WithOverride(date, start, end string) *ScheduleBuilder {
	s.Overrides = append(s.Overrides, shared.OverrideRow{Date: date, Start: &start, End: &end})
	return s
}

func (s *ScheduleBuilder) AsSecondary() *ScheduleBuilder {
	s.IsDefault = false
	return s
}
