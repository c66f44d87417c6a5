package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimezone = errors.New("invalid IANA timezone")
	ErrEmptyName       = errors.New("schedule name cannot be empty")
)

// Schedule is a host's named availability calendar: an IANA timezone plus
// weekly rules and date overrides. Rule and override sets are replaced
// wholesale, never patched in place.
type Schedule struct {
	id        uuid.UUID
	hostID    uuid.UUID
	name      string
	timezone  string
	isDefault bool
	rules     []Rule
	overrides []Override
	createdAt time.Time
	updatedAt time.Time
}

func NewSchedule(hostID uuid.UUID, name, timezone string, isDefault bool) (*Schedule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, ErrInvalidTimezone
	}
	return &Schedule{
		id:        uuid.New(),
		hostID:    hostID,
		name:      name,
		timezone:  timezone,
		isDefault: isDefault,
	}, nil
}

func ReconstructSchedule(
	id, hostID uuid.UUID,
	name, timezone string,
	isDefault bool,
	rules []Rule,
	overrides []Override,
	createdAt, updatedAt time.Time,
) *Schedule {
	return &Schedule{
		id:        id,
		hostID:    hostID,
		name:      name,
		timezone:  timezone,
		isDefault: isDefault,
		rules:     rules,
		overrides: overrides,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ReplaceRules swaps the full rule and override sets.
func (s *Schedule) ReplaceRules(rules []Rule, overrides []Override) {
	s.rules = rules
	s.overrides = overrides
}

// Resolved returns the schedule in the form the availability engine consumes,
// with the timezone loaded into a concrete location.
func (s *Schedule) Resolved() (Resolved, error) {
	loc, err := time.LoadLocation(s.timezone)
	if err != nil {
		return Resolved{}, ErrInvalidTimezone
	}
	return Resolved{
		Location:  loc,
		Rules:     s.rules,
		Overrides: s.overrides,
	}, nil
}

func (s *Schedule) ID() uuid.UUID         { return s.id }
func (s *Schedule) HostID() uuid.UUID     { return s.hostID }
func (s *Schedule) Name() string          { return s.name }
func (s *Schedule) Timezone() string      { return s.timezone }
func (s *Schedule) IsDefault() bool       { return s.isDefault }
func (s *Schedule) Rules() []Rule         { return s.rules }
func (s *Schedule) Overrides() []Override { return s.overrides }
func (s *Schedule) CreatedAt() time.Time  { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time  { return s.updatedAt }

// Resolved is the pure-computation view of a schedule.
type Resolved struct {
	Location  *time.Location
	Rules     []Rule
	Overrides []Override
}

// OverrideFor returns the override pinned to the given date, if any.
func (r Resolved) OverrideFor(date Date) (Override, bool) {
	for _, o := range r.Overrides {
		if o.Date == date {
			return o, true
		}
	}
	return Override{}, false
}

// RulesFor returns all weekly rules matching the date's weekday.
func (r Resolved) RulesFor(date Date) []Rule {
	var matched []Rule
	for _, rule := range r.Rules {
		if rule.Weekday == date.Weekday() {
			matched = append(matched, rule)
		}
	}
	return matched
}
