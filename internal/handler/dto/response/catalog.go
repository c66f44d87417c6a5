package response

import (
	"slotwise/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventTypeResponse struct {
	ID                   uuid.UUID  `json:"id"`
	HostID               uuid.UUID  `json:"hostId"`
	Name                 string     `json:"name"`
	DurationMin          int        `json:"durationMin"`
	SlotStepMin          int        `json:"slotStepMin"`
	BufferBeforeMin      int        `json:"bufferBeforeMin"`
	BufferAfterMin       int        `json:"bufferAfterMin"`
	MinimumNoticeMin     int        `json:"minimumNoticeMin"`
	MaxPerDay            *int       `json:"maxPerDay,omitempty"`
	ScheduleID           *uuid.UUID `json:"scheduleId,omitempty"`
	RequiresConfirmation bool       `json:"requiresConfirmation"`
	Active               bool       `json:"active"`
}

func FromEventTypeView(view *queries.EventTypeView) *EventTypeResponse {
	var resp EventTypeResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type ScheduleRuleResponse struct {
	Weekday int    `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type ScheduleOverrideResponse struct {
	Date    string  `json:"date"`
	Blocked bool    `json:"blocked"`
	Start   *string `json:"start,omitempty"`
	End     *string `json:"end,omitempty"`
}

type ScheduleResponse struct {
	ID        uuid.UUID                  `json:"id"`
	HostID    uuid.UUID                  `json:"hostId"`
	Name      string                     `json:"name"`
	Timezone  string                     `json:"timezone"`
	IsDefault bool                       `json:"isDefault"`
	Rules     []ScheduleRuleResponse     `json:"rules"`
	Overrides []ScheduleOverrideResponse `json:"overrides"`
}

func FromScheduleView(view *queries.ScheduleView) *ScheduleResponse {
	var resp ScheduleResponse
	_ = copier.Copy(&resp, view)
	if resp.Rules == nil {
		resp.Rules = []ScheduleRuleResponse{}
	}
	if resp.Overrides == nil {
		resp.Overrides = []ScheduleOverrideResponse{}
	}
	return &resp
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
