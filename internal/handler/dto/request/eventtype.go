package request

import (
	"slotwise/internal/domain/eventtype"
	"slotwise/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpsertEventTypeRequest struct {
	Name                 string     `json:"name" binding:"required"`
	DurationMin          int        `json:"duration_min" binding:"required,min=1"`
	SlotStepMin          int        `json:"slot_step_min" binding:"min=0"`
	BufferBeforeMin      int        `json:"buffer_before_min" binding:"min=0"`
	BufferAfterMin       int        `json:"buffer_after_min" binding:"min=0"`
	MinimumNoticeMin     int        `json:"minimum_notice_min" binding:"min=0"`
	MaxPerDay            *int       `json:"max_per_day,omitempty"`
	ScheduleID           *uuid.UUID `json:"schedule_id,omitempty"`
	RequiresConfirmation bool       `json:"requires_confirmation"`
}

func (r UpsertEventTypeRequest) ToCommand(hostID uuid.UUID) commands.UpsertEventTypeRequest {
	return commands.UpsertEventTypeRequest{
		HostID: hostID,
		Params: eventtype.Params{
			Name:                 r.Name,
			DurationMin:          r.DurationMin,
			SlotStepMin:          r.SlotStepMin,
			BufferBeforeMin:      r.BufferBeforeMin,
			BufferAfterMin:       r.BufferAfterMin,
			MinimumNoticeMin:     r.MinimumNoticeMin,
			MaxPerDay:            r.MaxPerDay,
			ScheduleID:           r.ScheduleID,
			RequiresConfirmation: r.RequiresConfirmation,
		},
	}
}
