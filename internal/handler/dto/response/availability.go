package response

import (
	"time"

	"slotwise/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DaySlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type FreeSlotsResponse struct {
	Days []DaySlotsResponse `json:"days"`
}

func FromDaySlots(days []queries.DaySlotsView) *FreeSlotsResponse {
	resp := FreeSlotsResponse{Days: make([]DaySlotsResponse, 0, len(days))}
	for _, day := range days {
		var d DaySlotsResponse
		_ = copier.Copy(&d, &day)
		if d.Slots == nil {
			d.Slots = []SlotResponse{}
		}
		resp.Days = append(resp.Days, d)
	}
	return &resp
}
