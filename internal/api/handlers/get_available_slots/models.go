package get_available_slots

import (
	"github.com/bestbuddies/grooming-booking/internal/domain"
	getAvailableSlots "github.com/bestbuddies/grooming-booking/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Slot              string `json:"slot"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	AvailableGroomers int    `json:"availableGroomers"`
	TotalGroomers     int    `json:"totalGroomers"`
	Bookable          bool   `json:"bookable"`
	Reason            string `json:"reason,omitempty"`
}

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	Date         string         `json:"date"`
	Closed       bool           `json:"closed"`
	ClosedReason string         `json:"closedReason,omitempty"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Closed:       resp.Closed,
		ClosedReason: resp.ClosedReason,
		Slots:        make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Slot:              string(s.Slot),
			StartTime:         s.StartTime,
			EndTime:           s.EndTime,
			AvailableGroomers: s.AvailableGroomers,
			TotalGroomers:     s.TotalGroomers,
			Bookable:          s.Bookable,
			Reason:            s.Reason,
		})
	}
	return out
}
