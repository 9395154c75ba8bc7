package get_available_slots

import (
	"github.com/polishnail/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/polishnail/salon-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date             string   `json:"date"`
	TimeSlotDuration int      `json:"timeSlotDuration"`
	Slots            []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slotStrings := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slotStrings[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		TimeSlotDuration: resp.SlotDurationMinutes,
		Slots:            slotStrings,
	}
}
