package get_day_slots

import (
	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	getDaySlots "github.com/m04kA/HSC-AvailabilityService/internal/usecase/get_day_slots"
	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// SlotResponse один вычисленный слот
type SlotResponse struct {
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Status          string           `json:"status"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	DoctorID int64          `json:"doctorId"`
	Date     string         `json:"date"`
	Source   string         `json:"source,omitempty"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			Status:          string(slot.Status),
		})
	}

	return &DaySlotsResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date.Format(domain.DateFormat),
		Source:   string(resp.Source),
		Slots:    slots,
	}
}
