package get_resolved_week

import (
	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	resolveWeek "github.com/m04kA/HSC-AvailabilityService/internal/usecase/resolve_week"
	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// WindowResponse одно разрешенное окно приема
type WindowResponse struct {
	StartTime           types.TimeString `json:"startTime"`
	EndTime             types.TimeString `json:"endTime"`
	SlotDurationMinutes int              `json:"slotDurationMinutes"`
	BufferTimeMinutes   int              `json:"bufferTimeMinutes"`
}

// DayResponse разрешенное расписание одного дня недели
type DayResponse struct {
	DayOfWeek         int              `json:"dayOfWeek"`
	Source            string           `json:"source"`
	Windows           []WindowResponse `json:"windows"`
	HasCustomSchedule bool             `json:"hasCustomSchedule"`
	IsFallbackDisplay bool             `json:"isFallbackDisplay"`
	IsClosed          bool             `json:"isClosed"`
}

// ResolvedWeekResponse HTTP response model: семь дней в порядке 0..6
type ResolvedWeekResponse struct {
	DoctorID int64         `json:"doctorId"`
	Days     []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveWeek.Response) *ResolvedWeekResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, fromResolvedDay(day))
	}

	return &ResolvedWeekResponse{
		DoctorID: resp.DoctorID,
		Days:     days,
	}
}

func fromResolvedDay(day domain.ResolvedDay) DayResponse {
	windows := make([]WindowResponse, 0, len(day.Windows))
	for _, w := range day.Windows {
		windows = append(windows, WindowResponse{
			StartTime:           w.StartTime,
			EndTime:             w.EndTime,
			SlotDurationMinutes: w.SlotDurationMinutes,
			BufferTimeMinutes:   w.BufferTimeMinutes,
		})
	}

	return DayResponse{
		DayOfWeek:         day.DayOfWeek,
		Source:            string(day.Source),
		Windows:           windows,
		HasCustomSchedule: day.HasCustomSchedule,
		IsFallbackDisplay: day.IsFallbackDisplay,
		IsClosed:          day.IsClosed(),
	}
}
