package create_weekly_entry

import (
	"github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule/models"
)

// CreateEntryRequest HTTP request model.
// Указатели сохраняют разницу между "не передано" и нулевым значением:
// dayOfWeek=0 - валидное воскресенье.
type CreateEntryRequest struct {
	DayOfWeek  *int   `json:"dayOfWeek"`
	TemplateID *int64 `json:"templateId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateEntryRequest) ToServiceRequest(doctorID int64) *models.CreateEntryRequest {
	return &models.CreateEntryRequest{
		DoctorID:   doctorID,
		DayOfWeek:  r.DayOfWeek,
		TemplateID: r.TemplateID,
	}
}
