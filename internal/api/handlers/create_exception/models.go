package create_exception

import (
	"time"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/service/exception/models"
	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// CreateExceptionRequest HTTP request model
type CreateExceptionRequest struct {
	ExceptionDate string  `json:"exceptionDate"` // "2026-03-15"
	ExceptionType string  `json:"exceptionType"` // UNAVAILABLE | CUSTOM_HOURS
	StartTime     *string `json:"startTime,omitempty"`
	EndTime       *string `json:"endTime,omitempty"`
	Reason        *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// Пустая дата остается нулевой, а времена передаются как есть:
// пополевую валидацию формата выполняет сервис.
func (r *CreateExceptionRequest) ToServiceRequest(doctorID int64) (*models.CreateExceptionRequest, error) {
	req := &models.CreateExceptionRequest{
		DoctorID:      doctorID,
		ExceptionType: domain.ExceptionType(r.ExceptionType),
		Reason:        r.Reason,
	}

	if r.ExceptionDate != "" {
		date, err := time.Parse(domain.DateFormat, r.ExceptionDate)
		if err != nil {
			return nil, err
		}
		req.ExceptionDate = date
	}

	if r.StartTime != nil {
		ts := types.TimeString(*r.StartTime)
		req.StartTime = &ts
	}
	if r.EndTime != nil {
		ts := types.TimeString(*r.EndTime)
		req.EndTime = &ts
	}

	return req, nil
}
