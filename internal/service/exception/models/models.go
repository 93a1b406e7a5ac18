package models

import (
	"time"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// Request модели

// CreateExceptionRequest запрос на создание исключения расписания
type CreateExceptionRequest struct {
	DoctorID      int64
	ExceptionDate time.Time // нулевое значение = не задано
	ExceptionType domain.ExceptionType
	StartTime     *types.TimeString
	EndTime       *types.TimeString
	Reason        *string
}

// ListExceptionsRequest запрос на получение исключений врача за период
type ListExceptionsRequest struct {
	DoctorID int64
	FromDate *time.Time
	ToDate   *time.Time
}

// Response модели

// ExceptionResponse ответ с данными исключения расписания
type ExceptionResponse struct {
	ID            int64             `json:"id"`
	DoctorID      int64             `json:"doctorId"`
	ExceptionDate string            `json:"exceptionDate"`
	ExceptionType string            `json:"exceptionType"`
	StartTime     *types.TimeString `json:"startTime,omitempty"`
	EndTime       *types.TimeString `json:"endTime,omitempty"`
	Reason        *string           `json:"reason,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ExceptionListResponse ответ со списком исключений
type ExceptionListResponse struct {
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// ToDomainException конвертирует запрос в domain модель.
// Для UNAVAILABLE временные поля обнуляются, даже если были переданы.
func (r *CreateExceptionRequest) ToDomainException() *domain.ScheduleException {
	exc := &domain.ScheduleException{
		DoctorID:      r.DoctorID,
		ExceptionDate: r.ExceptionDate,
		ExceptionType: r.ExceptionType,
		Reason:        r.Reason,
	}

	if r.ExceptionType == domain.ExceptionCustomHours {
		exc.StartTime = r.StartTime
		exc.EndTime = r.EndTime
	}

	return exc
}

// FromDomainException конвертирует domain модель в DTO
func FromDomainException(e *domain.ScheduleException) *ExceptionResponse {
	if e == nil {
		return nil
	}

	return &ExceptionResponse{
		ID:            e.ID,
		DoctorID:      e.DoctorID,
		ExceptionDate: e.ExceptionDate.Format(domain.DateFormat),
		ExceptionType: string(e.ExceptionType),
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Reason:        e.Reason,
		CreatedAt:     e.CreatedAt,
	}
}

// FromDomainExceptionList конвертирует список domain моделей в DTO
func FromDomainExceptionList(exceptions []*domain.ScheduleException) *ExceptionListResponse {
	resp := &ExceptionListResponse{
		Exceptions: make([]ExceptionResponse, 0, len(exceptions)),
	}

	for _, exc := range exceptions {
		if excResp := FromDomainException(exc); excResp != nil {
			resp.Exceptions = append(resp.Exceptions, *excResp)
		}
	}

	return resp
}
