package domain

import (
	"time"

	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// ExceptionType represents the kind of a date-specific schedule override
type ExceptionType string

const (
	// ExceptionUnavailable полное отсутствие врача в указанную дату
	ExceptionUnavailable ExceptionType = "UNAVAILABLE"

	// ExceptionCustomHours измененные часы приема в указанную дату
	ExceptionCustomHours ExceptionType = "CUSTOM_HOURS"
)

// IsValid returns true for a known exception type
func (t ExceptionType) IsValid() bool {
	return t == ExceptionUnavailable || t == ExceptionCustomHours
}

// ScheduleException represents a date-specific override for one doctor.
// Takes precedence over both weekly entries and the global default.
// At most one exception may exist per (doctor, date).
type ScheduleException struct {
	ID            int64
	DoctorID      int64
	ExceptionDate time.Time // дата без времени
	ExceptionType ExceptionType

	// Заполнены только для CUSTOM_HOURS; для UNAVAILABLE игнорируются
	StartTime *types.TimeString
	EndTime   *types.TimeString

	Reason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUnavailable returns true if the doctor is fully unavailable on this date
func (e *ScheduleException) IsUnavailable() bool {
	return e.ExceptionType == ExceptionUnavailable
}

// CustomWindow returns the single governing window for a CUSTOM_HOURS
// exception, or false for UNAVAILABLE or malformed exceptions
func (e *ScheduleException) CustomWindow() (TimeWindow, bool) {
	if e.ExceptionType != ExceptionCustomHours || e.StartTime == nil || e.EndTime == nil {
		return TimeWindow{}, false
	}
	return TimeWindow{StartTime: *e.StartTime, EndTime: *e.EndTime}, true
}

// ExceptionRangeFilter фильтр для выборки исключений за период.
// Границы опциональны: nil - без ограничения с этой стороны.
// Выборка используется только для отображения; исключения вне
// запрошенного диапазона продолжают действовать при расчете слотов.
type ExceptionRangeFilter struct {
	DoctorID int64
	FromDate *time.Time
	ToDate   *time.Time
}
