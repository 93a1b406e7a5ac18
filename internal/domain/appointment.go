package domain

import (
	"time"

	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// AppointmentStatus represents the status of a patient appointment
type AppointmentStatus string

const (
	StatusScheduled          AppointmentStatus = "scheduled"
	StatusConfirmed          AppointmentStatus = "confirmed"
	StatusCompleted          AppointmentStatus = "completed"
	StatusCancelledByPatient AppointmentStatus = "cancelled_by_patient"
	StatusCancelledByClinic  AppointmentStatus = "cancelled_by_clinic"
	StatusNoShow             AppointmentStatus = "no_show"
)

// Appointment represents a booked patient visit. The availability service
// does not create appointments (booking lives in a separate service);
// they are read here only to mark computed slots as occupied.
type Appointment struct {
	ID              int64
	DoctorID        int64
	PatientID       int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByPatient &&
		a.Status != StatusCancelledByClinic &&
		a.Status != StatusNoShow
}

// InactiveStatuses список статусов, не занимающих слот
// Используется для фильтрации при расчете занятости слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByPatient,
	StatusCancelledByClinic,
	StatusNoShow,
}
