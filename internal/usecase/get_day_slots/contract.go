package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	GetByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time) (*domain.ScheduleException, error)
}

// WeeklyScheduleRepository интерфейс репозитория недельного расписания
type WeeklyScheduleRepository interface {
	GetByDoctorID(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error)
}

// GlobalScheduleRepository интерфейс репозитория глобального расписания
type GlobalScheduleRepository interface {
	GetByDayOfWeek(ctx context.Context, dayOfWeek int) (*domain.GlobalScheduleEntry, error)
}

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	GetActiveByDoctorAndDate(ctx context.Context, doctorID int64, date time.Time) ([]*domain.Appointment, error)
}

// StaffServiceClient интерфейс клиента реестра врачей
type StaffServiceClient interface {
	GetDoctor(ctx context.Context, doctorID int64) (*staffservice.Doctor, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
