package weeklyschedule

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

// WeeklyScheduleRepository интерфейс репозитория недельного расписания
type WeeklyScheduleRepository interface {
	Create(ctx context.Context, entry *domain.WeeklyScheduleEntry) (*domain.WeeklyScheduleEntry, error)
	GetByDoctorID(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error)
	Delete(ctx context.Context, id int64) error
}

// TemplateRepository интерфейс репозитория шаблонов временных слотов
type TemplateRepository interface {
	GetAll(ctx context.Context) ([]*domain.TimeSlotTemplate, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlotTemplate, error)
}

// StaffServiceClient интерфейс клиента реестра врачей
type StaffServiceClient interface {
	GetDoctor(ctx context.Context, doctorID int64) (*staffservice.Doctor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
