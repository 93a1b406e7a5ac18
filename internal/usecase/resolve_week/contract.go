package resolve_week

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

// GlobalScheduleRepository интерфейс репозитория глобального расписания
type GlobalScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.GlobalScheduleEntry, error)
}

// WeeklyScheduleRepository интерфейс репозитория недельного расписания
type WeeklyScheduleRepository interface {
	GetByDoctorID(ctx context.Context, doctorID int64) ([]*domain.WeeklyScheduleEntry, error)
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
