package exception

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	Create(ctx context.Context, exc *domain.ScheduleException) (*domain.ScheduleException, error)
	GetByDoctorWithFilter(ctx context.Context, filter domain.ExceptionRangeFilter) ([]*domain.ScheduleException, error)
	Delete(ctx context.Context, id int64) error
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
