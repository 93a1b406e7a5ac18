package globalschedule

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
)

// GlobalScheduleRepository интерфейс репозитория глобального расписания
type GlobalScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.GlobalScheduleEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
