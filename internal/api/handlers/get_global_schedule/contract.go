package get_global_schedule

import (
	"context"

	globalSchedule "github.com/m04kA/HSC-AvailabilityService/internal/service/globalschedule"
)

type GlobalScheduleService interface {
	List(ctx context.Context) (*globalSchedule.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
