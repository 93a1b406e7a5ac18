package get_weekly_schedule

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule/models"
)

type WeeklyScheduleService interface {
	ListByDoctor(ctx context.Context, doctorID int64) (*models.EntryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
