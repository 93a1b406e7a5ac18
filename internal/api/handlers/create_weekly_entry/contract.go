package create_weekly_entry

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule/models"
)

type WeeklyScheduleService interface {
	Create(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
