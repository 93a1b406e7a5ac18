package get_templates

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule/models"
)

type WeeklyScheduleService interface {
	ListTemplates(ctx context.Context) (*models.TemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
