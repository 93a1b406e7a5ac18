package create_exception

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/service/exception/models"
)

type ExceptionService interface {
	Create(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
