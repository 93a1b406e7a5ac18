package get_exceptions

import (
	"context"

	"github.com/m04kA/HSC-AvailabilityService/internal/service/exception/models"
)

type ExceptionService interface {
	ListByDoctor(ctx context.Context, req *models.ListExceptionsRequest) (*models.ExceptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
