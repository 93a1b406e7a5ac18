package get_resolved_week

import (
	"context"

	resolveWeek "github.com/m04kA/HSC-AvailabilityService/internal/usecase/resolve_week"
)

type ResolveWeekUseCase interface {
	Execute(ctx context.Context, req *resolveWeek.Request) (*resolveWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
