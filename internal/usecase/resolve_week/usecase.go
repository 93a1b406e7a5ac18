package resolve_week

import (
	"context"
	"errors"
	"fmt"

	staffClient "github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

// UseCase use case разрешения недельного расписания врача
type UseCase struct {
	globalRepo  GlobalScheduleRepository
	weeklyRepo  WeeklyScheduleRepository
	staffClient StaffServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	globalRepo GlobalScheduleRepository,
	weeklyRepo WeeklyScheduleRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		globalRepo:  globalRepo,
		weeklyRepo:  weeklyRepo,
		staffClient: staffClient,
		logger:      logger,
	}
}

// Execute выполняет use case разрешения недельного расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveWeek: doctor=%d", req.DoctorID)

	// 1. Валидация входных данных
	if req.DoctorID <= 0 {
		uc.logger.Warn("ResolveWeek: invalid doctor id=%d", req.DoctorID)
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	// 2. Проверяем существование врача
	if _, err := uc.staffClient.GetDoctor(ctx, req.DoctorID); err != nil {
		if errors.Is(err, staffClient.ErrDoctorNotFound) {
			uc.logger.Warn("ResolveWeek: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("ResolveWeek: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 3. Загружаем обе коллекции
	globalEntries, err := uc.globalRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("ResolveWeek: failed to get global schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get global schedule: %v", ErrInternal, err)
	}

	weeklyEntries, err := uc.weeklyRepo.GetByDoctorID(ctx, req.DoctorID)
	if err != nil {
		uc.logger.Error("ResolveWeek: failed to get weekly schedule for doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	// 4. Чистое разрешение цепочки переопределений
	days, err := resolveWeek(globalEntries, weeklyEntries)
	if err != nil {
		uc.logger.Warn("ResolveWeek: resolution failed for doctor id=%d: %v", req.DoctorID, err)
		return nil, err
	}

	uc.logger.Info("ResolveWeek: resolved %d days for doctor=%d (weekly entries: %d)",
		len(days), req.DoctorID, len(weeklyEntries))

	return &Response{
		DoctorID: req.DoctorID,
		Days:     days,
	}, nil
}
