package exception

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	exceptionRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/exception"
	staffClient "github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/HSC-AvailabilityService/internal/service/exception/models"
)

// msgEndBeforeStart сообщение о нарушении порядка времени в CUSTOM_HOURS
const msgEndBeforeStart = "End time must be after start time"

// Service сервис редактирования исключений расписания
type Service struct {
	exceptionRepo ExceptionRepository
	staffClient   StaffServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса исключений
func NewService(
	exceptionRepo ExceptionRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		exceptionRepo: exceptionRepo,
		staffClient:   staffClient,
		logger:        logger,
	}
}

// Create создает исключение расписания для врача.
// Уникальность (врач, дата) не проверяется предварительно - это constraint
// БД, нарушение которого приходит как ErrDuplicateException (HTTP 409).
func (s *Service) Create(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("Create: exception for doctor=%d, type=%s", req.DoctorID, req.ExceptionType)

	// 1. Валидация полей формы
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование врача
	if _, err := s.staffClient.GetDoctor(ctx, req.DoctorID); err != nil {
		if errors.Is(err, staffClient.ErrDoctorNotFound) {
			s.logger.Warn("Create: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("Create: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 3. Создаем исключение (UNAVAILABLE теряет временные поля при конвертации)
	created, err := s.exceptionRepo.Create(ctx, req.ToDomainException())
	if err != nil {
		if errors.Is(err, exceptionRepo.ErrDuplicateException) {
			s.logger.Warn("Create: duplicate exception for doctor=%d, date=%s",
				req.DoctorID, req.ExceptionDate.Format(domain.DateFormat))
			return nil, ErrDuplicateException
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created exception id=%d", created.ID)
	return models.FromDomainException(created), nil
}

// ListByDoctor получает исключения врача за период, упорядоченные по дате
// по убыванию (сначала свежие). Порядок - контракт отображения; исключения
// вне запрошенного периода продолжают действовать при расчете слотов.
func (s *Service) ListByDoctor(ctx context.Context, req *models.ListExceptionsRequest) (*models.ExceptionListResponse, error) {
	s.logger.Info("ListByDoctor: fetching exceptions for doctor=%d", req.DoctorID)

	exceptions, err := s.exceptionRepo.GetByDoctorWithFilter(ctx, domain.ExceptionRangeFilter{
		DoctorID: req.DoctorID,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	})
	if err != nil {
		s.logger.Error("ListByDoctor: repository error for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: ListByDoctor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDoctor: fetched %d exceptions for doctor=%d", len(exceptions), req.DoctorID)
	return models.FromDomainExceptionList(exceptions), nil
}

// Delete удаляет исключение по ID.
// Безусловное удаление: подтверждение деструктивного намерения -
// обязанность вызывающей стороны.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting exception id=%d", id)

	if err := s.exceptionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("Delete: exception id=%d not found", id)
			return ErrExceptionNotFound
		}
		s.logger.Error("Delete: repository error for exception id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted exception id=%d", id)
	return nil
}

// validateCreate валидирует поля формы создания исключения.
// Для CUSTOM_HOURS оба времени обязательны и startTime < endTime:
// сравнение строк корректно, так как HH:MM фиксированной ширины.
// Для UNAVAILABLE временные поля не валидируются, даже если переданы.
func validateCreate(req *models.CreateExceptionRequest) error {
	fields := make(map[string]string)

	if req.ExceptionDate.IsZero() {
		fields["exceptionDate"] = "exceptionDate is required"
	}

	if !req.ExceptionType.IsValid() {
		fields["exceptionType"] = "exceptionType must be UNAVAILABLE or CUSTOM_HOURS"
	}

	if req.ExceptionType == domain.ExceptionCustomHours {
		switch {
		case req.StartTime == nil || req.StartTime.IsZero():
			fields["startTime"] = "startTime is required"
		case req.StartTime.Validate() != nil:
			fields["startTime"] = "startTime must be in HH:MM format"
		}

		switch {
		case req.EndTime == nil || req.EndTime.IsZero():
			fields["endTime"] = "endTime is required"
		case req.EndTime.Validate() != nil:
			fields["endTime"] = "endTime must be in HH:MM format"
		}

		if _, ok := fields["startTime"]; !ok {
			if _, ok := fields["endTime"]; !ok {
				if !req.StartTime.IsBefore(*req.EndTime) {
					fields["endTime"] = msgEndBeforeStart
				}
			}
		}
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		fields["reason"] = fmt.Sprintf("reason must be at most %d characters", domain.MaxReasonLength)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}
