package weeklyschedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	templateRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/template"
	weeklyRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/weeklyschedule"
	staffClient "github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/HSC-AvailabilityService/internal/service/weeklyschedule/models"
)

// Service сервис редактирования недельного расписания врачей
type Service struct {
	weeklyRepo   WeeklyScheduleRepository
	templateRepo TemplateRepository
	staffClient  StaffServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса недельного расписания
func NewService(
	weeklyRepo WeeklyScheduleRepository,
	templateRepo TemplateRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		weeklyRepo:   weeklyRepo,
		templateRepo: templateRepo,
		staffClient:  staffClient,
		logger:       logger,
	}
}

// Create создает запись недельного расписания врача.
// Клиентская валидация проверяет только обязательность и диапазон полей;
// дубликаты (doctor, day, template) не проверяются предварительно -
// это constraint БД, нарушение которого приходит как ErrDuplicateEntry.
func (s *Service) Create(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error) {
	s.logger.Info("Create: weekly entry for doctor=%d", req.DoctorID)

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

	// 3. Проверяем существование шаблона
	tpl, err := s.templateRepo.GetByID(ctx, *req.TemplateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("Create: template id=%d not found", *req.TemplateID)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("Create: failed to get template id=%d: %v", *req.TemplateID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// 4. Создаем запись
	entry := &domain.WeeklyScheduleEntry{
		DoctorID:   req.DoctorID,
		DayOfWeek:  *req.DayOfWeek,
		TemplateID: tpl.ID,
		Template:   *tpl,
	}

	created, err := s.weeklyRepo.Create(ctx, entry)
	if err != nil {
		if errors.Is(err, weeklyRepo.ErrDuplicateEntry) {
			s.logger.Warn("Create: duplicate entry for doctor=%d, day=%d, template=%d",
				req.DoctorID, *req.DayOfWeek, *req.TemplateID)
			return nil, ErrDuplicateEntry
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created weekly entry id=%d", created.ID)
	return models.FromDomainEntry(created), nil
}

// ListByDoctor получает все записи недельного расписания врача.
// Несколько записей на один день - допустимое состояние (утреннее +
// вечернее окно); интерфейс предупреждает, но не блокирует.
func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) (*models.EntryListResponse, error) {
	s.logger.Info("ListByDoctor: fetching weekly entries for doctor=%d", doctorID)

	entries, err := s.weeklyRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		s.logger.Error("ListByDoctor: repository error for doctor=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: ListByDoctor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDoctor: fetched %d entries for doctor=%d", len(entries), doctorID)
	return models.FromDomainEntryList(entries), nil
}

// Delete удаляет запись недельного расписания по ID.
// Безусловное удаление: подтверждение деструктивного намерения -
// обязанность вызывающей стороны.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting weekly entry id=%d", id)

	if err := s.weeklyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, weeklyRepo.ErrEntryNotFound) {
			s.logger.Warn("Delete: weekly entry id=%d not found", id)
			return ErrEntryNotFound
		}
		s.logger.Error("Delete: repository error for entry id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted weekly entry id=%d", id)
	return nil
}

// ListTemplates получает все шаблоны временных слотов.
// Используется для наполнения формы создания недельного расписания.
func (s *Service) ListTemplates(ctx context.Context) (*models.TemplateListResponse, error) {
	s.logger.Info("ListTemplates: fetching time slot templates")

	templates, err := s.templateRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListTemplates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTemplates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTemplates: fetched %d templates", len(templates))
	return models.FromDomainTemplateList(templates), nil
}

// validateCreate валидирует поля формы создания записи
func validateCreate(req *models.CreateEntryRequest) error {
	fields := make(map[string]string)

	if req.DayOfWeek == nil {
		fields["dayOfWeek"] = "dayOfWeek is required"
	} else if !domain.IsValidDayOfWeek(*req.DayOfWeek) {
		fields["dayOfWeek"] = "dayOfWeek must be between 0 and 6"
	}

	if req.TemplateID == nil {
		fields["templateId"] = "templateId is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}
