package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	exceptionRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/exception"
	globalRepo "github.com/m04kA/HSC-AvailabilityService/internal/infra/storage/globalschedule"
	staffClient "github.com/m04kA/HSC-AvailabilityService/internal/integrations/staffservice"
)

// UseCase use case вычисления слотов врача на конкретную дату.
// Применяет цепочку переопределений (исключение > недельное > глобальное)
// к одной дате и генерирует слоты из победившего уровня.
type UseCase struct {
	exceptionRepo   ExceptionRepository
	weeklyRepo      WeeklyScheduleRepository
	globalRepo      GlobalScheduleRepository
	appointmentRepo AppointmentRepository
	staffClient     StaffServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	exceptionRepo ExceptionRepository,
	weeklyRepo WeeklyScheduleRepository,
	globalRepo GlobalScheduleRepository,
	appointmentRepo AppointmentRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		exceptionRepo:   exceptionRepo,
		weeklyRepo:      weeklyRepo,
		globalRepo:      globalRepo,
		appointmentRepo: appointmentRepo,
		staffClient:     staffClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case вычисления слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: doctor=%d, date=%s", req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование врача
	if _, err := uc.staffClient.GetDoctor(ctx, req.DoctorID); err != nil {
		if errors.Is(err, staffClient.ErrDoctorNotFound) {
			uc.logger.Warn("GetDaySlots: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 4. Дата в прошлом - слотов нет
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetDaySlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, domain.SourceGlobal), nil
	}

	// 5. Определяем действующий уровень цепочки и его окна
	source, windows, err := uc.resolveDateWindows(ctx, req)
	if err != nil {
		return nil, err
	}

	// Уровень без окон (UNAVAILABLE, закрытый день, нет конфигурации) - пустой список
	if len(windows) == 0 {
		uc.logger.Info("GetDaySlots: no bookable windows for doctor=%d on %s (source=%s)",
			req.DoctorID, req.Date.Format(domain.DateFormat), source)
		return uc.emptyResponse(req, source), nil
	}

	// 6. Генерируем слоты из окон
	slots, err := generateSlots(windows)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 7. Помечаем занятые и прошедшие слоты
	appointments, err := uc.appointmentRepo.GetActiveByDoctorAndDate(ctx, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots = markSlotStatuses(slots, appointments, req.Date, now)

	uc.logger.Info("GetDaySlots: generated %d slots for doctor=%d on %s (source=%s)",
		len(slots), req.DoctorID, req.Date.Format(domain.DateFormat), source)

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Source:   source,
		Slots:    slots,
	}, nil
}

// resolveDateWindows возвращает уровень цепочки, действующий для даты,
// и его разрешенные окна
func (uc *UseCase) resolveDateWindows(ctx context.Context, req *Request) (domain.ResolutionSource, []domain.ResolvedWindow, error) {
	dayOfWeek := domain.DayOfWeekFromDate(req.Date)

	// Недельные записи нужны и для уровня WEEKLY, и для параметров
	// генерации у CUSTOM_HOURS исключений
	weeklyEntries, err := uc.weeklyRepo.GetByDoctorID(ctx, req.DoctorID)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get weekly schedule: %v", err)
		return "", nil, fmt.Errorf("%w: failed to get weekly schedule: %v", ErrInternal, err)
	}

	dayEntries := make([]*domain.WeeklyScheduleEntry, 0)
	for _, entry := range weeklyEntries {
		if entry.DayOfWeek == dayOfWeek {
			dayEntries = append(dayEntries, entry)
		}
	}

	// Уровень 1: исключение на дату управляет днем целиком
	exc, err := uc.exceptionRepo.GetByDoctorAndDate(ctx, req.DoctorID, req.Date)
	if err != nil && !errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
		uc.logger.Error("GetDaySlots: failed to get exception: %v", err)
		return "", nil, fmt.Errorf("%w: failed to get exception: %v", ErrInternal, err)
	}

	if exc != nil {
		if exc.IsUnavailable() {
			return domain.SourceException, nil, nil
		}

		window, ok := exc.CustomWindow()
		if !ok {
			uc.logger.Warn("GetDaySlots: exception id=%d has no valid custom window", exc.ID)
			return domain.SourceException, nil, nil
		}

		// Параметры генерации берем из недельного шаблона этого дня, если он есть
		duration, buffer := domain.DefaultSlotDurationMinutes, domain.DefaultBufferTimeMinutes
		if len(dayEntries) > 0 {
			duration = dayEntries[0].Template.SlotDurationMinutes
			buffer = dayEntries[0].Template.BufferTimeMinutes
		}

		return domain.SourceException, []domain.ResolvedWindow{{
			StartTime:           window.StartTime,
			EndTime:             window.EndTime,
			SlotDurationMinutes: duration,
			BufferTimeMinutes:   buffer,
		}}, nil
	}

	// Уровень 2: недельное расписание врача
	if len(dayEntries) > 0 {
		windows := make([]domain.ResolvedWindow, 0, len(dayEntries))
		for _, entry := range dayEntries {
			windows = append(windows, domain.ResolvedWindow{
				StartTime:           entry.Template.StartTime,
				EndTime:             entry.Template.EndTime,
				SlotDurationMinutes: entry.Template.SlotDurationMinutes,
				BufferTimeMinutes:   entry.Template.BufferTimeMinutes,
			})
		}
		return domain.SourceWeekly, windows, nil
	}

	// Уровень 3: глобальное расписание. Отсутствие записи = нет конфигурации:
	// демонстрационный дефолт из resolve_week здесь НЕ применяется,
	// бронируемых слотов он не порождает
	global, err := uc.globalRepo.GetByDayOfWeek(ctx, dayOfWeek)
	if err != nil {
		if errors.Is(err, globalRepo.ErrEntryNotFound) {
			return domain.SourceGlobal, nil, nil
		}
		uc.logger.Error("GetDaySlots: failed to get global schedule: %v", err)
		return "", nil, fmt.Errorf("%w: failed to get global schedule: %v", ErrInternal, err)
	}

	windows := make([]domain.ResolvedWindow, 0, len(global.TimeSlots))
	for _, slot := range global.TimeSlots {
		windows = append(windows, domain.ResolvedWindow{
			StartTime:           slot.StartTime,
			EndTime:             slot.EndTime,
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			BufferTimeMinutes:   domain.DefaultBufferTimeMinutes,
		})
	}

	return domain.SourceGlobal, windows, nil
}

func (uc *UseCase) emptyResponse(req *Request, source domain.ResolutionSource) *Response {
	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Source:   source,
		Slots:    []domain.Slot{},
	}
}
