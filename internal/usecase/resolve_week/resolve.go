package resolve_week

import (
	"fmt"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
)

// resolveWeek применяет цепочку переопределений к каждому дню недели.
// Чистая функция над уже загруженными коллекциями: не выполняет I/O,
// повторный вызов с теми же входами дает тот же результат.
//
// Для каждого дня W:
//  1. Есть записи недельного расписания врача на W - действуют только они
//     (окна шаблонов), глобальные записи для W не учитываются вовсе.
//  2. Иначе действует глобальная запись для W. Пустой список окон означает
//     "закрыто по умолчанию" - это НЕ то же самое, что отсутствие записи.
//  3. Глобальной записи для W нет вовсе - подставляется статический
//     демонстрационный дефолт с флагом IsFallbackDisplay.
//
// Исключения (date-specific) в недельное представление не входят:
// они действуют на конкретные даты и применяются при расчете слотов.
func resolveWeek(
	globalEntries []*domain.GlobalScheduleEntry,
	weeklyEntries []*domain.WeeklyScheduleEntry,
) ([]domain.ResolvedDay, error) {
	globalByDay, err := indexGlobalByDay(globalEntries)
	if err != nil {
		return nil, err
	}

	weeklyByDay, err := partitionWeeklyByDay(weeklyEntries)
	if err != nil {
		return nil, err
	}

	days := make([]domain.ResolvedDay, 0, domain.DaysInWeek)

	for day := domain.DayOfWeekMin; day <= domain.DayOfWeekMax; day++ {
		days = append(days, resolveDay(day, globalByDay[day], weeklyByDay[day]))
	}

	return days, nil
}

// resolveDay разрешает один день недели
func resolveDay(day int, global *domain.GlobalScheduleEntry, weekly []*domain.WeeklyScheduleEntry) domain.ResolvedDay {
	// Уровень 2: недельное расписание врача полностью вытесняет глобальное
	if len(weekly) > 0 {
		windows := make([]domain.ResolvedWindow, 0, len(weekly))
		for _, entry := range weekly {
			windows = append(windows, domain.ResolvedWindow{
				StartTime:           entry.Template.StartTime,
				EndTime:             entry.Template.EndTime,
				SlotDurationMinutes: entry.Template.SlotDurationMinutes,
				BufferTimeMinutes:   entry.Template.BufferTimeMinutes,
			})
		}

		return domain.ResolvedDay{
			DayOfWeek:         day,
			Source:            domain.SourceWeekly,
			Windows:           windows,
			HasCustomSchedule: true,
		}
	}

	// Уровень 3: глобальная запись (возможно с пустым списком окон = закрыто)
	if global != nil {
		windows := make([]domain.ResolvedWindow, 0, len(global.TimeSlots))
		for _, slot := range global.TimeSlots {
			windows = append(windows, domain.ResolvedWindow{
				StartTime:           slot.StartTime,
				EndTime:             slot.EndTime,
				SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
				BufferTimeMinutes:   domain.DefaultBufferTimeMinutes,
			})
		}

		return domain.ResolvedDay{
			DayOfWeek: day,
			Source:    domain.SourceGlobal,
			Windows:   windows,
		}
	}

	// Конфигурации нет вовсе: показываем статический дефолт, явно помеченный
	// как презентационный - он не дает гарантии реальной доступности
	windows := make([]domain.ResolvedWindow, 0, len(domain.FallbackDisplayWindows))
	for _, slot := range domain.FallbackDisplayWindows {
		windows = append(windows, domain.ResolvedWindow{
			StartTime:           slot.StartTime,
			EndTime:             slot.EndTime,
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			BufferTimeMinutes:   domain.DefaultBufferTimeMinutes,
		})
	}

	return domain.ResolvedDay{
		DayOfWeek:         day,
		Source:            domain.SourceGlobal,
		Windows:           windows,
		IsFallbackDisplay: true,
	}
}

// indexGlobalByDay индексирует глобальные записи по дню недели.
// Некорректный dayOfWeek - ошибка валидации, а не молчаливый пропуск.
func indexGlobalByDay(entries []*domain.GlobalScheduleEntry) (map[int]*domain.GlobalScheduleEntry, error) {
	byDay := make(map[int]*domain.GlobalScheduleEntry, len(entries))

	for _, entry := range entries {
		if !domain.IsValidDayOfWeek(entry.DayOfWeek) {
			return nil, fmt.Errorf("%w: global entry id=%d has dayOfWeek=%d outside 0-6",
				ErrInvalidInput, entry.ID, entry.DayOfWeek)
		}
		byDay[entry.DayOfWeek] = entry
	}

	return byDay, nil
}

// partitionWeeklyByDay группирует записи недельного расписания по дню недели
func partitionWeeklyByDay(entries []*domain.WeeklyScheduleEntry) (map[int][]*domain.WeeklyScheduleEntry, error) {
	byDay := make(map[int][]*domain.WeeklyScheduleEntry)

	for _, entry := range entries {
		if !domain.IsValidDayOfWeek(entry.DayOfWeek) {
			return nil, fmt.Errorf("%w: weekly entry id=%d has dayOfWeek=%d outside 0-6",
				ErrInvalidInput, entry.ID, entry.DayOfWeek)
		}
		byDay[entry.DayOfWeek] = append(byDay[entry.DayOfWeek], entry)
	}

	return byDay, nil
}
