package domain

import "github.com/m04kA/HSC-AvailabilityService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Day of week bounds (0 = Sunday, как в JS Date.getDay и time.Weekday)
const (
	DayOfWeekMin = 0
	DayOfWeekMax = 6
	DaysInWeek   = 7
)

// Default slot generation parameters, applied when a governing window
// carries no template (global tier, custom-hours exceptions)
const (
	DefaultSlotDurationMinutes = 30
	DefaultBufferTimeMinutes   = 0
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MaxBufferTimeMinutes   = 120
	MaxReasonLength        = 500
)

// FallbackDisplayWindows статический дефолт, показываемый когда глобальной
// записи для дня недели нет вовсе. Чисто презентационное значение: помечается
// флагом IsFallbackDisplay и никогда не участвует в генерации слотов.
var FallbackDisplayWindows = []TimeWindow{
	{StartTime: types.TimeString("09:00"), EndTime: types.TimeString("13:00")},
	{StartTime: types.TimeString("14:00"), EndTime: types.TimeString("16:00")},
}
