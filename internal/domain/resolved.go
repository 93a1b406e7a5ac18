package domain

import "github.com/m04kA/HSC-AvailabilityService/pkg/types"

// ResolutionSource identifies which tier of the override chain produced
// a resolved day: exception > weekly > global
type ResolutionSource string

const (
	SourceException ResolutionSource = "EXCEPTION"
	SourceWeekly    ResolutionSource = "WEEKLY"
	SourceGlobal    ResolutionSource = "GLOBAL"
)

// ResolvedWindow одно разрешенное окно приема с параметрами генерации слотов
type ResolvedWindow struct {
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	BufferTimeMinutes   int
}

// ResolvedDay represents the availability of one weekday after applying
// the override chain. Windows may be empty: a GLOBAL day with an empty
// window list is "closed by default", which is distinct from a missing
// global entry (IsFallbackDisplay).
type ResolvedDay struct {
	DayOfWeek int
	Source    ResolutionSource
	Windows   []ResolvedWindow

	// HasCustomSchedule true, когда день задан записями недельного расписания врача
	HasCustomSchedule bool

	// IsFallbackDisplay true, когда глобальной записи для дня нет вовсе и окна -
	// статический демонстрационный дефолт. Это состояние "нет конфигурации":
	// такие окна показываются в интерфейсе, но никогда не порождают слоты.
	IsFallbackDisplay bool
}

// IsClosed returns true if the day has no bookable windows
func (d *ResolvedDay) IsClosed() bool {
	return len(d.Windows) == 0
}
