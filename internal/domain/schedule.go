package domain

import (
	"time"

	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// TimeWindow represents a single working window within a day
type TimeWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsValid returns true if the window boundaries are ordered
func (w TimeWindow) IsValid() bool {
	return !w.StartTime.IsZero() && !w.EndTime.IsZero() && w.StartTime.IsBefore(w.EndTime)
}

// GlobalScheduleEntry represents the institution-wide default availability
// for one day of the week. Used as a fallback when a doctor has no
// weekly schedule entries for that day.
type GlobalScheduleEntry struct {
	ID        int64
	DayOfWeek int // 0-6, 0 = Sunday
	TimeSlots []TimeWindow

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed returns true if the institution is closed on this day by default
func (g *GlobalScheduleEntry) IsClosed() bool {
	return len(g.TimeSlots) == 0
}

// TimeSlotTemplate represents a reusable bookable window definition
// referenced by weekly schedule entries
type TimeSlotTemplate struct {
	ID                  int64
	Name                string
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	BufferTimeMinutes   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StepMinutes возвращает шаг генерации слотов (длительность + буфер)
func (t *TimeSlotTemplate) StepMinutes() int {
	return t.SlotDurationMinutes + t.BufferTimeMinutes
}

// WeeklyScheduleEntry represents one bookable window for a doctor on a
// day of the week. Several entries may exist for the same (doctor, day)
// pair, representing disjoint windows (morning + evening); the
// (doctor, day, template) triple is unique.
type WeeklyScheduleEntry struct {
	ID         int64
	DoctorID   int64
	DayOfWeek  int // 0-6, 0 = Sunday
	TemplateID int64
	Template   TimeSlotTemplate

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the bookable window described by the entry's template
func (e *WeeklyScheduleEntry) Window() TimeWindow {
	return TimeWindow{
		StartTime: e.Template.StartTime,
		EndTime:   e.Template.EndTime,
	}
}

// IsValidDayOfWeek проверяет, что день недели в диапазоне 0-6
func IsValidDayOfWeek(day int) bool {
	return day >= DayOfWeekMin && day <= DayOfWeekMax
}

// DayOfWeekFromDate возвращает день недели даты в нумерации 0-6 (0 = воскресенье)
func DayOfWeekFromDate(date time.Time) int {
	return int(date.Weekday())
}
