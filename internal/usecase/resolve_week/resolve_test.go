package resolve_week

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
)

func globalEntry(id int64, day int, windows ...domain.TimeWindow) *domain.GlobalScheduleEntry {
	return &domain.GlobalScheduleEntry{ID: id, DayOfWeek: day, TimeSlots: windows}
}

func weeklyEntry(id int64, day int, tpl domain.TimeSlotTemplate) *domain.WeeklyScheduleEntry {
	return &domain.WeeklyScheduleEntry{ID: id, DoctorID: 1, DayOfWeek: day, TemplateID: tpl.ID, Template: tpl}
}

func TestResolveWeek_AlwaysSevenDaysInOrder(t *testing.T) {
	days, err := resolveWeek(nil, nil)
	require.NoError(t, err)

	require.Len(t, days, 7)
	for i, day := range days {
		assert.Equal(t, i, day.DayOfWeek)
	}
}

func TestResolveWeek_WeeklyOverridesGlobal(t *testing.T) {
	tpl := domain.TimeSlotTemplate{
		ID:                  10,
		Name:                "Morning Clinic",
		StartTime:           "08:00",
		EndTime:             "12:00",
		SlotDurationMinutes: 20,
		BufferTimeMinutes:   5,
	}

	global := []*domain.GlobalScheduleEntry{
		globalEntry(1, 1, domain.TimeWindow{StartTime: "09:00", EndTime: "17:00"}),
	}
	weekly := []*domain.WeeklyScheduleEntry{weeklyEntry(100, 1, tpl)}

	days, err := resolveWeek(global, weekly)
	require.NoError(t, err)

	monday := days[1]
	assert.Equal(t, domain.SourceWeekly, monday.Source)
	assert.True(t, monday.HasCustomSchedule)
	assert.False(t, monday.IsFallbackDisplay)
	require.Len(t, monday.Windows, 1)
	assert.Equal(t, domain.ResolvedWindow{
		StartTime:           "08:00",
		EndTime:             "12:00",
		SlotDurationMinutes: 20,
		BufferTimeMinutes:   5,
	}, monday.Windows[0])
}

func TestResolveWeek_MultipleWeeklyEntriesSameDay(t *testing.T) {
	morning := domain.TimeSlotTemplate{ID: 10, StartTime: "08:00", EndTime: "12:00", SlotDurationMinutes: 30}
	evening := domain.TimeSlotTemplate{ID: 11, StartTime: "16:00", EndTime: "20:00", SlotDurationMinutes: 30}

	weekly := []*domain.WeeklyScheduleEntry{
		weeklyEntry(100, 2, morning),
		weeklyEntry(101, 2, evening),
	}

	days, err := resolveWeek(nil, weekly)
	require.NoError(t, err)

	tuesday := days[2]
	assert.Equal(t, domain.SourceWeekly, tuesday.Source)
	require.Len(t, tuesday.Windows, 2)
	assert.Equal(t, "08:00", tuesday.Windows[0].StartTime.String())
	assert.Equal(t, "16:00", tuesday.Windows[1].StartTime.String())
}

func TestResolveWeek_GlobalWithDefaults(t *testing.T) {
	global := []*domain.GlobalScheduleEntry{
		globalEntry(1, 3, domain.TimeWindow{StartTime: "09:00", EndTime: "13:00"}),
	}

	days, err := resolveWeek(global, nil)
	require.NoError(t, err)

	wednesday := days[3]
	assert.Equal(t, domain.SourceGlobal, wednesday.Source)
	assert.False(t, wednesday.HasCustomSchedule)
	assert.False(t, wednesday.IsFallbackDisplay)
	require.Len(t, wednesday.Windows, 1)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, wednesday.Windows[0].SlotDurationMinutes)
	assert.Equal(t, domain.DefaultBufferTimeMinutes, wednesday.Windows[0].BufferTimeMinutes)
}

func TestResolveWeek_ClosedGlobalDayIsNotFallback(t *testing.T) {
	// Запись с пустым списком окон = "закрыто по умолчанию",
	// демонстрационный дефолт не подставляется
	global := []*domain.GlobalScheduleEntry{globalEntry(1, 0)}

	days, err := resolveWeek(global, nil)
	require.NoError(t, err)

	sunday := days[0]
	assert.Equal(t, domain.SourceGlobal, sunday.Source)
	assert.False(t, sunday.IsFallbackDisplay)
	assert.True(t, sunday.IsClosed())
}

func TestResolveWeek_MissingGlobalDayGetsFallbackDisplay(t *testing.T) {
	days, err := resolveWeek(nil, nil)
	require.NoError(t, err)

	for _, day := range days {
		assert.True(t, day.IsFallbackDisplay, "day %d", day.DayOfWeek)
		require.Len(t, day.Windows, 2)
		assert.Equal(t, "09:00", day.Windows[0].StartTime.String())
		assert.Equal(t, "13:00", day.Windows[0].EndTime.String())
		assert.Equal(t, "14:00", day.Windows[1].StartTime.String())
		assert.Equal(t, "16:00", day.Windows[1].EndTime.String())
	}
}

func TestResolveWeek_InvalidDayOfWeekRejected(t *testing.T) {
	global := []*domain.GlobalScheduleEntry{globalEntry(1, 7)}

	_, err := resolveWeek(global, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	weekly := []*domain.WeeklyScheduleEntry{
		{ID: 100, DoctorID: 1, DayOfWeek: -1},
	}

	_, err = resolveWeek(nil, weekly)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
