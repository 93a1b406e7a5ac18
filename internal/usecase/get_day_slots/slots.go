package get_day_slots

import (
	"time"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// generateSlots генерирует слоты для набора разрешенных окон.
// Внутри окна слоты идут с шагом duration+buffer от начала окна;
// слот, конец которого выходит за границу окна, не генерируется.
func generateSlots(windows []domain.ResolvedWindow) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	for _, window := range windows {
		duration := window.SlotDurationMinutes
		if duration <= 0 {
			duration = domain.DefaultSlotDurationMinutes
		}

		step := duration + window.BufferTimeMinutes
		current := window.StartTime

		for current.IsBefore(window.EndTime) {
			slotEnd, err := current.AddMinutes(duration)
			if err != nil {
				return nil, err
			}
			if slotEnd.IsAfter(window.EndTime) {
				break
			}

			slots = append(slots, domain.Slot{
				StartTime:       current,
				DurationMinutes: duration,
				Status:          domain.SlotAvailable,
			})

			current, err = current.AddMinutes(step)
			if err != nil {
				return nil, err
			}
		}
	}

	return slots, nil
}

// markSlotStatuses проставляет статусы слотов по занятости и времени.
// Слот занят (BOOKED), если с ним строго пересекается хотя бы одна активная
// запись на прием. Граничное касание пересечением не считается:
// запись 10:00-10:30 не занимает слот 10:30-11:00.
// Незанятый слот на сегодняшнюю дату, начало которого уже прошло,
// помечается BLOCKED.
func markSlotStatuses(
	slots []domain.Slot,
	appointments []*domain.Appointment,
	requestDate time.Time,
	now time.Time,
) []domain.Slot {
	isToday := isSameDay(requestDate, now)
	nowTime := types.NewTimeString(now)

	result := make([]domain.Slot, len(slots))

	for i, slot := range slots {
		result[i] = slot

		if isSlotBooked(slot, appointments) {
			result[i].Status = domain.SlotBooked
			continue
		}

		if isToday && !slot.StartTime.IsAfter(nowTime) {
			result[i].Status = domain.SlotBlocked
		}
	}

	return result
}

// isSlotBooked проверяет строгое пересечение слота с активными записями
func isSlotBooked(slot domain.Slot, appointments []*domain.Appointment) bool {
	slotEnd, err := slot.StartTime.AddMinutes(slot.DurationMinutes)
	if err != nil {
		return false
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptEnd, err := appt.StartTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if appt.StartTime.IsBefore(slotEnd) && apptEnd.IsAfter(slot.StartTime) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
