package get_day_slots

import (
	"time"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение слотов врача на дату
type Request struct {
	DoctorID int64
	Date     time.Time // дата без времени
}

// Response модель ответа со списком вычисленных слотов
type Response struct {
	DoctorID int64
	Date     time.Time
	Source   domain.ResolutionSource // уровень цепочки, определивший окна
	Slots    []domain.Slot
}
