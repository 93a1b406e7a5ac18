package resolve_week

import "github.com/m04kA/HSC-AvailabilityService/internal/domain"

// Request модель запроса на разрешение недельного расписания врача
type Request struct {
	DoctorID int64
}

// Response модель ответа: по одному разрешенному дню на каждый день недели,
// в порядке 0 (воскресенье) .. 6 (суббота)
type Response struct {
	DoctorID int64
	Days     []domain.ResolvedDay
}
