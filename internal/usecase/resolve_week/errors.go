package resolve_week

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден в реестре
	ErrDoctorNotFound = errors.New("resolve_week: doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (в том числе при dayOfWeek вне диапазона 0-6 в полученных коллекциях)
	ErrInvalidInput = errors.New("resolve_week: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_week: internal error")
)
