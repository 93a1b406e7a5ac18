package globalschedule

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("globalschedule service: internal error")
)
