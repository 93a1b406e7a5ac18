package exception

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDoctorNotFound возвращается, когда врач не найден в реестре
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrExceptionNotFound возвращается, когда исключение расписания не найдено
	ErrExceptionNotFound = errors.New("schedule exception not found")

	// ErrDuplicateException возвращается при дубликате даты у врача
	ErrDuplicateException = errors.New("duplicate schedule exception for date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("exception service: internal error")
)

// ValidationError ошибка валидации с привязкой сообщений к полям формы.
// Блокирует отправку до обращения к хранилищу.
type ValidationError struct {
	Fields map[string]string
}

// Error реализует error
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
