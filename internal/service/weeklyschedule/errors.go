package weeklyschedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDoctorNotFound возвращается, когда врач не найден в реестре
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrTemplateNotFound возвращается, когда шаблон временного слота не найден
	ErrTemplateNotFound = errors.New("template not found")

	// ErrEntryNotFound возвращается, когда запись недельного расписания не найдена
	ErrEntryNotFound = errors.New("weekly schedule entry not found")

	// ErrDuplicateEntry возвращается при дубликате (день, шаблон) у врача
	ErrDuplicateEntry = errors.New("duplicate weekly schedule entry")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("weeklyschedule service: internal error")
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
