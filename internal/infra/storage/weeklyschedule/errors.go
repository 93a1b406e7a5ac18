package weeklyschedule

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись недельного расписания не найдена
	ErrEntryNotFound = errors.New("weeklyschedule.repository: entry not found")

	// ErrDuplicateEntry возвращается при нарушении уникальности
	// (doctor_id, day_of_week, template_id)
	ErrDuplicateEntry = errors.New("weeklyschedule.repository: duplicate entry for day and template")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("weeklyschedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("weeklyschedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("weeklyschedule.repository: failed to scan row")
)
