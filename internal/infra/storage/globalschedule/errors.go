package globalschedule

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись глобального расписания не найдена
	ErrEntryNotFound = errors.New("globalschedule.repository: entry not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("globalschedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("globalschedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("globalschedule.repository: failed to scan row")
)
