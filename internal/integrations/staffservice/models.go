package staffservice

// Doctor модель врача из StaffService
type Doctor struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"full_name"`
	Specialization string  `json:"specialization"`
	Department     *string `json:"department,omitempty"`
	IsActive       bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
