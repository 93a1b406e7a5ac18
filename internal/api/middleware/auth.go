package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/HSC-AvailabilityService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

// Auth проверяет наличие идентификатора пользователя в заголовке X-User-ID.
// Аутентификацию выполняет API gateway; здесь только контроль того,
// что запрос пришел через него.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		next.ServeHTTP(w, r)
	})
}
