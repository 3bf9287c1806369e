package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
)

const msgMissingUserID = "требуется заголовок X-User-ID"

// Auth проверяет наличие идентификатора сотрудника в заголовке X-User-ID
// Проверка подлинности - дело API gateway перед сервисом, здесь только
// гарантируется, что идентификатор передан и числовой
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		if _, err := strconv.ParseInt(userIDStr, 10, 64); err != nil {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserID извлекает идентификатор сотрудника из заголовка X-User-ID
// За Auth middleware заголовок гарантированно корректен; вне его - 0
func UserID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	return id
}
