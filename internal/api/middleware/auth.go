// Package middleware общие HTTP middleware: админская авторизация и метрики
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
)

// AdminTokenHeader заголовок с админским токеном
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет админский токен в заголовке запроса
// Пустой настроенный токен закрывает админские маршруты полностью
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, "Unauthorized.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
