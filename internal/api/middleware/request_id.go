package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader заголовок сквозного идентификатора запроса
const requestIDHeader = "X-Request-ID"

// RequestID проставляет идентификатор запроса, если клиент его не передал.
// Идентификатор возвращается в ответе для трассировки между сервисами.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
