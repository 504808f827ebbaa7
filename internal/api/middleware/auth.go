package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

// userIDHeader заголовок с идентификатором действующего пользователя.
// Аутентификацию выполняет внешний шлюз; сервис доверяет заголовку.
const userIDHeader = "X-User-ID"

type userIDKey struct{}

// Auth требует корректный X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+userIDHeader+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid "+userIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
