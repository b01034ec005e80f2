package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CallBookingService/internal/api/handlers"
)

// userIDHeader заголовок с ID пользователя
// Аутентификацию выполняет внешний шлюз; сервис доверяет заголовку
const userIDHeader = "X-User-ID"

// userIDContextKey ключ для хранения ID пользователя в контексте
type userIDContextKey struct{}

const msgMissingUserID = "отсутствует заголовок X-User-ID"

// Auth middleware для защищённых маршрутов: требует заголовок X-User-ID
// и кладет его значение в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
