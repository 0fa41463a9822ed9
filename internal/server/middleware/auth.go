package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/blogful/internal/server/auth"
	"github.com/iudanet/blogful/internal/server/handlers"
)

// TokenVerifier проверяет подпись и срок действия токена
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				handlers.SendError(logger, w, handlers.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				// сам заголовок не логируем: в нем может быть токен
				logger.Warn("Invalid Authorization header format")
				handlers.SendError(logger, w, handlers.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				handlers.SendError(logger, w, handlers.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			logger.Debug("User authenticated", "user_id", claims.UserID, "user_name", claims.Subject)

			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
