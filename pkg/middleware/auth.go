package middleware

import (
	"net/http"
	"strings"

	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthAdmin validates the bearer token against the credential verifier and
// puts the admin identity on the request context.
func AuthAdmin(auth usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			admin := auth.VerifyToken(parts[1])
			if admin == nil {
				logger.Warn("Invalid or expired admin token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetAdminContext(r.Context(), admin.ID, admin.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
