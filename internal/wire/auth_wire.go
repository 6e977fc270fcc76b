package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/admin/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthAdmin(auth, log)).Get("/api/admin/me", authHandler.Me)
}
