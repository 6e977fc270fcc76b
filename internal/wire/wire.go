package wire

import (
	"net/http"

	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/handoff"
	"transfer-booking/pkg/middleware"
	"transfer-booking/pkg/utils"

	"transfer-booking/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, store handoff.Store, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, store, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, service, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, service.Auth, logger)
	wireReservation(r, handler.Reservation, handler.Quote, service.Auth, logger)
	wirePayment(r, handler.Payment)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
