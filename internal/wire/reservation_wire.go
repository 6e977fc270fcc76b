package wire

import (
	"transfer-booking/internal/adaptor"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	quoteHandler *adaptor.QuoteHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/reservations - Create booking (public, no account needed)
	r.Post("/api/reservations", reservationHandler.CreateReservation)

	// GET /api/addons - Active add-on catalog for the booking form
	r.Get("/api/addons", reservationHandler.ListAddOns)

	// Price quotes, re-derived server-side from catalog rates
	r.Post("/api/quote/transfer", quoteHandler.QuoteTransfer)
	r.Post("/api/quote/chauffeur", quoteHandler.QuoteChauffeur)
	r.Post("/api/quote/tour", quoteHandler.QuoteTour)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Use(middleware.AuthAdmin(auth, log))

		// GET /api/admin/reservations - List all reservations
		r.Get("/", reservationHandler.ListReservations)

		// GET /api/admin/reservations/{id} - Reservation details
		r.Get("/{id}", reservationHandler.GetReservationByID)

		// PUT /api/admin/reservations/{id}/payment-status - Resolve payment
		r.Put("/{id}/payment-status", reservationHandler.UpdatePaymentStatus)
	})
}
