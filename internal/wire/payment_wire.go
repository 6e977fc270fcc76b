package wire

import (
	"transfer-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
) {
	// Payment form handoff bridge. Public: the payment page loads after a
	// full navigation and has no session to authenticate with.
	r.Route("/api/payments/{id}/form", func(r chi.Router) {
		r.Post("/", paymentHandler.SavePaymentForm)
		r.Get("/", paymentHandler.ConsumePaymentForm)
		r.Delete("/", paymentHandler.RemovePaymentForm)
	})
}
