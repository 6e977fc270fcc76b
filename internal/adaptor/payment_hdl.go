package adaptor

import (
	"encoding/json"
	"net/http"

	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// SavePaymentForm handles POST /api/payments/{id}/form (public)
func (h *PaymentHandler) SavePaymentForm(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.SavePaymentFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	stored, err := h.service.SavePaymentForm(r.Context(), reservationID, req.Token, req.FormHTML)
	if err != nil {
		handleServiceError(h.log, w, err, "save payment form")
		return
	}
	if !stored {
		// Storage failure must not crash the booking flow; the client shows
		// a retryable "payment form unavailable" state.
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "payment form unavailable", nil, nil)
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// ConsumePaymentForm handles GET /api/payments/{id}/form (public)
// ?consume=true removes the entry before returning it.
func (h *PaymentHandler) ConsumePaymentForm(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	consume := r.URL.Query().Get("consume") == "true"

	form := h.service.ConsumePaymentForm(r.Context(), reservationID, consume)
	if form == nil {
		utils.ResponseNotFound(w, "payment form unavailable")
		return
	}

	utils.ResponseSuccess(w, "success", form)
}

// RemovePaymentForm handles DELETE /api/payments/{id}/form (public)
func (h *PaymentHandler) RemovePaymentForm(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	h.service.RemovePaymentForm(r.Context(), reservationID)

	utils.ResponseSuccess(w, "success", nil)
}
