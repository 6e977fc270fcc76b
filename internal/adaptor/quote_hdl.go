package adaptor

import (
	"encoding/json"
	"net/http"

	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

type QuoteHandler struct {
	service usecase.QuoteService
	log     *zap.Logger
}

func NewQuoteHandler(service usecase.QuoteService, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		log:     log.With(zap.String("handler", "quote")),
	}
}

// QuoteTransfer handles POST /api/quote/transfer (public)
func (h *QuoteHandler) QuoteTransfer(w http.ResponseWriter, r *http.Request) {
	var req request.TransferQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	price, err := h.service.QuoteTransfer(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "quote transfer")
		return
	}

	utils.ResponseSuccess(w, "success", price)
}

// QuoteChauffeur handles POST /api/quote/chauffeur (public)
func (h *QuoteHandler) QuoteChauffeur(w http.ResponseWriter, r *http.Request) {
	var req request.ChauffeurQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	price, err := h.service.QuoteChauffeur(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "quote chauffeur")
		return
	}

	utils.ResponseSuccess(w, "success", price)
}

// QuoteTour handles POST /api/quote/tour (public)
func (h *QuoteHandler) QuoteTour(w http.ResponseWriter, r *http.Request) {
	var req request.TourQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	price, err := h.service.QuoteTour(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "quote tour")
		return
	}

	utils.ResponseSuccess(w, "success", price)
}
