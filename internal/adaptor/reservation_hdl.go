package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (public)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// ListAddOns handles GET /api/addons (public)
func (h *ReservationHandler) ListAddOns(w http.ResponseWriter, r *http.Request) {
	addOns, err := h.service.ListActiveAddOns(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list addons")
		return
	}

	utils.ResponseSuccess(w, "success", addOns)
}

// ==================== ADMIN METHODS ====================

// GetReservationByID handles GET /api/admin/reservations/{id} (admin only)
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get reservation by ID")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ListReservations handles GET /api/admin/reservations (admin only)
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	reservations, err := h.service.ListReservations(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// UpdatePaymentStatus handles PUT /api/admin/reservations/{id}/payment-status (admin only)
func (h *ReservationHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.UpdatePaymentStatus(r.Context(), id, entity.PaymentStatus(req.Status))
	if err != nil {
		handleServiceError(h.log, w, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

func (h *ReservationHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return 0, false
	}

	return id, true
}
