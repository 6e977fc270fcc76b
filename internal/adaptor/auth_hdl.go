package adaptor

import (
	"encoding/json"
	"net/http"

	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "admin login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Me handles GET /api/admin/me (protected)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.GetAdminIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	email, _ := utils.GetAdminEmailFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())

	utils.ResponseSuccess(w, "success", response.AdminResponse{
		ID:    id,
		Email: email,
		Role:  role,
	})
}
