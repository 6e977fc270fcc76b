package adaptor

import (
	"errors"
	"net/http"

	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/apperr"
	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Reservation *ReservationHandler
	Quote       *QuoteHandler
	Payment     *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Quote:       NewQuoteHandler(service.Quote, log),
		Payment:     NewPaymentHandler(service.Payment, log),
	}
}

// handleServiceError maps service errors onto HTTP responses. Validation and
// not-found errors carry their message; everything else stays generic.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var validationErr *apperr.ValidationError
	var notFoundErr *apperr.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, validationErr.Message, nil)

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFoundErr.Error())

	case errors.Is(err, apperr.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
