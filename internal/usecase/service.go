package usecase

import (
	"transfer-booking/internal/data/repository"
	"transfer-booking/pkg/handoff"
	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Reservation ReservationService
	Quote       QuoteService
	Payment     PaymentService
}

func NewService(repo *repository.Repository, config *utils.Config, store handoff.Store, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(config, log),
		Reservation: NewReservationService(repo, log),
		Quote:       NewQuoteService(repo, log),
		Payment:     NewPaymentService(repo, store, log),
	}
}
