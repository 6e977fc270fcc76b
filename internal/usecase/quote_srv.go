package usecase

import (
	"context"
	"fmt"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"
	"transfer-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteService re-derives prices on the server. Clients compute the same
// numbers for display, but the rates always come from the catalog row here,
// never from the request.
type QuoteService interface {
	QuoteTransfer(ctx context.Context, req *request.TransferQuoteRequest) (*response.PriceResponse, error)
	QuoteChauffeur(ctx context.Context, req *request.ChauffeurQuoteRequest) (*response.PriceResponse, error)
	QuoteTour(ctx context.Context, req *request.TourQuoteRequest) (*response.PriceResponse, error)
}

type quoteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewQuoteService(repo *repository.Repository, log *zap.Logger) QuoteService {
	return &quoteService{
		repo: repo,
		log:  log.With(zap.String("service", "quote")),
	}
}

func (s *quoteService) QuoteTransfer(ctx context.Context, req *request.TransferQuoteRequest) (*response.PriceResponse, error) {
	vehicle, err := s.findVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	price := CalculateTransferPrice(req.DistanceKm, vehicle.KmPrice, req.RoundTrip)
	return &response.PriceResponse{Amount: price.Amount, Currency: string(price.Currency)}, nil
}

func (s *quoteService) QuoteChauffeur(ctx context.Context, req *request.ChauffeurQuoteRequest) (*response.PriceResponse, error) {
	vehicle, err := s.findVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	price := CalculateChauffeurPrice(vehicle.HourlyBasePrice, req.DurationHours)
	return &response.PriceResponse{Amount: price.Amount, Currency: string(price.Currency)}, nil
}

func (s *quoteService) QuoteTour(ctx context.Context, req *request.TourQuoteRequest) (*response.PriceResponse, error) {
	id, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, apperr.NewValidation("invalid tour id %s", req.TourID)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("quote tour: %w", err)
	}
	if tour == nil || !tour.IsActive {
		return nil, apperr.NewNotFound("tour", req.TourID)
	}

	price := CalculateTourPrice(tour.PerPersonPrice, float64(req.Persons))
	return &response.PriceResponse{Amount: price.Amount, Currency: string(price.Currency)}, nil
}

func (s *quoteService) findVehicle(ctx context.Context, rawID string) (*entity.Vehicle, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperr.NewValidation("invalid vehicle id %s", rawID)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil || !vehicle.IsActive {
		return nil, apperr.NewNotFound("vehicle", rawID)
	}

	return vehicle, nil
}
