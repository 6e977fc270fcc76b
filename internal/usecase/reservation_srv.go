package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/dto/response"
	"transfer-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	// CreateReservation validates the booking form, prices the add-ons,
	// persists the aggregate and projects it back. Exactly one repository
	// write on success, zero on any validation failure.
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, id int64) (*response.ReservationResponse, error)
	ListReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)

	// UpdatePaymentStatus transitions PENDING to PAID or FAILED. Resolved
	// reservations are terminal.
	UpdatePaymentStatus(ctx context.Context, id int64, status entity.PaymentStatus) (*response.ReservationResponse, error)

	ListActiveAddOns(ctx context.Context) ([]response.AddOnResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// Coerce before validating: a non-finite client total becomes 0, a
	// non-positive passenger count becomes 1.
	total := safeNum(req.TotalPrice)
	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	if strings.TrimSpace(req.FullName) == "" {
		return nil, apperr.NewValidation("name required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperr.NewValidation("email required")
	}
	if total < 0 {
		return nil, apperr.NewValidation("price negative")
	}
	if passengers <= 0 {
		return nil, apperr.NewValidation("passengers non-positive")
	}

	pickupAt := resolvePickupDatetime(req.PickupDatetime, req.PickupDate, req.PickupTime)

	additionalPassengers, err := validateAdditionalPassengers(passengers, req.AdditionalPassengers)
	if err != nil {
		return nil, err
	}

	vehicleID, tourID, err := parseServiceReference(req.VehicleID, req.TourID)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveAddOns(ctx, s.repo.AddOn, req.AddOns)
	if err != nil {
		s.log.Error("Failed to resolve addons", zap.Error(err))
		return nil, fmt.Errorf("resolve addons: %w", err)
	}
	if len(resolved.Skipped) > 0 {
		s.log.Warn("Skipped invalid addon selections",
			zap.Strings("addon_ids", resolved.Skipped),
			zap.String("email", req.Email),
		)
	}

	finalTotal, err := entity.NewPrice(total+resolved.Total, entity.CurrencyEUR)
	if err != nil {
		return nil, apperr.NewValidation("price negative")
	}

	reservation, err := entity.NewReservation(entity.NewReservationProps{
		CustomerName:         strings.TrimSpace(req.FullName),
		Email:                strings.TrimSpace(req.Email),
		Phone:                req.Phone,
		VehicleID:            vehicleID,
		TourID:               tourID,
		PickupLocation:       req.PickupLocation,
		DropoffLocation:      req.DropoffLocation,
		PickupAt:             pickupAt,
		Passengers:           passengers,
		Total:                finalTotal,
		ReservationType:      req.ReservationType,
		AdditionalPassengers: additionalPassengers,
		AddOns:               resolved.Lines,
	})
	if err != nil {
		return nil, apperr.NewValidation("%s", err.Error())
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("email", reservation.Email),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.Int64("reservation_id", reservation.ID),
		zap.String("email", reservation.Email),
		zap.Int("passengers", reservation.Passengers),
		zap.Float64("total", reservation.Total.Amount),
		zap.Int("addon_lines", len(reservation.AddOns)),
	)

	return response.ReservationToResponse(reservation), nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, id int64) (*response.ReservationResponse, error) {
	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, apperr.NewNotFound("reservation", fmt.Sprintf("%d", id))
	}

	return response.ReservationToResponse(reservation), nil
}

func (s *reservationService) ListReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.Reservation.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count reservations", zap.Error(err))
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	items := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		items[i] = *response.ReservationToResponse(reservation)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *reservationService) UpdatePaymentStatus(ctx context.Context, id int64, status entity.PaymentStatus) (*response.ReservationResponse, error) {
	if status != entity.PaymentStatusPaid && status != entity.PaymentStatusFailed {
		return nil, apperr.NewValidation("payment status must be PAID or FAILED")
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, apperr.NewNotFound("reservation", fmt.Sprintf("%d", id))
	}
	if reservation.PaymentResolved() {
		return nil, apperr.NewValidation("cannot change payment status of a resolved reservation")
	}

	updated, err := s.repo.Reservation.UpdatePaymentStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	if !updated {
		// Lost the race against another status update between read and write
		return nil, apperr.NewValidation("cannot change payment status of a resolved reservation")
	}

	s.log.Info("Payment status updated",
		zap.Int64("reservation_id", id),
		zap.String("status", string(status)),
	)

	reservation.PaymentStatus = status
	return response.ReservationToResponse(reservation), nil
}

func (s *reservationService) ListActiveAddOns(ctx context.Context) ([]response.AddOnResponse, error) {
	addOns, err := s.repo.AddOn.ListActive(ctx)
	if err != nil {
		s.log.Error("Failed to list addons", zap.Error(err))
		return nil, fmt.Errorf("list addons: %w", err)
	}

	items := make([]response.AddOnResponse, len(addOns))
	for i, addOn := range addOns {
		items[i] = response.AddOnToResponse(addOn)
	}

	return items, nil
}

// resolvePickupDatetime prefers the explicit ISO datetime; otherwise a date
// plus optional time (default "00:00"); with neither the pickup stays unset.
// An unparsable value resolves to nil rather than failing the booking.
func resolvePickupDatetime(datetime, date, timeOfDay *string) *time.Time {
	if datetime != nil && strings.TrimSpace(*datetime) != "" {
		raw := strings.TrimSpace(*datetime)
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return &t
			}
		}
		return nil
	}

	if date != nil && strings.TrimSpace(*date) != "" {
		clock := "00:00"
		if timeOfDay != nil && strings.TrimSpace(*timeOfDay) != "" {
			clock = strings.TrimSpace(*timeOfDay)
		}
		if t, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(*date)+" "+clock); err == nil {
			return &t
		}
		return nil
	}

	return nil
}

// validateAdditionalPassengers applies the count rule: with more than one
// passenger and a non-empty list supplied, the cleaned entries must number
// exactly passengers-1. With one passenger or no list the result is empty
// regardless of input.
func validateAdditionalPassengers(passengers int, supplied []request.AdditionalPassengerRequest) ([]entity.AdditionalPassenger, error) {
	if passengers <= 1 || len(supplied) == 0 {
		return []entity.AdditionalPassenger{}, nil
	}

	cleaned := make([]entity.AdditionalPassenger, 0, len(supplied))
	for _, p := range supplied {
		first := strings.TrimSpace(p.FirstName)
		last := strings.TrimSpace(p.LastName)
		if first == "" || last == "" {
			continue
		}
		cleaned = append(cleaned, entity.AdditionalPassenger{FirstName: first, LastName: last})
	}

	if len(cleaned) != passengers-1 {
		return nil, apperr.NewValidation("passenger detail count mismatch")
	}

	return cleaned, nil
}

func parseServiceReference(vehicleID, tourID *string) (*uuid.UUID, *uuid.UUID, error) {
	var vID, tID *uuid.UUID

	if vehicleID != nil && *vehicleID != "" {
		parsed, err := uuid.Parse(*vehicleID)
		if err != nil {
			return nil, nil, apperr.NewValidation("invalid vehicle id %s", *vehicleID)
		}
		vID = &parsed
	}

	if tourID != nil && *tourID != "" {
		parsed, err := uuid.Parse(*tourID)
		if err != nil {
			return nil, nil, apperr.NewValidation("invalid tour id %s", *tourID)
		}
		tID = &parsed
	}

	return vID, tID, nil
}
