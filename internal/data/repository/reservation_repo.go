package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"transfer-booking/internal/data/entity"
	"transfer-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	// Create persists the aggregate and fills in the assigned id and
	// creation timestamp.
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id int64) (*entity.Reservation, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error)
	Count(ctx context.Context) (int64, error)

	// UpdatePaymentStatus is a dedicated partial update, not a full re-save.
	// Only pending rows transition; it reports whether a row was updated.
	UpdatePaymentStatus(ctx context.Context, id int64, status entity.PaymentStatus) (bool, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, customer_name, email, phone, vehicle_id, tour_id,
		pickup_location, dropoff_location, pickup_at, passengers,
		total_amount, currency, payment_status, reservation_type,
		additional_passengers, addons, created_at`

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	passengersJSON, err := json.Marshal(reservation.AdditionalPassengers)
	if err != nil {
		return fmt.Errorf("marshal additional passengers: %w", err)
	}

	addOnsJSON, err := json.Marshal(reservation.AddOns)
	if err != nil {
		return fmt.Errorf("marshal addons: %w", err)
	}

	query := `
		INSERT INTO reservations (customer_name, email, phone, vehicle_id, tour_id,
			pickup_location, dropoff_location, pickup_at, passengers,
			total_amount, currency, payment_status, reservation_type,
			additional_passengers, addons)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		reservation.CustomerName,
		reservation.Email,
		reservation.Phone,
		reservation.VehicleID,
		reservation.TourID,
		reservation.PickupLocation,
		reservation.DropoffLocation,
		reservation.PickupAt,
		reservation.Passengers,
		reservation.Total.Amount,
		reservation.Total.Currency,
		reservation.PaymentStatus,
		reservation.ReservationType,
		passengersJSON,
		addOnsJSON,
	).Scan(&reservation.ID, &reservation.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("email", reservation.Email),
		)
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE id = $1`, reservationColumns)

	reservation, err := r.scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return nil, fmt.Errorf("find reservation by ID %d: %w", id, err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reservations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, reservationColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reservations",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}

	return total, nil
}

func (r *reservationRepository) UpdatePaymentStatus(ctx context.Context, id int64, status entity.PaymentStatus) (bool, error) {
	// Transition is guarded in SQL: only pending rows move, so a resolved
	// reservation can never re-enter PENDING or flip between PAID and FAILED.
	query := `
		UPDATE reservations
		SET payment_status = $2
		WHERE id = $1 AND payment_status = $3
	`

	tag, err := r.db.Exec(ctx, query, id, status, entity.PaymentStatusPending)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.Int64("reservation_id", id),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update payment status for reservation %d: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *reservationRepository) scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	var passengersJSON, addOnsJSON []byte

	err := row.Scan(
		&reservation.ID,
		&reservation.CustomerName,
		&reservation.Email,
		&reservation.Phone,
		&reservation.VehicleID,
		&reservation.TourID,
		&reservation.PickupLocation,
		&reservation.DropoffLocation,
		&reservation.PickupAt,
		&reservation.Passengers,
		&reservation.Total.Amount,
		&reservation.Total.Currency,
		&reservation.PaymentStatus,
		&reservation.ReservationType,
		&passengersJSON,
		&addOnsJSON,
		&reservation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(passengersJSON) > 0 {
		if err := json.Unmarshal(passengersJSON, &reservation.AdditionalPassengers); err != nil {
			return nil, fmt.Errorf("unmarshal additional passengers: %w", err)
		}
	}
	if len(addOnsJSON) > 0 {
		if err := json.Unmarshal(addOnsJSON, &reservation.AddOns); err != nil {
			return nil, fmt.Errorf("unmarshal addons: %w", err)
		}
	}

	return &reservation, nil
}
