package repository

import (
	"context"
	"fmt"

	"transfer-booking/internal/data/entity"
	"transfer-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	query := `
		SELECT id, name, per_person_price, is_active
		FROM tours
		WHERE id = $1
	`

	var tour entity.Tour
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tour.ID,
		&tour.Name,
		&tour.PerPersonPrice,
		&tour.IsActive,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("find tour by ID %s: %w", id.String(), err)
	}

	return &tour, nil
}
