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

// AddOnRepository is the add-on catalog lookup the resolver depends on.
type AddOnRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error)
	ListActive(ctx context.Context) ([]*entity.AddOn, error)
}

type addOnRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddOnRepository(db database.PgxIface, log *zap.Logger) AddOnRepository {
	return &addOnRepository{
		db:  db,
		log: log.With(zap.String("repository", "addon")),
	}
}

func (r *addOnRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error) {
	query := `
		SELECT id, name, short_description, price, is_active, display_order
		FROM addons
		WHERE id = $1
	`

	var addOn entity.AddOn
	err := r.db.QueryRow(ctx, query, id).Scan(
		&addOn.ID,
		&addOn.Name,
		&addOn.ShortDescription,
		&addOn.Price,
		&addOn.IsActive,
		&addOn.DisplayOrder,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find addon by ID",
			zap.Error(err),
			zap.String("addon_id", id.String()),
		)
		return nil, fmt.Errorf("find addon by ID %s: %w", id.String(), err)
	}

	return &addOn, nil
}

func (r *addOnRepository) ListActive(ctx context.Context) ([]*entity.AddOn, error) {
	query := `
		SELECT id, name, short_description, price, is_active, display_order
		FROM addons
		WHERE is_active = true
		ORDER BY display_order ASC, name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list active addons", zap.Error(err))
		return nil, fmt.Errorf("list active addons: %w", err)
	}
	defer rows.Close()

	var addOns []*entity.AddOn
	for rows.Next() {
		var addOn entity.AddOn
		err := rows.Scan(
			&addOn.ID,
			&addOn.Name,
			&addOn.ShortDescription,
			&addOn.Price,
			&addOn.IsActive,
			&addOn.DisplayOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("scan addon row: %w", err)
		}
		addOns = append(addOns, &addOn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addon rows: %w", err)
	}

	return addOns, nil
}
