package entity

import (
	"github.com/google/uuid"
)

// AddOn is a catalog entry for an optional paid extra. Only active entries
// may be attached to a new reservation; the price is snapshotted into the
// reservation line at booking time.
type AddOn struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	ShortDescription *string   `db:"short_description"`
	Price            float64   `db:"price"`
	IsActive         bool      `db:"is_active"`
	DisplayOrder     int       `db:"display_order"`
}
