package entity

import (
	"github.com/google/uuid"
)

// Vehicle carries the rates used for server-side re-pricing. BasePrice is
// deliberately not a factor for transfers; only distance-based pricing
// applies there.
type Vehicle struct {
	ID              uuid.UUID `db:"id"`
	Name            string    `db:"name"`
	KmPrice         float64   `db:"km_price"`
	HourlyBasePrice float64   `db:"hourly_base_price"`
	BasePrice       float64   `db:"base_price"`
	IsActive        bool      `db:"is_active"`
}
