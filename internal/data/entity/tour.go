package entity

import (
	"github.com/google/uuid"
)

type Tour struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	PerPersonPrice float64   `db:"per_person_price"`
	IsActive       bool      `db:"is_active"`
}
