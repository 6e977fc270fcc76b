package repository

import (
	"transfer-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Reservation ReservationRepository
	AddOn       AddOnRepository
	Vehicle     VehicleRepository
	Tour        TourRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Reservation: NewReservationRepository(db, log),
		AddOn:       NewAddOnRepository(db, log),
		Vehicle:     NewVehicleRepository(db, log),
		Tour:        NewTourRepository(db, log),
	}
}
