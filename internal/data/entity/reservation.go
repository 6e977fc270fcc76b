package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// AdditionalPassenger travels with the booking customer. Names are snapshots,
// there is no passenger table.
type AdditionalPassenger struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ReservationAddOn is a priced line snapshotted at booking time. It never
// holds a live reference to the catalog entry, so later catalog price changes
// cannot rewrite history.
type ReservationAddOn struct {
	AddOnID   uuid.UUID `json:"addon_id"`
	AddOnName string    `json:"addon_name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	LineTotal float64   `json:"line_total"`
}

// Reservation is the aggregate root for a booked transfer, tour or chauffeur
// service. ID and CreatedAt are zero until the repository persists it.
type Reservation struct {
	ID                   int64
	CustomerName         string
	Email                string
	Phone                *string
	VehicleID            *uuid.UUID
	TourID               *uuid.UUID
	PickupLocation       string
	DropoffLocation      string
	PickupAt             *time.Time
	Passengers           int
	Total                Price
	PaymentStatus        PaymentStatus
	ReservationType      string
	AdditionalPassengers []AdditionalPassenger
	AddOns               []ReservationAddOn
	CreatedAt            time.Time
}

// NewReservationProps carries the validated inputs into the constructor.
type NewReservationProps struct {
	CustomerName         string
	Email                string
	Phone                *string
	VehicleID            *uuid.UUID
	TourID               *uuid.UUID
	PickupLocation       string
	DropoffLocation      string
	PickupAt             *time.Time
	Passengers           int
	Total                Price
	ReservationType      string
	AdditionalPassengers []AdditionalPassenger
	AddOns               []ReservationAddOn
}

// NewReservation builds the in-memory aggregate. Structural invariants only:
// passengers must be positive and a booking references at most one of vehicle
// or tour (neither is a pure chauffeur booking). Business validation with
// caller-facing messages happens in the service before this runs.
func NewReservation(props NewReservationProps) (*Reservation, error) {
	if props.Passengers <= 0 {
		return nil, fmt.Errorf("reservation requires at least one passenger, got %d", props.Passengers)
	}
	if props.VehicleID != nil && props.TourID != nil {
		return nil, fmt.Errorf("reservation may reference a vehicle or a tour, not both")
	}

	return &Reservation{
		CustomerName:         props.CustomerName,
		Email:                props.Email,
		Phone:                props.Phone,
		VehicleID:            props.VehicleID,
		TourID:               props.TourID,
		PickupLocation:       props.PickupLocation,
		DropoffLocation:      props.DropoffLocation,
		PickupAt:             props.PickupAt,
		Passengers:           props.Passengers,
		Total:                props.Total,
		PaymentStatus:        PaymentStatusPending,
		ReservationType:      props.ReservationType,
		AdditionalPassengers: props.AdditionalPassengers,
		AddOns:               props.AddOns,
	}, nil
}

// PaymentResolved reports whether the reservation has left PENDING. A
// resolved reservation is terminal and never re-enters PENDING.
func (r *Reservation) PaymentResolved() bool {
	return r.PaymentStatus == PaymentStatusPaid || r.PaymentStatus == PaymentStatusFailed
}
