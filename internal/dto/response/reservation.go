package response

import (
	"time"

	"transfer-booking/internal/data/entity"
)

type PriceResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type AdditionalPassengerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ReservationAddOnResponse struct {
	AddOnID   string  `json:"addon_id"`
	AddOnName string  `json:"addon_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// ReservationResponse mirrors the full persisted reservation. All timestamps
// are ISO-8601 strings for interop.
type ReservationResponse struct {
	ID                   int64                         `json:"id"`
	CustomerName         string                        `json:"customer_name"`
	Email                string                        `json:"email"`
	Phone                *string                       `json:"phone,omitempty"`
	VehicleID            *string                       `json:"vehicle_id,omitempty"`
	TourID               *string                       `json:"tour_id,omitempty"`
	PickupLocation       string                        `json:"pickup_location"`
	DropoffLocation      string                        `json:"dropoff_location"`
	PickupAt             *string                       `json:"pickup_at,omitempty"`
	Passengers           int                           `json:"passengers"`
	TotalPrice           PriceResponse                 `json:"total_price"`
	AddOnsTotal          float64                       `json:"addons_total"`
	PaymentStatus        entity.PaymentStatus          `json:"payment_status"`
	ReservationType      string                        `json:"reservation_type,omitempty"`
	AdditionalPassengers []AdditionalPassengerResponse `json:"additional_passengers"`
	AddOns               []ReservationAddOnResponse    `json:"addons"`
	CreatedAt            string                        `json:"created_at"`
}

// ReservationToResponse projects the aggregate into its transport shape.
func ReservationToResponse(reservation *entity.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:              reservation.ID,
		CustomerName:    reservation.CustomerName,
		Email:           reservation.Email,
		Phone:           reservation.Phone,
		PickupLocation:  reservation.PickupLocation,
		DropoffLocation: reservation.DropoffLocation,
		Passengers:      reservation.Passengers,
		TotalPrice: PriceResponse{
			Amount:   reservation.Total.Amount,
			Currency: string(reservation.Total.Currency),
		},
		PaymentStatus:        reservation.PaymentStatus,
		ReservationType:      reservation.ReservationType,
		AdditionalPassengers: make([]AdditionalPassengerResponse, 0, len(reservation.AdditionalPassengers)),
		AddOns:               make([]ReservationAddOnResponse, 0, len(reservation.AddOns)),
		CreatedAt:            reservation.CreatedAt.Format(time.RFC3339),
	}

	if reservation.VehicleID != nil {
		id := reservation.VehicleID.String()
		resp.VehicleID = &id
	}
	if reservation.TourID != nil {
		id := reservation.TourID.String()
		resp.TourID = &id
	}
	if reservation.PickupAt != nil {
		at := reservation.PickupAt.Format(time.RFC3339)
		resp.PickupAt = &at
	}

	for _, p := range reservation.AdditionalPassengers {
		resp.AdditionalPassengers = append(resp.AdditionalPassengers, AdditionalPassengerResponse{
			FirstName: p.FirstName,
			LastName:  p.LastName,
		})
	}

	for _, line := range reservation.AddOns {
		resp.AddOns = append(resp.AddOns, ReservationAddOnResponse{
			AddOnID:   line.AddOnID.String(),
			AddOnName: line.AddOnName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
		resp.AddOnsTotal += line.LineTotal
	}

	return resp
}
