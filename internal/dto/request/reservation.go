package request

// AdditionalPassengerRequest carries one extra traveller's name pair.
type AdditionalPassengerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AddOnSelectionRequest is one requested add-on line. Invalid entries are
// dropped by the resolver, not rejected, so no validation tags here.
type AddOnSelectionRequest struct {
	AddOnID  string `json:"addon_id"`
	Quantity int    `json:"quantity"`
}

// CreateReservationRequest is the raw booking form. Field-level rules with
// caller-facing messages ("name required", "passenger detail count mismatch")
// live in the service, which validates in a fixed order; tags cover only
// shape constraints.
type CreateReservationRequest struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	VehicleID       *string `json:"vehicle_id,omitempty" validate:"omitempty,uuid4"`
	TourID          *string `json:"tour_id,omitempty" validate:"omitempty,uuid4"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`

	// Explicit ISO datetime wins; otherwise date + time are combined with
	// time defaulting to "00:00"; with neither the pickup stays unset.
	PickupDatetime *string `json:"pickup_datetime,omitempty"`
	PickupDate     *string `json:"pickup_date,omitempty"`
	PickupTime     *string `json:"pickup_time,omitempty"`

	Passengers      int     `json:"passengers"`
	TotalPrice      float64 `json:"total_price"`
	ReservationType string  `json:"reservation_type,omitempty"`

	AdditionalPassengers []AdditionalPassengerRequest `json:"additional_passengers,omitempty"`
	AddOns               []AddOnSelectionRequest      `json:"addons,omitempty"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PAID FAILED"`
}
