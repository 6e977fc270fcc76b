package request

type TransferQuoteRequest struct {
	VehicleID  string  `json:"vehicle_id" validate:"required,uuid4"`
	DistanceKm float64 `json:"distance_km"`
	RoundTrip  bool    `json:"round_trip"`
}

type ChauffeurQuoteRequest struct {
	VehicleID     string  `json:"vehicle_id" validate:"required,uuid4"`
	DurationHours float64 `json:"duration_hours"`
}

type TourQuoteRequest struct {
	TourID  string `json:"tour_id" validate:"required,uuid4"`
	Persons int    `json:"persons"`
}
