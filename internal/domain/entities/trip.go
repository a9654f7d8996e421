package entities

// Trip is an immutable snapshot of one matching and pricing decision. Rider
// and driver identity are copied by value so the trip stays valid after the
// rider goes out of scope or the driver moves on.
type Trip struct {
	ID              int      `json:"id"`
	RiderID         int      `json:"rider_id"`
	RiderName       string   `json:"rider_name"`
	DriverID        int      `json:"driver_id"`
	DriverName      string   `json:"driver_name"`
	Pickup          Location `json:"pickup"`
	Dropoff         Location `json:"dropoff"`
	DistanceKm      float64  `json:"distance_km"`
	DurationMinutes float64  `json:"duration_minutes"`
	Fare            float64  `json:"fare"`
	PricingModel    string   `json:"pricing_model"`
	DispatchModel   string   `json:"dispatch_model"`
}
