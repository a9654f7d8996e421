package entities

// Rider is the caller-owned party requesting a trip. The ride service never
// stores riders; trips copy the identifying fields they need.
type Rider struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Pickup  Location `json:"pickup"`
	Dropoff Location `json:"dropoff"`
}

func NewRider(id int, name string, pickup, dropoff Location) Rider {
	return Rider{
		ID:      id,
		Name:    name,
		Pickup:  pickup,
		Dropoff: dropoff,
	}
}

// TripDistanceKm is the priced distance: pickup to dropoff. The driver's
// approach to the pickup is not included.
func (r Rider) TripDistanceKm() float64 {
	return r.Pickup.DistanceTo(r.Dropoff)
}
