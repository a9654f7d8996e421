// Package entities defines the core domain models for the ride-sharing
// simulation: locations, riders, drivers and the trips matched between them.
// These structs live in the innermost layer of the architecture and have no
// dependencies on HTTP, configuration or storage.
//
// Go Learning Note — "internal/" directory:
// Packages under internal/ cannot be imported by code outside this module. Go
// enforces this at the compiler level. This is how Go provides encapsulation
// at the package level: it prevents external code from depending on your
// internal implementation details.
package entities

// Driver represents a driver in the pool. Rating is not range checked.
//
// Go Learning Note — Struct Tags:
// The `json:"id"` annotations are called struct tags. They control how
// encoding/json (and gin's c.JSON) serialize the field. Tags are metadata
// attached to struct fields and are read through the "reflect" package.
type Driver struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Rating    float64  `json:"rating"`
	Available bool     `json:"available"`
	Position  Location `json:"position"`
}

// NewDriver creates a driver that is available for dispatch.
func NewDriver(id int, name string, rating float64, position Location) Driver {
	return Driver{
		ID:        id,
		Name:      name,
		Rating:    rating,
		Available: true,
		Position:  position,
	}
}

func (d *Driver) IsAvailable() bool {
	return d.Available
}

func (d *Driver) SetAvailable(available bool) {
	d.Available = available
}

// MoveTo relocates the driver, e.g. to a rider's dropoff once a trip ends.
func (d *Driver) MoveTo(destination Location) {
	d.Position = destination
}
