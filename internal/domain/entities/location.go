package entities

import "math"

// Location is a point on the flat simulation plane. Coordinates are treated
// as kilometers, so DistanceTo returns kilometers.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewLocation(x, y float64) Location {
	return Location{X: x, Y: y}
}

// DistanceTo returns the straight-line (Euclidean) distance between two
// locations. It is symmetric and zero for identical points.
//
// Go Learning Note — Value Receivers:
// Location is a small immutable value, so the method uses a value receiver
// (l Location) rather than a pointer receiver. The struct is copied on each
// call, which is cheaper than chasing a pointer for two float64 fields, and it
// signals to readers that the method cannot modify the receiver.
func (l Location) DistanceTo(other Location) float64 {
	return math.Hypot(l.X-other.X, l.Y-other.Y)
}
