package entities

import (
	"math"
	"testing"
)

func TestLocation_DistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		a        Location
		b        Location
		expected float64
	}{
		{name: "Same location", a: NewLocation(3, 4), b: NewLocation(3, 4), expected: 0},
		{name: "3-4-5 triangle", a: NewLocation(0, 0), b: NewLocation(4, 3), expected: 5},
		{name: "Negative coordinates", a: NewLocation(-1, -1), b: NewLocation(2, 3), expected: 5},
		{name: "Nearest sample driver", a: NewLocation(1, 2), b: NewLocation(0, 0), expected: math.Sqrt(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.DistanceTo(tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("DistanceTo() = %v, expected %v", got, tt.expected)
			}
			if back := tt.b.DistanceTo(tt.a); back != got {
				t.Errorf("DistanceTo is not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestRider_TripDistanceKm(t *testing.T) {
	rider := NewRider(1, "Alex", NewLocation(0, 0), NewLocation(4, 3))

	if rider.TripDistanceKm() != 5.0 {
		t.Errorf("Expected trip distance 5.0, got %v", rider.TripDistanceKm())
	}
}

func TestDriver_Lifecycle(t *testing.T) {
	driver := NewDriver(1, "Maya", 4.98, NewLocation(1, 2))

	if !driver.IsAvailable() {
		t.Fatal("Expected new driver to be available")
	}

	driver.SetAvailable(false)
	if driver.IsAvailable() {
		t.Error("Expected driver to be unavailable")
	}

	driver.MoveTo(NewLocation(4, 3))
	if driver.Position != NewLocation(4, 3) {
		t.Errorf("Expected position (4, 3), got %+v", driver.Position)
	}
}
