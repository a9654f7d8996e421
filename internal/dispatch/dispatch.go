// Package dispatch implements the driver selection policies. A policy sees
// the driver pool as a slice of values, so it can read availability and
// position but never change them; the ride service owns all mutation.
package dispatch

import (
	"errors"
	"math"
	"strings"

	"ridesharing/internal/domain/entities"
)

var ErrUnknownStrategy = errors.New("unknown dispatch strategy")

const (
	StrategyHighestRated  = "highest-rated"
	StrategyNearestDriver = "nearest-driver"
)

// Strategy picks one available driver for a rider. ok is false when no
// driver in the pool is available; that is a normal outcome, not an error.
type Strategy interface {
	ChooseDriver(drivers []entities.Driver, rider entities.Rider) (driver entities.Driver, ok bool)
	Name() string
}

// HighestRated picks the available driver with the best rating. Rider
// location is ignored. Ties go to the driver that appears first in the pool.
type HighestRated struct{}

func NewHighestRated() *HighestRated {
	return &HighestRated{}
}

func (HighestRated) ChooseDriver(drivers []entities.Driver, _ entities.Rider) (entities.Driver, bool) {
	best := -1
	for i := range drivers {
		if !drivers[i].IsAvailable() {
			continue
		}
		// Strict > keeps the first driver on equal ratings.
		if best < 0 || drivers[i].Rating > drivers[best].Rating {
			best = i
		}
	}
	if best < 0 {
		return entities.Driver{}, false
	}
	return drivers[best], true
}

func (HighestRated) Name() string {
	return "Highest rated"
}

// NearestDriver picks the available driver closest to the rider's pickup.
// Ties go to the driver that appears first in the pool.
type NearestDriver struct{}

func NewNearestDriver() *NearestDriver {
	return &NearestDriver{}
}

// ChooseDriver is a single O(n) scan. The pool is small enough that a
// spatial index would cost more than it saves.
func (NearestDriver) ChooseDriver(drivers []entities.Driver, rider entities.Rider) (entities.Driver, bool) {
	closest := -1
	bestDistance := math.Inf(1)
	for i := range drivers {
		if !drivers[i].IsAvailable() {
			continue
		}
		dist := drivers[i].Position.DistanceTo(rider.Pickup)
		if dist < bestDistance {
			bestDistance = dist
			closest = i
		}
	}
	if closest < 0 {
		return entities.Driver{}, false
	}
	return drivers[closest], true
}

func (NearestDriver) Name() string {
	return "Nearest driver"
}

// New resolves a strategy key (highest-rated, nearest-driver).
func New(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyHighestRated:
		return NewHighestRated(), nil
	case StrategyNearestDriver:
		return NewNearestDriver(), nil
	default:
		return nil, ErrUnknownStrategy
	}
}
