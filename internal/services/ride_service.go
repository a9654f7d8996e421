package services

import (
	"context"
	"errors"
	"sync"

	"ridesharing/internal/config"
	"ridesharing/internal/dispatch"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/pricing"
	"ridesharing/internal/repository"
	"ridesharing/pkg/utils"
)

var (
	// ErrNoDriverAvailable means dispatch found no available driver. It is
	// expected flow control, not a failure.
	ErrNoDriverAvailable = errors.New("no driver available")

	// ErrStrategyNotConfigured means the pricing or dispatch strategy is unset.
	ErrStrategyNotConfigured = errors.New("pricing or dispatch strategy not configured")
)

// RideService matches riders to drivers and prices the resulting trips. It
// owns the driver pool's mutable state and the active pricing and dispatch
// strategies.
//
// Go Learning Note — Mutex Scope:
// mu guards the strategies and the trip counter, and is held for the whole of
// RequestTrip. That makes "select a driver" and "flip its availability" one
// critical section, so two concurrent requests can never both pick the same
// driver. The repository has its own lock for its slice; mu is about the
// transaction, not the storage.
type RideService struct {
	mu         sync.Mutex
	driverRepo repository.DriverRepository
	pricing    pricing.Strategy
	dispatch   dispatch.Strategy
	config     *config.Config
	nextTripID int
}

func NewRideService(
	driverRepo repository.DriverRepository,
	pricingStrategy pricing.Strategy,
	dispatchStrategy dispatch.Strategy,
	cfg *config.Config,
) *RideService {
	return &RideService{
		driverRepo: driverRepo,
		pricing:    pricingStrategy,
		dispatch:   dispatchStrategy,
		config:     cfg,
		nextTripID: 1,
	}
}

// AddDriver appends a driver to the pool. Duplicate IDs are rejected.
func (s *RideService) AddDriver(ctx context.Context, driver entities.Driver) error {
	return s.driverRepo.Create(ctx, driver)
}

// Drivers returns the pool in insertion order. The slice is a copy.
func (s *RideService) Drivers(ctx context.Context) ([]entities.Driver, error) {
	return s.driverRepo.List(ctx)
}

// SetPricingStrategy replaces the active pricing strategy. Trips already
// issued keep the pricing model they were created with.
func (s *RideService) SetPricingStrategy(strategy pricing.Strategy) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pricing = strategy
}

// SetDispatchStrategy replaces the active dispatch strategy.
func (s *RideService) SetDispatchStrategy(strategy dispatch.Strategy) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch = strategy
}

func (s *RideService) PricingStrategy() pricing.Strategy {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pricing
}

func (s *RideService) DispatchStrategy() dispatch.Strategy {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dispatch
}

// RequestTrip runs one trip transaction for the rider:
//  1. Fail with ErrStrategyNotConfigured if a strategy is missing
//  2. Ask the dispatch strategy for an available driver (ErrNoDriverAvailable if none)
//  3. Mark the driver unavailable before anything else happens
//  4. Price the pickup → dropoff distance and its estimated duration
//  5. Build the trip snapshot with the next trip ID
//  6. Move the driver to the dropoff and make them available again
//
// The availability restore is deferred, so no return path (or panic in a
// pricing strategy) can leave a driver stuck unavailable.
func (s *RideService) RequestTrip(ctx context.Context, rider entities.Rider) (*entities.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pricing == nil || s.dispatch == nil {
		return nil, ErrStrategyNotConfigured
	}

	pool, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	chosen, ok := s.dispatch.ChooseDriver(pool, rider)
	if !ok {
		return nil, ErrNoDriverAvailable
	}

	if err := s.driverRepo.SetAvailability(ctx, chosen.ID, false); err != nil {
		return nil, err
	}
	defer func() {
		_ = s.driverRepo.SetAvailability(ctx, chosen.ID, true)
	}()

	distanceKm := rider.TripDistanceKm()
	durationMinutes := s.EstimateDurationMinutes(distanceKm)
	fare := s.pricing.CalculateFare(distanceKm, durationMinutes)

	trip := &entities.Trip{
		ID:              s.nextTripID,
		RiderID:         rider.ID,
		RiderName:       rider.Name,
		DriverID:        chosen.ID,
		DriverName:      chosen.Name,
		Pickup:          rider.Pickup,
		Dropoff:         rider.Dropoff,
		DistanceKm:      distanceKm,
		DurationMinutes: durationMinutes,
		Fare:            fare,
		PricingModel:    s.pricing.Name(),
		DispatchModel:   s.dispatch.Name(),
	}

	// The trip completes instantly: the driver ends up at the dropoff.
	if err := s.driverRepo.MoveTo(ctx, chosen.ID, rider.Dropoff); err != nil {
		return nil, err
	}

	s.nextTripID++
	return trip, nil
}

// EstimateDurationMinutes converts a trip distance into minutes using the
// configured average speed and short-trip clamp.
func (s *RideService) EstimateDurationMinutes(distanceKm float64) float64 {
	trip := s.config.Trip
	return utils.EstimateDuration(distanceKm, trip.AverageSpeedKmh, trip.MinDistanceKm, trip.MinDurationHours)
}
