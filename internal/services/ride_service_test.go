package services

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"ridesharing/internal/config"
	"ridesharing/internal/dispatch"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/pricing"
	"ridesharing/internal/repository/memory"
)

const epsilon = 1e-9

func setupRideService(t *testing.T) (*RideService, *memory.DriverRepository) {
	t.Helper()

	driverRepo := memory.NewDriverRepository()
	cfg := config.NewDefaultConfig()
	service := NewRideService(driverRepo, pricing.NewStandard(), dispatch.NewNearestDriver(), cfg)

	ctx := context.Background()
	for _, d := range []entities.Driver{
		entities.NewDriver(1, "Maya", 4.98, entities.NewLocation(1, 2)),
		entities.NewDriver(2, "Leo", 4.67, entities.NewLocation(5, 1)),
		entities.NewDriver(3, "Amina", 4.85, entities.NewLocation(3, 4)),
	} {
		if err := service.AddDriver(ctx, d); err != nil {
			t.Fatalf("AddDriver failed: %v", err)
		}
	}
	return service, driverRepo
}

type panickingPricing struct{}

func (panickingPricing) CalculateFare(distanceKm, minutes float64) float64 {
	panic("pricing backend exploded")
}

func (panickingPricing) Name() string { return "Panicking" }

func TestRideService_RequestTrip_SampleScenario(t *testing.T) {
	service, _ := setupRideService(t)
	ctx := context.Background()

	rider := entities.NewRider(1, "Alex", entities.NewLocation(0, 0), entities.NewLocation(4, 3))
	trip, err := service.RequestTrip(ctx, rider)
	if err != nil {
		t.Fatalf("RequestTrip failed: %v", err)
	}

	if trip.ID != 1 {
		t.Errorf("Expected trip ID 1, got %d", trip.ID)
	}
	if trip.DriverName != "Maya" || trip.DriverID != 1 {
		t.Errorf("Expected Maya, got %s (#%d)", trip.DriverName, trip.DriverID)
	}
	if trip.RiderName != "Alex" || trip.RiderID != 1 {
		t.Errorf("Expected rider Alex, got %s (#%d)", trip.RiderName, trip.RiderID)
	}
	if math.Abs(trip.DistanceKm-5.0) > epsilon {
		t.Errorf("Expected distance 5.0, got %v", trip.DistanceKm)
	}
	if math.Abs(trip.DurationMinutes-7.5) > epsilon {
		t.Errorf("Expected duration 7.5, got %v", trip.DurationMinutes)
	}
	if math.Abs(trip.Fare-11.375) > epsilon {
		t.Errorf("Expected fare 11.375, got %v", trip.Fare)
	}
	if trip.PricingModel != "Standard" || trip.DispatchModel != "Nearest driver" {
		t.Errorf("Unexpected models: %s / %s", trip.PricingModel, trip.DispatchModel)
	}
}

func TestRideService_RequestTrip_DriverMovedAndReleased(t *testing.T) {
	service, driverRepo := setupRideService(t)
	ctx := context.Background()

	rider := entities.NewRider(1, "Alex", entities.NewLocation(0, 0), entities.NewLocation(4, 3))
	trip, err := service.RequestTrip(ctx, rider)
	if err != nil {
		t.Fatalf("RequestTrip failed: %v", err)
	}

	driver, err := driverRepo.GetByID(ctx, trip.DriverID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !driver.Available {
		t.Error("Expected driver to be available after the trip")
	}
	if driver.Position != rider.Dropoff {
		t.Errorf("Expected driver at dropoff %+v, got %+v", rider.Dropoff, driver.Position)
	}
}

func TestRideService_RequestTrip_StrategySwaps(t *testing.T) {
	service, _ := setupRideService(t)
	ctx := context.Background()

	first, err := service.RequestTrip(ctx, entities.NewRider(1, "Alex", entities.NewLocation(0, 0), entities.NewLocation(4, 3)))
	if err != nil {
		t.Fatalf("First trip failed: %v", err)
	}

	service.SetPricingStrategy(pricing.NewSurge(1.8))
	service.SetDispatchStrategy(dispatch.NewHighestRated())

	sam := entities.NewRider(2, "Sam", entities.NewLocation(10, 5), entities.NewLocation(2, 1))
	second, err := service.RequestTrip(ctx, sam)
	if err != nil {
		t.Fatalf("Second trip failed: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("Expected trip ID 2, got %d", second.ID)
	}
	if second.DriverName != "Maya" {
		t.Errorf("Expected highest rated Maya, got %s", second.DriverName)
	}
	if second.PricingModel != "Surge x1.8" || second.DispatchModel != "Highest rated" {
		t.Errorf("Unexpected models: %s / %s", second.PricingModel, second.DispatchModel)
	}
	expectedFare := pricing.NewStandard().CalculateFare(second.DistanceKm, second.DurationMinutes) * 1.8
	if math.Abs(second.Fare-expectedFare) > epsilon {
		t.Errorf("Expected surge fare %v, got %v", expectedFare, second.Fare)
	}

	// Earlier trips are snapshots and keep their models.
	if first.PricingModel != "Standard" || first.DispatchModel != "Nearest driver" {
		t.Errorf("First trip changed after strategy swap: %s / %s", first.PricingModel, first.DispatchModel)
	}

	service.SetPricingStrategy(pricing.NewEco())
	service.SetDispatchStrategy(dispatch.NewNearestDriver())

	jamie := entities.NewRider(3, "Jamie", entities.NewLocation(2.5, 2), entities.NewLocation(2, 2.2))
	third, err := service.RequestTrip(ctx, jamie)
	if err != nil {
		t.Fatalf("Third trip failed: %v", err)
	}
	if third.ID != 3 {
		t.Errorf("Expected trip ID 3, got %d", third.ID)
	}
	// Maya was dropped at (2, 1) by the second trip, which is now nearest.
	if third.DriverName != "Maya" {
		t.Errorf("Expected Maya, got %s", third.DriverName)
	}
	if third.Fare != 5.00 {
		t.Errorf("Expected eco minimum fare 5.00, got %v", third.Fare)
	}
}

func TestRideService_RequestTrip_DurationClamp(t *testing.T) {
	service, _ := setupRideService(t)
	ctx := context.Background()

	rider := entities.NewRider(1, "Still", entities.NewLocation(2, 2), entities.NewLocation(2, 2))
	trip, err := service.RequestTrip(ctx, rider)
	if err != nil {
		t.Fatalf("RequestTrip failed: %v", err)
	}

	if trip.DistanceKm != 0 {
		t.Errorf("Expected distance 0, got %v", trip.DistanceKm)
	}
	if math.Abs(trip.DurationMinutes-3.0) > epsilon {
		t.Errorf("Expected clamped duration 3 minutes, got %v", trip.DurationMinutes)
	}
}

func TestRideService_RequestTrip_NoDriverAvailable(t *testing.T) {
	ctx := context.Background()
	rider := entities.NewRider(1, "Alex", entities.NewLocation(0, 0), entities.NewLocation(4, 3))

	t.Run("Empty pool", func(t *testing.T) {
		service := NewRideService(memory.NewDriverRepository(), pricing.NewStandard(), dispatch.NewNearestDriver(), config.NewDefaultConfig())

		trip, err := service.RequestTrip(ctx, rider)
		if !errors.Is(err, ErrNoDriverAvailable) {
			t.Errorf("Expected ErrNoDriverAvailable, got %v", err)
		}
		if trip != nil {
			t.Errorf("Expected no trip, got %+v", trip)
		}
	})

	t.Run("All drivers busy", func(t *testing.T) {
		service, driverRepo := setupRideService(t)
		for _, id := range []int{1, 2, 3} {
			driverRepo.SetAvailability(ctx, id, false)
		}

		if _, err := service.RequestTrip(ctx, rider); !errors.Is(err, ErrNoDriverAvailable) {
			t.Errorf("Expected ErrNoDriverAvailable, got %v", err)
		}
	})
}

func TestRideService_RequestTrip_StrategyNotConfigured(t *testing.T) {
	ctx := context.Background()
	rider := entities.NewRider(1, "Alex", entities.NewLocation(0, 0), entities.NewLocation(4, 3))

	tests := []struct {
		name     string
		pricing  pricing.Strategy
		dispatch dispatch.Strategy
	}{
		{name: "Missing pricing", pricing: nil, dispatch: dispatch.NewNearestDriver()},
		{name: "Missing dispatch", pricing: pricing.NewStandard(), dispatch: nil},
		{name: "Missing both", pricing: nil, dispatch: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverRepo := memory.NewDriverRepository()
			service := NewRideService(driverRepo, tt.pricing, tt.dispatch, config.NewDefaultConfig())
			service.AddDriver(ctx, entities.NewDriver(1, "Maya", 4.98, entities.NewLocation(1, 2)))

			trip, err := service.RequestTrip(ctx, rider)
			if !errors.Is(err, ErrStrategyNotConfigured) {
				t.Errorf("Expected ErrStrategyNotConfigured, got %v", err)
			}
			if trip != nil {
				t.Errorf("Expected no trip, got %+v", trip)
			}

			driver, _ := driverRepo.GetByID(ctx, 1)
			if !driver.Available || driver.Position != entities.NewLocation(1, 2) {
				t.Errorf("Driver state changed on a failed request: %+v", driver)
			}
		})
	}
}

func TestRideService_TripIDsHaveNoGaps(t *testing.T) {
	service, driverRepo := setupRideService(t)
	ctx := context.Background()
	rider := entities.NewRider(1, "Alex", entities.NewLocation(0, 0), entities.NewLocation(4, 3))

	trip, _ := service.RequestTrip(ctx, rider)
	if trip.ID != 1 {
		t.Fatalf("Expected trip ID 1, got %d", trip.ID)
	}

	// A failed request must not consume an ID.
	for _, id := range []int{1, 2, 3} {
		driverRepo.SetAvailability(ctx, id, false)
	}
	if _, err := service.RequestTrip(ctx, rider); !errors.Is(err, ErrNoDriverAvailable) {
		t.Fatalf("Expected ErrNoDriverAvailable, got %v", err)
	}
	for _, id := range []int{1, 2, 3} {
		driverRepo.SetAvailability(ctx, id, true)
	}

	service.SetDispatchStrategy(dispatch.NewHighestRated())
	trip, _ = service.RequestTrip(ctx, rider)
	if trip.ID != 2 {
		t.Errorf("Expected trip ID 2, got %d", trip.ID)
	}
}

func TestRideService_RequestTrip_PanicReleasesDriver(t *testing.T) {
	service, driverRepo := setupRideService(t)
	ctx := context.Background()
	service.SetPricingStrategy(panickingPricing{})

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("Expected pricing panic to propagate")
			}
		}()
		service.RequestTrip(ctx, entities.NewRider(1, "Alex", entities.NewLocation(0, 0), entities.NewLocation(4, 3)))
	}()

	driver, _ := driverRepo.GetByID(ctx, 1)
	if !driver.Available {
		t.Error("Expected driver to be released after a pricing panic")
	}
	if driver.Position != entities.NewLocation(1, 2) {
		t.Errorf("Expected driver to stay at (1, 2), got %+v", driver.Position)
	}

	// The service lock was released too.
	service.SetPricingStrategy(pricing.NewStandard())
	if _, err := service.RequestTrip(ctx, entities.NewRider(2, "Sam", entities.NewLocation(0, 0), entities.NewLocation(1, 0))); err != nil {
		t.Errorf("Expected service to recover, got %v", err)
	}
}

func TestRideService_RequestTrip_CancelledContext(t *testing.T) {
	service, _ := setupRideService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.RequestTrip(ctx, entities.NewRider(1, "Alex", entities.NewLocation(0, 0), entities.NewLocation(4, 3)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRideService_RequestTrip_Concurrent(t *testing.T) {
	service, _ := setupRideService(t)
	ctx := context.Background()

	const requests = 50
	ids := make(chan int, requests)

	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			rider := entities.NewRider(n, "rider", entities.NewLocation(float64(n%7), 0), entities.NewLocation(0, float64(n%5)))
			trip, err := service.RequestTrip(ctx, rider)
			if err != nil {
				t.Errorf("RequestTrip failed: %v", err)
				return
			}
			ids <- trip.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("Trip ID %d issued twice", id)
		}
		seen[id] = true
	}
	for id := 1; id <= requests; id++ {
		if !seen[id] {
			t.Errorf("Trip ID %d missing", id)
		}
	}

	drivers, _ := service.Drivers(ctx)
	for _, d := range drivers {
		if !d.Available {
			t.Errorf("Driver %s left unavailable", d.Name)
		}
	}
}

func TestRideService_AddDriverAndDrivers(t *testing.T) {
	service, _ := setupRideService(t)
	ctx := context.Background()

	if err := service.AddDriver(ctx, entities.NewDriver(1, "Dup", 3.0, entities.NewLocation(0, 0))); !errors.Is(err, memory.ErrDriverExists) {
		t.Errorf("Expected ErrDriverExists, got %v", err)
	}

	drivers, err := service.Drivers(ctx)
	if err != nil {
		t.Fatalf("Drivers failed: %v", err)
	}
	expected := []string{"Maya", "Leo", "Amina"}
	if len(drivers) != len(expected) {
		t.Fatalf("Expected %d drivers, got %d", len(expected), len(drivers))
	}
	for i, name := range expected {
		if drivers[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, drivers[i].Name)
		}
	}
}

func TestRideService_EstimateDurationMinutes(t *testing.T) {
	service, _ := setupRideService(t)

	if got := service.EstimateDurationMinutes(0); math.Abs(got-3.0) > epsilon {
		t.Errorf("Expected 3 minutes for zero distance, got %v", got)
	}
	if got := service.EstimateDurationMinutes(10); math.Abs(got-15.0) > epsilon {
		t.Errorf("Expected 15 minutes for 10 km, got %v", got)
	}
}
