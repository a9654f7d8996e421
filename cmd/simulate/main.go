// Command simulate runs a fixed ride-sharing scenario against the ride
// service and prints the resulting trips: three drivers, three riders, and a
// strategy switch before each of the later requests.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"ridesharing/internal/config"
	"ridesharing/internal/dispatch"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/pricing"
	"ridesharing/internal/repository/memory"
	"ridesharing/internal/services"
)

func main() {
	if err := run(context.Background(), os.Stdout, config.Load()); err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
}

func run(ctx context.Context, out io.Writer, cfg *config.Config) error {
	service := services.NewRideService(
		memory.NewDriverRepository(),
		pricing.NewStandardFromConfig(cfg.Pricing),
		dispatch.NewNearestDriver(),
		cfg,
	)

	for _, driver := range []entities.Driver{
		entities.NewDriver(1, "Maya", 4.98, entities.NewLocation(1.0, 2.0)),
		entities.NewDriver(2, "Leo", 4.67, entities.NewLocation(5.0, 1.0)),
		entities.NewDriver(3, "Amina", 4.85, entities.NewLocation(3.0, 4.0)),
	} {
		if err := service.AddDriver(ctx, driver); err != nil {
			return err
		}
	}

	if err := printDriverSummary(ctx, out, service); err != nil {
		return err
	}

	alex := entities.NewRider(1, "Alex", entities.NewLocation(0.0, 0.0), entities.NewLocation(4.0, 3.0))
	if err := requestAndPrint(ctx, out, service, alex); err != nil {
		return err
	}

	// Surge pricing with highest-rated dispatch.
	service.SetPricingStrategy(pricing.NewSurgeFromConfig(cfg.Pricing))
	service.SetDispatchStrategy(dispatch.NewHighestRated())

	sam := entities.NewRider(2, "Sam", entities.NewLocation(10.0, 5.0), entities.NewLocation(2.0, 1.0))
	if err := requestAndPrint(ctx, out, service, sam); err != nil {
		return err
	}

	// Eco pricing for a short hop, back to nearest driver.
	service.SetPricingStrategy(pricing.NewEcoFromConfig(cfg.Pricing))
	service.SetDispatchStrategy(dispatch.NewNearestDriver())

	jamie := entities.NewRider(3, "Jamie", entities.NewLocation(2.5, 2.0), entities.NewLocation(2.0, 2.2))
	if err := requestAndPrint(ctx, out, service, jamie); err != nil {
		return err
	}

	return printDriverSummary(ctx, out, service)
}

// requestAndPrint treats "no driver" as a normal outcome and only returns
// unexpected errors.
func requestAndPrint(ctx context.Context, out io.Writer, service *services.RideService, rider entities.Rider) error {
	trip, err := service.RequestTrip(ctx, rider)
	switch {
	case errors.Is(err, services.ErrNoDriverAvailable), errors.Is(err, services.ErrStrategyNotConfigured):
		fmt.Fprintf(out, "No driver available for %s\n\n", rider.Name)
		return nil
	case err != nil:
		return err
	}

	printTrip(out, trip)
	return nil
}

func printTrip(out io.Writer, trip *entities.Trip) {
	fmt.Fprintf(out, "Trip #%d (%s, %s)\n", trip.ID, trip.PricingModel, trip.DispatchModel)
	fmt.Fprintf(out, "  Rider: %s -> Driver: %s\n", trip.RiderName, trip.DriverName)
	fmt.Fprintf(out, "  Distance: %.2f km, Duration: %.2f min, Fare: $%.2f\n\n",
		trip.DistanceKm, trip.DurationMinutes, trip.Fare)
}

func printDriverSummary(ctx context.Context, out io.Writer, service *services.RideService) error {
	drivers, err := service.Drivers(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Drivers:")
	for _, d := range drivers {
		fmt.Fprintf(out, "  #%d %s | Rating: %.2f | Position: (%.2f, %.2f)\n",
			d.ID, d.Name, d.Rating, d.Position.X, d.Position.Y)
	}
	fmt.Fprintln(out)
	return nil
}
