package services

import (
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"

	"ridesharing/internal/domain/entities"
)

// NotificationService reports trip outcomes. It writes a log line for each
// event and, when a New Relic application is configured, records a custom
// event so trips can be charted without touching the ride service.
type NotificationService struct {
	app *newrelic.Application
}

// NewNotificationService accepts a nil app, in which case only logging happens.
func NewNotificationService(app *newrelic.Application) *NotificationService {
	return &NotificationService{app: app}
}

// NotifyTripIssued tells the rider which driver took the trip and what it costs.
func (s *NotificationService) NotifyTripIssued(trip *entities.Trip) {
	log.Printf("[NOTIFICATION] Rider %s: Driver %s assigned to trip #%d (%s, %s). Distance: %.2f km, fare: $%.2f",
		trip.RiderName,
		trip.DriverName,
		trip.ID,
		trip.PricingModel,
		trip.DispatchModel,
		trip.DistanceKm,
		trip.Fare,
	)

	s.record("TripIssued", map[string]interface{}{
		"tripId":          trip.ID,
		"riderId":         trip.RiderID,
		"driverId":        trip.DriverID,
		"distanceKm":      trip.DistanceKm,
		"durationMinutes": trip.DurationMinutes,
		"fare":            trip.Fare,
		"pricingModel":    trip.PricingModel,
		"dispatchModel":   trip.DispatchModel,
	})
}

// NotifyNoDriverAvailable tells the rider nobody could take the trip.
func (s *NotificationService) NotifyNoDriverAvailable(rider entities.Rider) {
	log.Printf("[NOTIFICATION] Rider %s: No driver available. Please try again later.", rider.Name)

	s.record("NoDriverAvailable", map[string]interface{}{
		"riderId": rider.ID,
		"pickupX": rider.Pickup.X,
		"pickupY": rider.Pickup.Y,
	})
}

// NotifyStrategyChanged records a pricing or dispatch switch.
func (s *NotificationService) NotifyStrategyChanged(kind, name string) {
	log.Printf("[NOTIFICATION] %s strategy switched to %s", kind, name)

	s.record("StrategyChanged", map[string]interface{}{
		"kind": kind,
		"name": name,
	})
}

func (s *NotificationService) record(eventType string, params map[string]interface{}) {
	if s.app == nil {
		return
	}
	s.app.RecordCustomEvent(eventType, params)
}
