package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridesharing/internal/api/middleware"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/services"
	"ridesharing/pkg/utils"
)

type TripHandler struct {
	rideService         *services.RideService
	notificationService *services.NotificationService
}

func NewTripHandler(rideService *services.RideService, notificationService *services.NotificationService) *TripHandler {
	return &TripHandler{
		rideService:         rideService,
		notificationService: notificationService,
	}
}

type LocationRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RequestTripRequest describes the rider. Riders are not stored, so the
// full rider travels with every request.
type RequestTripRequest struct {
	RiderID int             `json:"rider_id" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Pickup  LocationRequest `json:"pickup"`
	Dropoff LocationRequest `json:"dropoff"`
}

// RequestTrip handles POST /trips
//
// Go Learning Note — errors.Is:
// errors.Is walks the wrap chain (fmt.Errorf("...: %w", err)) looking for the
// target sentinel, so the switch keeps working if the service later wraps its
// errors with extra context. A plain `err == services.ErrX` would not.
func (h *TripHandler) RequestTrip(c *gin.Context) {
	var req RequestTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rider := entities.NewRider(
		req.RiderID,
		req.Name,
		entities.NewLocation(req.Pickup.X, req.Pickup.Y),
		entities.NewLocation(req.Dropoff.X, req.Dropoff.Y),
	)
	requestID := middleware.GetRequestID(c)

	trip, err := h.rideService.RequestTrip(c.Request.Context(), rider)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoDriverAvailable):
			h.notificationService.NotifyNoDriverAvailable(rider)
			c.JSON(http.StatusConflict, gin.H{"error": "no driver available"})
		case errors.Is(err, services.ErrStrategyNotConfigured):
			log.Printf("[TRIP] Service misconfigured: %v request_id=%s", err, requestID)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Printf("[TRIP] Trip #%d issued: rider %s -> driver %s request_id=%s",
		trip.ID, trip.RiderName, trip.DriverName, requestID)
	h.notificationService.NotifyTripIssued(trip)

	c.JSON(http.StatusCreated, roundTrip(*trip))
}

// roundTrip rounds money and measurements to cents for display. The service
// keeps full precision.
func roundTrip(trip entities.Trip) entities.Trip {
	trip.DistanceKm = utils.RoundCents(trip.DistanceKm)
	trip.DurationMinutes = utils.RoundCents(trip.DurationMinutes)
	trip.Fare = utils.RoundCents(trip.Fare)
	return trip
}
