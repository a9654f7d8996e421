package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridesharing/internal/api/middleware"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository/memory"
	"ridesharing/internal/services"
)

// DriverHandler exposes the driver pool: seeding drivers and inspecting
// their availability and positions.
type DriverHandler struct {
	rideService *services.RideService
}

func NewDriverHandler(rideService *services.RideService) *DriverHandler {
	return &DriverHandler{
		rideService: rideService,
	}
}

// CreateDriverRequest is the JSON body for adding a driver. Rating is not
// range checked, matching the core model.
type CreateDriverRequest struct {
	ID     int     `json:"id" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Rating float64 `json:"rating"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// CreateDriver handles POST /drivers
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver := entities.NewDriver(req.ID, req.Name, req.Rating, entities.NewLocation(req.X, req.Y))
	if err := h.rideService.AddDriver(c.Request.Context(), driver); err != nil {
		switch {
		case errors.Is(err, memory.ErrDriverExists):
			c.JSON(http.StatusConflict, gin.H{"error": "driver already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Printf("[DRIVER] Added driver #%d %s at (%.2f, %.2f) request_id=%s",
		driver.ID, driver.Name, driver.Position.X, driver.Position.Y, middleware.GetRequestID(c))

	c.JSON(http.StatusCreated, driver)
}

// ListDrivers handles GET /drivers
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.rideService.Drivers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"drivers": drivers,
		"count":   len(drivers),
	})
}
