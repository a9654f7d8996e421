package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridesharing/internal/config"
	"ridesharing/internal/dispatch"
	"ridesharing/internal/pricing"
	"ridesharing/internal/services"
)

// StrategyHandler switches the ride service's pricing and dispatch
// strategies. A switch only affects trips requested afterwards.
type StrategyHandler struct {
	rideService         *services.RideService
	notificationService *services.NotificationService
	config              *config.Config
}

func NewStrategyHandler(
	rideService *services.RideService,
	notificationService *services.NotificationService,
	cfg *config.Config,
) *StrategyHandler {
	return &StrategyHandler{
		rideService:         rideService,
		notificationService: notificationService,
		config:              cfg,
	}
}

// SetPricingRequest selects a pricing strategy by key. Multiplier only
// applies to surge; when omitted the configured default is used.
type SetPricingRequest struct {
	Name       string  `json:"name" binding:"required"`
	Multiplier float64 `json:"multiplier" binding:"omitempty,gt=0"`
}

type SetDispatchRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetStrategies handles GET /strategies
func (h *StrategyHandler) GetStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pricing":  strategyName(h.rideService.PricingStrategy()),
		"dispatch": strategyName(h.rideService.DispatchStrategy()),
	})
}

// SetPricing handles PUT /strategies/pricing
func (h *StrategyHandler) SetPricing(c *gin.Context) {
	var req SetPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pricingCfg := h.config.Pricing
	if req.Multiplier > 0 {
		pricingCfg.SurgeMultiplier = req.Multiplier
	}

	strategy, err := pricing.New(req.Name, pricingCfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.rideService.SetPricingStrategy(strategy)
	h.notificationService.NotifyStrategyChanged("pricing", strategy.Name())

	c.JSON(http.StatusOK, gin.H{"pricing": strategy.Name()})
}

// SetDispatch handles PUT /strategies/dispatch
func (h *StrategyHandler) SetDispatch(c *gin.Context) {
	var req SetDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy, err := dispatch.New(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.rideService.SetDispatchStrategy(strategy)
	h.notificationService.NotifyStrategyChanged("dispatch", strategy.Name())

	c.JSON(http.StatusOK, gin.H{"dispatch": strategy.Name()})
}

// strategyName tolerates an unset strategy, which the service allows.
func strategyName(s interface{ Name() string }) string {
	if s == nil {
		return ""
	}
	return s.Name()
}
