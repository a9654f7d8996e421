package api

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"ridesharing/internal/api/handlers"
	"ridesharing/internal/api/middleware"
)

type Router struct {
	driverHandler   *handlers.DriverHandler
	strategyHandler *handlers.StrategyHandler
	tripHandler     *handlers.TripHandler
	newRelicApp     *newrelic.Application
}

// NewRouter wires the handlers. newRelicApp may be nil.
func NewRouter(
	driverHandler *handlers.DriverHandler,
	strategyHandler *handlers.StrategyHandler,
	tripHandler *handlers.TripHandler,
	newRelicApp *newrelic.Application,
) *Router {
	return &Router{
		driverHandler:   driverHandler,
		strategyHandler: strategyHandler,
		tripHandler:     tripHandler,
		newRelicApp:     newRelicApp,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.RequestID(), middleware.NewRelic(r.newRelicApp))

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	drivers := engine.Group("/drivers")
	{
		drivers.GET("", r.driverHandler.ListDrivers)
		drivers.POST("", r.driverHandler.CreateDriver)
	}

	strategies := engine.Group("/strategies")
	{
		strategies.GET("", r.strategyHandler.GetStrategies)
		strategies.PUT("/pricing", r.strategyHandler.SetPricing)
		strategies.PUT("/dispatch", r.strategyHandler.SetDispatch)
	}

	engine.POST("/trips", r.tripHandler.RequestTrip)
}
