package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"ridesharing/internal/api"
	"ridesharing/internal/api/handlers"
	"ridesharing/internal/config"
	"ridesharing/internal/dispatch"
	"ridesharing/internal/pricing"
	"ridesharing/internal/repository/memory"
	"ridesharing/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// New Relic is optional; a nil app disables the middleware and custom events.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Printf("[SERVER] Failed to initialize New Relic: %v", err)
		} else {
			nrApp = app
			log.Printf("[SERVER] New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initial strategies come from config and can be swapped over the API.
	pricingStrategy, err := pricing.New(cfg.Pricing.Strategy, cfg.Pricing)
	if err != nil {
		log.Fatalf("[SERVER] Invalid pricing strategy %q: %v", cfg.Pricing.Strategy, err)
	}
	dispatchStrategy, err := dispatch.New(cfg.Dispatch.Strategy)
	if err != nil {
		log.Fatalf("[SERVER] Invalid dispatch strategy %q: %v", cfg.Dispatch.Strategy, err)
	}

	// Initialize repositories and services
	driverRepo := memory.NewDriverRepository()
	notificationService := services.NewNotificationService(nrApp)
	rideService := services.NewRideService(driverRepo, pricingStrategy, dispatchStrategy, cfg)

	// Initialize handlers
	driverHandler := handlers.NewDriverHandler(rideService)
	strategyHandler := handlers.NewStrategyHandler(rideService, notificationService, cfg)
	tripHandler := handlers.NewTripHandler(rideService, notificationService)

	// Setup router
	router := api.NewRouter(driverHandler, strategyHandler, tripHandler, nrApp)
	engine := gin.Default()
	router.Setup(engine)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("[SERVER] Starting ride-sharing server on %s (pricing=%s, dispatch=%s)",
			cfg.Server.Port, pricingStrategy.Name(), dispatchStrategy.Name())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[SERVER] Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[SERVER] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("[SERVER] Server forced to shutdown: %v", err)
	}
	if nrApp != nil {
		nrApp.Shutdown(cfg.Server.ShutdownTimeout)
	}

	log.Println("[SERVER] Server exited")
}
