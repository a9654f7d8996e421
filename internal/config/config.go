// Package config centralizes all application configuration into typed structs.
//
// Go Learning Note — Configuration Management:
// Go projects typically manage configuration in one of these ways:
//  1. Struct literals with defaults (NewDefaultConfig)
//  2. Environment variables via os.Getenv() (Load layers these on top)
//  3. Config files (YAML/TOML) via "github.com/spf13/viper"
//  4. Command-line flags via the standard "flag" package
//
// Using typed structs (not raw strings/maps) gives you compile-time safety
// and IDE autocompletion. This is strongly preferred in Go over untyped config.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the top-level configuration container.
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	Dispatch DispatchConfig
	Trip     TripConfig
	NewRelic NewRelicConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// PricingConfig defines the fare parameters shared by every pricing strategy.
// Standard fare = BaseFare + DistanceKm*PerKmRate + Minutes*PerMinuteRate.
// Surge multiplies the standard fare; Eco discounts it and clamps to EcoMinimumFare.
type PricingConfig struct {
	Strategy        string // standard | surge | eco
	BaseFare        float64
	PerKmRate       float64
	PerMinuteRate   float64
	SurgeMultiplier float64
	EcoDiscount     float64
	EcoMinimumFare  float64
}

// DispatchConfig selects the initial driver selection policy.
type DispatchConfig struct {
	Strategy string // nearest-driver | highest-rated
}

// TripConfig controls the trip duration estimate. Trips at or below
// MinDistanceKm are billed for MinDurationHours.
type TripConfig struct {
	AverageSpeedKmh  float64
	MinDistanceKm    float64
	MinDurationHours float64
}

// NewRelicConfig holds New Relic configuration. The agent stays disabled
// unless Enabled is set and a license key is present.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// NewDefaultConfig returns a Config populated with sensible defaults.
//
// Go Learning Note — Constructor Functions:
// Go has no constructors. By convention, New<Type>() functions serve the same
// purpose. They return a pointer (*Config) so the caller gets a reference to
// shared state instead of copying the struct on every assignment.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Pricing: PricingConfig{
			Strategy:        "standard",
			BaseFare:        2.50,
			PerKmRate:       1.25,
			PerMinuteRate:   0.35,
			SurgeMultiplier: 1.8,
			EcoDiscount:     0.10,
			EcoMinimumFare:  5.00,
		},
		Dispatch: DispatchConfig{
			Strategy: "nearest-driver",
		},
		Trip: TripConfig{
			AverageSpeedKmh:  40.0,
			MinDistanceKm:    0.01,
			MinDurationHours: 0.05,
		},
		NewRelic: NewRelicConfig{
			AppName: "ride-sharing",
		},
	}
}

// Load starts from NewDefaultConfig and applies environment overrides.
func Load() *Config {
	cfg := NewDefaultConfig()

	cfg.Server.Port = getEnv("SERVER_PORT", cfg.Server.Port)
	cfg.Server.ReadTimeout = getDurationEnv("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getDurationEnv("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout)

	cfg.Pricing.Strategy = getEnv("PRICING_STRATEGY", cfg.Pricing.Strategy)
	cfg.Pricing.SurgeMultiplier = getFloatEnv("SURGE_MULTIPLIER", cfg.Pricing.SurgeMultiplier)
	cfg.Dispatch.Strategy = getEnv("DISPATCH_STRATEGY", cfg.Dispatch.Strategy)
	cfg.Trip.AverageSpeedKmh = getFloatEnv("TRIP_AVERAGE_SPEED_KMH", cfg.Trip.AverageSpeedKmh)

	cfg.NewRelic.AppName = getEnv("NEW_RELIC_APP_NAME", cfg.NewRelic.AppName)
	cfg.NewRelic.LicenseKey = getEnv("NEW_RELIC_LICENSE_KEY", cfg.NewRelic.LicenseKey)
	cfg.NewRelic.Enabled = getBoolEnv("NEW_RELIC_ENABLED", cfg.NewRelic.Enabled)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
