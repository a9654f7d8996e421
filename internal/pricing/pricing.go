// Package pricing implements the fare policies a ride service can switch
// between at runtime. Every policy is a pure function of trip distance and
// duration plus its own fixed parameters.
package pricing

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"ridesharing/internal/config"
)

var ErrUnknownStrategy = errors.New("unknown pricing strategy")

const (
	StrategyStandard = "standard"
	StrategySurge    = "surge"
	StrategyEco      = "eco"
)

// Strategy computes a fare from a trip's distance (km) and duration
// (minutes). Inputs are trusted to be non-negative.
//
// Go Learning Note — Implicit Interfaces:
// Standard, Surge and Eco never declare that they implement Strategy. Any type
// with matching CalculateFare and Name methods satisfies the interface, so new
// policies can live in other packages without touching this one.
type Strategy interface {
	CalculateFare(distanceKm, minutes float64) float64
	Name() string
}

// Standard is the flat formula: base + per-km + per-minute.
type Standard struct {
	BaseFare      float64
	PerKmRate     float64
	PerMinuteRate float64
}

func NewStandard() *Standard {
	return NewStandardFromConfig(config.NewDefaultConfig().Pricing)
}

func NewStandardFromConfig(cfg config.PricingConfig) *Standard {
	return &Standard{
		BaseFare:      cfg.BaseFare,
		PerKmRate:     cfg.PerKmRate,
		PerMinuteRate: cfg.PerMinuteRate,
	}
}

func (s *Standard) CalculateFare(distanceKm, minutes float64) float64 {
	return s.BaseFare + distanceKm*s.PerKmRate + minutes*s.PerMinuteRate
}

func (s *Standard) Name() string {
	return "Standard"
}

// Surge scales the standard fare by Multiplier. The multiplier is not
// validated; callers at the API boundary reject non-positive values.
type Surge struct {
	standard   *Standard
	Multiplier float64
}

func NewSurge(multiplier float64) *Surge {
	return &Surge{standard: NewStandard(), Multiplier: multiplier}
}

func NewSurgeFromConfig(cfg config.PricingConfig) *Surge {
	return &Surge{standard: NewStandardFromConfig(cfg), Multiplier: cfg.SurgeMultiplier}
}

func (s *Surge) CalculateFare(distanceKm, minutes float64) float64 {
	return s.standard.CalculateFare(distanceKm, minutes) * s.Multiplier
}

func (s *Surge) Name() string {
	return "Surge x" + strconv.FormatFloat(s.Multiplier, 'f', -1, 64)
}

// Eco discounts the standard fare and never charges less than MinimumFare.
type Eco struct {
	standard    *Standard
	Discount    float64
	MinimumFare float64
}

func NewEco() *Eco {
	return NewEcoFromConfig(config.NewDefaultConfig().Pricing)
}

func NewEcoFromConfig(cfg config.PricingConfig) *Eco {
	return &Eco{
		standard:    NewStandardFromConfig(cfg),
		Discount:    cfg.EcoDiscount,
		MinimumFare: cfg.EcoMinimumFare,
	}
}

func (e *Eco) CalculateFare(distanceKm, minutes float64) float64 {
	fare := e.standard.CalculateFare(distanceKm, minutes) * (1.0 - e.Discount)
	return math.Max(e.MinimumFare, fare)
}

func (e *Eco) Name() string {
	return "Eco (10% off)"
}

// New resolves a strategy key (standard, surge, eco) against the pricing
// config. Surge takes its multiplier from cfg.SurgeMultiplier.
func New(name string, cfg config.PricingConfig) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyStandard:
		return NewStandardFromConfig(cfg), nil
	case StrategySurge:
		return NewSurgeFromConfig(cfg), nil
	case StrategyEco:
		return NewEcoFromConfig(cfg), nil
	default:
		return nil, ErrUnknownStrategy
	}
}
