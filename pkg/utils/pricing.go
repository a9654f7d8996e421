package utils

import (
	"math"
)

// EstimateDuration converts a straight-line distance into minutes at a fixed
// average speed. Trips at or below minDistanceKm are billed as minHours so a
// zero-length ride never yields a zero-minute trip.
func EstimateDuration(distanceKm, averageSpeedKmh, minDistanceKm, minHours float64) float64 {
	hours := distanceKm / averageSpeedKmh
	if distanceKm <= minDistanceKm {
		hours = minHours
	}
	return hours * 60 // Convert to minutes
}

// RoundCents rounds an amount to two decimal places for display.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
