// Package utils provides small helpers shared by the API layer and the
// simulation program.
//
// Go Learning Note — "pkg/" Directory Convention:
// Code under pkg/ is intended to be importable by external projects (unlike
// internal/ which is compiler-enforced private). This is a community
// convention, not a Go language feature.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID creates a random UUID v4 string. Trip ids are sequential
// integers owned by the ride service; UUIDs are only used to correlate
// requests and log lines.
func GenerateID() string {
	return uuid.New().String()
}

// IsValidID reports whether id parses as a UUID. Incoming X-Request-ID
// headers that fail this check are replaced.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
