package repository

import (
	"context"

	"ridesharing/internal/domain/entities"
)

// DriverRepository stores the driver pool in insertion order. Drivers are
// addressed by ID, which stays a stable handle while the pool grows.
type DriverRepository interface {
	Create(ctx context.Context, driver entities.Driver) error
	GetByID(ctx context.Context, id int) (entities.Driver, error)
	List(ctx context.Context) ([]entities.Driver, error)
	SetAvailability(ctx context.Context, id int, available bool) error
	MoveTo(ctx context.Context, id int, position entities.Location) error
}
