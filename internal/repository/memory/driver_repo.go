package memory

import (
	"context"
	"errors"
	"sync"

	"ridesharing/internal/domain/entities"
)

var (
	ErrDriverNotFound = errors.New("driver not found")
	ErrDriverExists   = errors.New("driver already exists")
)

// DriverRepository is an in-memory, insertion-ordered driver pool.
//
// Go Learning Note — sync.RWMutex:
// An RWMutex lets any number of readers hold RLock at once, while Lock is
// exclusive. List and GetByID take the read lock; mutations take the write
// lock. The index map gives O(1) lookups by ID without losing the slice order.
type DriverRepository struct {
	mu      sync.RWMutex
	drivers []entities.Driver
	index   map[int]int
}

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		index: make(map[int]int),
	}
}

func (r *DriverRepository) Create(ctx context.Context, driver entities.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[driver.ID]; exists {
		return ErrDriverExists
	}
	r.index[driver.ID] = len(r.drivers)
	r.drivers = append(r.drivers, driver)
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int) (entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[id]
	if !exists {
		return entities.Driver{}, ErrDriverNotFound
	}
	return r.drivers[i], nil
}

// List returns a copy of the pool so callers cannot mutate stored drivers.
func (r *DriverRepository) List(ctx context.Context) ([]entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]entities.Driver, len(r.drivers))
	copy(drivers, r.drivers)
	return drivers, nil
}

func (r *DriverRepository) SetAvailability(ctx context.Context, id int, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[id]
	if !exists {
		return ErrDriverNotFound
	}
	r.drivers[i].SetAvailable(available)
	return nil
}

func (r *DriverRepository) MoveTo(ctx context.Context, id int, position entities.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[id]
	if !exists {
		return ErrDriverNotFound
	}
	r.drivers[i].MoveTo(position)
	return nil
}

// Count returns the number of drivers in the pool.
func (r *DriverRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.drivers)
}
