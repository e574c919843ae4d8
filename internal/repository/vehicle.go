package repository

import (
	"context"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
)

// VehicleRepository defines the persistence operations for vehicles.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)

	// GetByPlate retrieves a vehicle by its license plate.
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)

	// GetAll retrieves all vehicles, optionally filtered by status.
	// An empty status returns every vehicle.
	GetAll(ctx context.Context, status domain.VehicleStatus) ([]*domain.Vehicle, error)

	// Update updates an existing vehicle.
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// UpdateStatus updates only the status of a vehicle.
	UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus) error

	// Delete removes a vehicle.
	Delete(ctx context.Context, id string) error
}
