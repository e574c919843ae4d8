package repository

import (
	"context"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves recent trips, newest first.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// Update updates an existing trip.
	Update(ctx context.Context, trip *domain.Trip) error

	// GetActiveByVehicleID retrieves the pending or in-progress trip for a
	// vehicle. Returns nil if no active trip exists.
	GetActiveByVehicleID(ctx context.Context, vehicleID string) (*domain.Trip, error)

	// CountActiveByVehicleID counts pending or in-progress trips for a vehicle.
	CountActiveByVehicleID(ctx context.Context, vehicleID string) (int, error)
}
