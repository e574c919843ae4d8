package repository

import (
	"context"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
)

// MaintenanceRepository defines the persistence operations for maintenance records.
type MaintenanceRepository interface {
	// Create persists a new maintenance record.
	Create(ctx context.Context, record *domain.Maintenance) error

	// GetByID retrieves a maintenance record by ID.
	GetByID(ctx context.Context, id string) (*domain.Maintenance, error)

	// GetAll retrieves all maintenance records, newest first.
	GetAll(ctx context.Context) ([]*domain.Maintenance, error)

	// Update updates an existing maintenance record.
	Update(ctx context.Context, record *domain.Maintenance) error

	// Delete removes a maintenance record.
	Delete(ctx context.Context, id string) error

	// CountOpenByVehicleID counts open maintenance records for a vehicle,
	// excluding the record with excludeID (pass "" to exclude none).
	CountOpenByVehicleID(ctx context.Context, vehicleID, excludeID string) (int, error)
}
