package repository

import (
	"context"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
type DriverRepository interface {
	// Create adds a new driver.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (*domain.Driver, error)

	// GetByLicenseNumber retrieves a driver by license number.
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Driver, error)

	// GetAll retrieves all drivers.
	GetAll(ctx context.Context) ([]*domain.Driver, error)

	// Update updates an existing driver, including duty status and counters.
	Update(ctx context.Context, driver *domain.Driver) error

	// UpdateDutyStatus updates only the duty status of a driver.
	UpdateDutyStatus(ctx context.Context, id string, status domain.DutyStatus) error

	// Delete removes a driver.
	Delete(ctx context.Context, id string) error
}
