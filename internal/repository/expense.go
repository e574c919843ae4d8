package repository

import (
	"context"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
)

// ExpenseFilter narrows expense queries. Empty fields match everything.
type ExpenseFilter struct {
	VehicleID string
	DriverID  string
	Type      domain.ExpenseType
}

// ExpenseRepository defines the persistence operations for expenses.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *domain.Expense) error

	// GetByID retrieves an expense by ID.
	GetByID(ctx context.Context, id string) (*domain.Expense, error)

	// Find retrieves expenses matching the filter, newest first.
	Find(ctx context.Context, filter ExpenseFilter) ([]*domain.Expense, error)

	// SumByVehicleID returns the total expense amount for a vehicle.
	SumByVehicleID(ctx context.Context, vehicleID string) (float64, error)
}
