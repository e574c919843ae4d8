package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// ExpenseRepository is a PostgreSQL implementation of repository.ExpenseRepository.
type ExpenseRepository struct {
	q Querier
}

// NewExpenseRepository creates a new PostgreSQL expense repository.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{q: db}
}

const expenseColumns = `id, vehicle_id, COALESCE(driver_id, ''), COALESCE(trip_id, ''),
	type, COALESCE(liters, 0), amount, date, COALESCE(notes, ''), created_at`

// Create persists a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (id, vehicle_id, driver_id, trip_id, type, liters, amount, date, notes, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		expense.ID,
		expense.VehicleID,
		expense.DriverID,
		expense.TripID,
		expense.Type,
		expense.Liters,
		expense.Amount,
		expense.Date,
		expense.Notes,
		expense.CreatedAt,
	)

	return err
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	var e domain.Expense
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.VehicleID, &e.DriverID, &e.TripID, &e.Type,
		&e.Liters, &e.Amount, &e.Date, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Find retrieves expenses matching the filter, newest first.
func (r *ExpenseRepository) Find(ctx context.Context, filter repository.ExpenseFilter) ([]*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	var clauses []string
	var args []any

	if filter.VehicleID != "" {
		args = append(args, filter.VehicleID)
		clauses = append(clauses, fmt.Sprintf("vehicle_id = $%d", len(args)))
	}
	if filter.DriverID != "" {
		args = append(args, filter.DriverID)
		clauses = append(clauses, fmt.Sprintf("driver_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}

	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY date DESC"

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(
			&e.ID, &e.VehicleID, &e.DriverID, &e.TripID, &e.Type,
			&e.Liters, &e.Amount, &e.Date, &e.Notes, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

// SumByVehicleID returns the total expense amount for a vehicle.
func (r *ExpenseRepository) SumByVehicleID(ctx context.Context, vehicleID string) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE vehicle_id = $1`

	var total float64
	err := r.q.QueryRowContext(ctx, query, vehicleID).Scan(&total)
	return total, err
}

// Ensure ExpenseRepository implements repository.ExpenseRepository.
var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
