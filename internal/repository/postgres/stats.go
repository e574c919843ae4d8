package postgres

import (
	"context"
	"database/sql"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// StatsRepository is a PostgreSQL implementation of repository.StatsRepository.
type StatsRepository struct {
	q Querier
}

// NewStatsRepository creates a new PostgreSQL stats repository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{q: db}
}

// Overview returns the fleet-wide counts and expense total in one round trip.
func (r *StatsRepository) Overview(ctx context.Context) (*repository.FleetOverview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM vehicles),
			(SELECT COUNT(*) FROM vehicles WHERE status = $1),
			(SELECT COUNT(*) FROM vehicles WHERE status = $2),
			(SELECT COUNT(*) FROM vehicles WHERE status = $3),
			(SELECT COUNT(*) FROM drivers),
			(SELECT COUNT(*) FROM drivers WHERE duty_status = $4),
			(SELECT COUNT(*) FROM drivers WHERE duty_status = $5),
			(SELECT COUNT(*) FROM trips WHERE status = $6),
			(SELECT COUNT(*) FROM trips WHERE status = $7),
			(SELECT COALESCE(SUM(amount), 0) FROM expenses)
	`

	var o repository.FleetOverview
	err := r.q.QueryRowContext(ctx, query,
		domain.VehicleStatusOnTrip,
		domain.VehicleStatusInShop,
		domain.VehicleStatusAvailable,
		domain.DutyStatusOnDuty,
		domain.DutyStatusSuspended,
		domain.TripStatusPending,
		domain.TripStatusCompleted,
	).Scan(
		&o.TotalVehicles,
		&o.OnTripVehicles,
		&o.InShopVehicles,
		&o.AvailableVehicles,
		&o.TotalDrivers,
		&o.OnDutyDrivers,
		&o.SuspendedDrivers,
		&o.PendingTrips,
		&o.CompletedTrips,
		&o.TotalExpenses,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FuelEfficiency returns fuel spend and volume grouped by vehicle.
func (r *StatsRepository) FuelEfficiency(ctx context.Context) ([]repository.FuelEfficiencyRow, error) {
	query := `
		SELECT e.vehicle_id, COALESCE(v.name, 'Unknown'),
		       COALESCE(SUM(e.liters), 0), COALESCE(SUM(e.amount), 0)
		FROM expenses e
		LEFT JOIN vehicles v ON v.id = e.vehicle_id
		WHERE e.type = $1
		GROUP BY e.vehicle_id, v.name
		ORDER BY v.name
	`

	rows, err := r.q.QueryContext(ctx, query, domain.ExpenseTypeFuel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.FuelEfficiencyRow
	for rows.Next() {
		var row repository.FuelEfficiencyRow
		if err := rows.Scan(&row.VehicleID, &row.VehicleName, &row.TotalLiters, &row.TotalCost); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// MonthlySummary returns expenses grouped by month and type.
func (r *StatsRepository) MonthlySummary(ctx context.Context) ([]repository.MonthlyExpenseRow, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int AS month,
		       COALESCE(SUM(amount) FILTER (WHERE type = $1), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = $2), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = $3), 0),
		       COALESCE(SUM(amount), 0)
		FROM expenses
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.q.QueryContext(ctx, query,
		domain.ExpenseTypeFuel, domain.ExpenseTypeRepair, domain.ExpenseTypeOther)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.MonthlyExpenseRow
	for rows.Next() {
		var row repository.MonthlyExpenseRow
		if err := rows.Scan(&row.Month, &row.Fuel, &row.Repair, &row.Other, &row.Total); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// VehicleCosts returns total expense spend grouped by vehicle.
func (r *StatsRepository) VehicleCosts(ctx context.Context) ([]repository.VehicleCostRow, error) {
	query := `
		SELECT vehicle_id, COALESCE(SUM(amount), 0)
		FROM expenses
		GROUP BY vehicle_id
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.VehicleCostRow
	for rows.Next() {
		var row repository.VehicleCostRow
		if err := rows.Scan(&row.VehicleID, &row.TotalCost); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Ensure StatsRepository implements repository.StatsRepository.
var _ repository.StatsRepository = (*StatsRepository)(nil)
