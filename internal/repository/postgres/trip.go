package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

const tripColumns = `id, vehicle_id, driver_id, origin, destination, cargo_weight_kg,
	COALESCE(estimated_fuel_cost, 0), status, created_at`

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (id, vehicle_id, driver_id, origin, destination,
			cargo_weight_kg, estimated_fuel_cost, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.VehicleID,
		trip.DriverID,
		trip.Origin,
		trip.Destination,
		trip.CargoWeightKg,
		trip.EstimatedFuelCost,
		trip.Status,
		trip.CreatedAt,
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return trip, nil
}

// GetAll retrieves recent trips, newest first.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC LIMIT 100`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		var t domain.Trip
		if err := rows.Scan(
			&t.ID, &t.VehicleID, &t.DriverID, &t.Origin, &t.Destination,
			&t.CargoWeightKg, &t.EstimatedFuelCost, &t.Status, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, &t)
	}
	return trips, rows.Err()
}

// Update updates an existing trip.
func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	query := `
		UPDATE trips
		SET vehicle_id = $1, driver_id = $2, origin = $3, destination = $4,
		    cargo_weight_kg = $5, estimated_fuel_cost = $6, status = $7
		WHERE id = $8
	`

	result, err := r.q.ExecContext(ctx, query,
		trip.VehicleID,
		trip.DriverID,
		trip.Origin,
		trip.Destination,
		trip.CargoWeightKg,
		trip.EstimatedFuelCost,
		trip.Status,
		trip.ID,
	)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// GetActiveByVehicleID retrieves the pending or in-progress trip for a vehicle.
// Returns nil if no active trip exists.
func (r *TripRepository) GetActiveByVehicleID(ctx context.Context, vehicleID string) (*domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE vehicle_id = $1 AND status IN ($2, $3)
		LIMIT 1
	`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, vehicleID,
		domain.TripStatusPending, domain.TripStatusInProgress))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return trip, nil
}

// CountActiveByVehicleID counts pending or in-progress trips for a vehicle.
func (r *TripRepository) CountActiveByVehicleID(ctx context.Context, vehicleID string) (int, error) {
	query := `SELECT COUNT(*) FROM trips WHERE vehicle_id = $1 AND status IN ($2, $3)`

	var count int
	err := r.q.QueryRowContext(ctx, query, vehicleID,
		domain.TripStatusPending, domain.TripStatusInProgress).Scan(&count)
	return count, err
}

func scanTrip(row *sql.Row) (*domain.Trip, error) {
	var t domain.Trip
	err := row.Scan(
		&t.ID, &t.VehicleID, &t.DriverID, &t.Origin, &t.Destination,
		&t.CargoWeightKg, &t.EstimatedFuelCost, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
