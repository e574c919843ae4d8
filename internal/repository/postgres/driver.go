package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// DriverRepository is a PostgreSQL implementation of repository.DriverRepository.
type DriverRepository struct {
	q Querier
}

// NewDriverRepository creates a new PostgreSQL driver repository.
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{q: db}
}

// NewDriverRepositoryWithTx creates a driver repository using a transaction.
func NewDriverRepositoryWithTx(tx *sql.Tx) *DriverRepository {
	return &DriverRepository{q: tx}
}

const driverColumns = `id, COALESCE(name, ''), license_number, license_expiry, duty_status,
	safety_score, performance_score, complaints_count, trips_completed, trips_cancelled`

// Create adds a new driver.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	query := `
		INSERT INTO drivers (id, name, license_number, license_expiry, duty_status,
			safety_score, performance_score, complaints_count, trips_completed, trips_cancelled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		driver.ID,
		driver.Name,
		driver.LicenseNumber,
		driver.LicenseExpiry,
		driver.DutyStatus,
		driver.SafetyScore,
		driver.PerformanceScore,
		driver.ComplaintsCount,
		driver.TripsCompleted,
		driver.TripsCancelled,
	)

	return err
}

// GetByID retrieves a driver by ID.
func (r *DriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// GetByLicenseNumber retrieves a driver by license number.
func (r *DriverRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE license_number = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, licenseNumber))
}

// GetAll retrieves all drivers.
func (r *DriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []*domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(
			&d.ID, &d.Name, &d.LicenseNumber, &d.LicenseExpiry, &d.DutyStatus,
			&d.SafetyScore, &d.PerformanceScore, &d.ComplaintsCount,
			&d.TripsCompleted, &d.TripsCancelled,
		); err != nil {
			return nil, err
		}
		drivers = append(drivers, &d)
	}
	return drivers, rows.Err()
}

// Update updates an existing driver, including duty status and counters.
func (r *DriverRepository) Update(ctx context.Context, driver *domain.Driver) error {
	query := `
		UPDATE drivers
		SET name = $1, license_number = $2, license_expiry = $3, duty_status = $4,
		    safety_score = $5, performance_score = $6, complaints_count = $7,
		    trips_completed = $8, trips_cancelled = $9
		WHERE id = $10
	`

	result, err := r.q.ExecContext(ctx, query,
		driver.Name,
		driver.LicenseNumber,
		driver.LicenseExpiry,
		driver.DutyStatus,
		driver.SafetyScore,
		driver.PerformanceScore,
		driver.ComplaintsCount,
		driver.TripsCompleted,
		driver.TripsCancelled,
		driver.ID,
	)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// UpdateDutyStatus updates only the duty status of a driver.
func (r *DriverRepository) UpdateDutyStatus(ctx context.Context, id string, status domain.DutyStatus) error {
	query := `UPDATE drivers SET duty_status = $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// Delete removes a driver.
func (r *DriverRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

func (r *DriverRepository) scanOne(row *sql.Row) (*domain.Driver, error) {
	var d domain.Driver
	err := row.Scan(
		&d.ID, &d.Name, &d.LicenseNumber, &d.LicenseExpiry, &d.DutyStatus,
		&d.SafetyScore, &d.PerformanceScore, &d.ComplaintsCount,
		&d.TripsCompleted, &d.TripsCancelled,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Ensure DriverRepository implements repository.DriverRepository.
var _ repository.DriverRepository = (*DriverRepository)(nil)
