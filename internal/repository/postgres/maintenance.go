package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// MaintenanceRepository is a PostgreSQL implementation of repository.MaintenanceRepository.
type MaintenanceRepository struct {
	q Querier
}

// NewMaintenanceRepository creates a new PostgreSQL maintenance repository.
func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{q: db}
}

// NewMaintenanceRepositoryWithTx creates a maintenance repository using a transaction.
func NewMaintenanceRepositoryWithTx(tx *sql.Tx) *MaintenanceRepository {
	return &MaintenanceRepository{q: tx}
}

const maintenanceColumns = `id, vehicle_id, service_type, COALESCE(technician, ''),
	cost, COALESCE(findings, ''), status, date`

// Create persists a new maintenance record.
func (r *MaintenanceRepository) Create(ctx context.Context, record *domain.Maintenance) error {
	query := `
		INSERT INTO maintenance (id, vehicle_id, service_type, technician, cost, findings, status, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		record.ID,
		record.VehicleID,
		record.ServiceType,
		record.Technician,
		record.Cost,
		record.Findings,
		record.Status,
		record.Date,
	)

	return err
}

// GetByID retrieves a maintenance record by ID.
func (r *MaintenanceRepository) GetByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance WHERE id = $1`

	var m domain.Maintenance
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.VehicleID, &m.ServiceType, &m.Technician,
		&m.Cost, &m.Findings, &m.Status, &m.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetAll retrieves all maintenance records, newest first.
func (r *MaintenanceRepository) GetAll(ctx context.Context) ([]*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance ORDER BY date DESC`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		if err := rows.Scan(
			&m.ID, &m.VehicleID, &m.ServiceType, &m.Technician,
			&m.Cost, &m.Findings, &m.Status, &m.Date,
		); err != nil {
			return nil, err
		}
		records = append(records, &m)
	}
	return records, rows.Err()
}

// Update updates an existing maintenance record.
func (r *MaintenanceRepository) Update(ctx context.Context, record *domain.Maintenance) error {
	query := `
		UPDATE maintenance
		SET vehicle_id = $1, service_type = $2, technician = $3, cost = $4,
		    findings = $5, status = $6, date = $7
		WHERE id = $8
	`

	result, err := r.q.ExecContext(ctx, query,
		record.VehicleID,
		record.ServiceType,
		record.Technician,
		record.Cost,
		record.Findings,
		record.Status,
		record.Date,
		record.ID,
	)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// Delete removes a maintenance record.
func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM maintenance WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// CountOpenByVehicleID counts open maintenance records for a vehicle,
// excluding the record with excludeID.
func (r *MaintenanceRepository) CountOpenByVehicleID(ctx context.Context, vehicleID, excludeID string) (int, error) {
	query := `SELECT COUNT(*) FROM maintenance WHERE vehicle_id = $1 AND status = $2 AND id != $3`

	var count int
	err := r.q.QueryRowContext(ctx, query, vehicleID, domain.MaintenanceStatusOpen, excludeID).Scan(&count)
	return count, err
}

// Ensure MaintenanceRepository implements repository.MaintenanceRepository.
var _ repository.MaintenanceRepository = (*MaintenanceRepository)(nil)
