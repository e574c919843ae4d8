package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// MaintenanceService keeps Vehicle.status in sync with open and resolved
// maintenance records.
type MaintenanceService struct {
	txr             repository.TxRunner
	maintenanceRepo repository.MaintenanceRepository
	now             func() time.Time
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(txr repository.TxRunner, maintenanceRepo repository.MaintenanceRepository) *MaintenanceService {
	return &MaintenanceService{
		txr:             txr,
		maintenanceRepo: maintenanceRepo,
		now:             time.Now,
	}
}

// OpenMaintenanceRequest contains the parameters for opening a maintenance record.
type OpenMaintenanceRequest struct {
	VehicleID   string
	ServiceType string
	Technician  string
	Cost        float64
	Findings    string
}

// OpenMaintenance creates an open maintenance record and forces the vehicle
// into the shop. The vehicle is pulled in regardless of its current status,
// including on_trip.
func (s *MaintenanceService) OpenMaintenance(ctx context.Context, req OpenMaintenanceRequest) (*domain.Maintenance, error) {
	if req.VehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	record := &domain.Maintenance{
		ID:          uuid.New().String(),
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Technician:  req.Technician,
		Cost:        req.Cost,
		Findings:    req.Findings,
		Status:      domain.MaintenanceStatusOpen,
		Date:        s.now(),
	}

	if errs := record.Validate(); len(errs) > 0 {
		return nil, errs
	}

	err := s.txr.RunInTx(ctx, func(r repository.TxRepos) error {
		if _, err := r.Vehicles.GetByID(ctx, req.VehicleID); err != nil {
			return fmt.Errorf("vehicle %s: %w", req.VehicleID, err)
		}

		if err := r.Maintenance.Create(ctx, record); err != nil {
			return err
		}

		return r.Vehicles.UpdateStatus(ctx, req.VehicleID, domain.VehicleStatusInShop)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ResolveMaintenance transitions a record open -> resolved. Resolving an
// already-resolved record is a no-op. The vehicle is released back to
// available only when no other open record references it.
func (s *MaintenanceService) ResolveMaintenance(ctx context.Context, id string) (*domain.Maintenance, error) {
	if id == "" {
		return nil, ErrInvalidMaintenanceID
	}

	var record *domain.Maintenance
	err := s.txr.RunInTx(ctx, func(r repository.TxRepos) error {
		var err error
		record, err = r.Maintenance.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if record.Status == domain.MaintenanceStatusResolved {
			return nil
		}

		record.Status = domain.MaintenanceStatusResolved
		if err := r.Maintenance.Update(ctx, record); err != nil {
			return err
		}

		return s.releaseVehicleIfClear(ctx, r, record.VehicleID, record.ID)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteMaintenance removes a record. If the record was open, the vehicle is
// released back to available unless another open record still holds it.
func (s *MaintenanceService) DeleteMaintenance(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidMaintenanceID
	}

	return s.txr.RunInTx(ctx, func(r repository.TxRepos) error {
		record, err := r.Maintenance.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := r.Maintenance.Delete(ctx, id); err != nil {
			return err
		}

		return s.releaseVehicleIfClear(ctx, r, record.VehicleID, record.ID)
	})
}

// releaseVehicleIfClear sets the vehicle back to available when no open
// maintenance record other than the given one references it.
func (s *MaintenanceService) releaseVehicleIfClear(ctx context.Context, r repository.TxRepos, vehicleID, excludeID string) error {
	open, err := r.Maintenance.CountOpenByVehicleID(ctx, vehicleID, excludeID)
	if err != nil {
		return err
	}
	if open > 0 {
		return nil
	}

	return r.Vehicles.UpdateStatus(ctx, vehicleID, domain.VehicleStatusAvailable)
}

// GetMaintenance retrieves a maintenance record by ID.
func (s *MaintenanceService) GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error) {
	if id == "" {
		return nil, ErrInvalidMaintenanceID
	}

	return s.maintenanceRepo.GetByID(ctx, id)
}

// GetAllMaintenance retrieves all maintenance records.
func (s *MaintenanceService) GetAllMaintenance(ctx context.Context) ([]*domain.Maintenance, error) {
	return s.maintenanceRepo.GetAll(ctx)
}
