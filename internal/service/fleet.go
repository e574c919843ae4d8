package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// FleetService handles vehicle registration and fleet CRUD.
type FleetService struct {
	vehicleRepo     repository.VehicleRepository
	tripRepo        repository.TripRepository
	maintenanceRepo repository.MaintenanceRepository
}

// NewFleetService creates a new FleetService.
func NewFleetService(
	vehicleRepo repository.VehicleRepository,
	tripRepo repository.TripRepository,
	maintenanceRepo repository.MaintenanceRepository,
) *FleetService {
	return &FleetService{
		vehicleRepo:     vehicleRepo,
		tripRepo:        tripRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// RegisterVehicle validates and persists a new vehicle. New vehicles start
// available unless an explicit status is given.
func (s *FleetService) RegisterVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}

	if errs := vehicle.Validate(); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.vehicleRepo.GetByPlate(ctx, vehicle.Plate)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPlateExists
	}

	vehicle.ID = uuid.New().String()
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID.
func (s *FleetService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	if id == "" {
		return nil, ErrInvalidVehicleID
	}

	return s.vehicleRepo.GetByID(ctx, id)
}

// GetAllVehicles retrieves all vehicles, optionally filtered by status.
func (s *FleetService) GetAllVehicles(ctx context.Context, status domain.VehicleStatus) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.GetAll(ctx, status)
}

// UpdateVehicle validates and updates an existing vehicle.
func (s *FleetService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if vehicle.ID == "" {
		return nil, ErrInvalidVehicleID
	}

	if errs := vehicle.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// DeleteVehicle removes a vehicle. Vehicles still referenced by an active
// trip or an open maintenance record cannot be deleted.
func (s *FleetService) DeleteVehicle(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidVehicleID
	}

	activeTrips, err := s.tripRepo.CountActiveByVehicleID(ctx, id)
	if err != nil {
		return err
	}
	if activeTrips > 0 {
		return ErrVehicleInUse
	}

	openMaintenance, err := s.maintenanceRepo.CountOpenByVehicleID(ctx, id, "")
	if err != nil {
		return err
	}
	if openMaintenance > 0 {
		return ErrVehicleInUse
	}

	return s.vehicleRepo.Delete(ctx, id)
}
