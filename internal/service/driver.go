package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// DriverService handles driver registration and CRUD.
type DriverService struct {
	driverRepo repository.DriverRepository
}

// NewDriverService creates a new DriverService.
func NewDriverService(driverRepo repository.DriverRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

// RegisterDriver validates and persists a new driver. New drivers start
// on_duty with a full safety score.
func (s *DriverService) RegisterDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	if driver.DutyStatus == "" {
		driver.DutyStatus = domain.DutyStatusOnDuty
	}
	if driver.SafetyScore == 0 {
		driver.SafetyScore = domain.DefaultSafetyScore
	}

	if errs := driver.Validate(); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.driverRepo.GetByLicenseNumber(ctx, driver.LicenseNumber)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLicenseNumberExists
	}

	driver.ID = uuid.New().String()
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// GetDriver retrieves a driver by ID.
func (s *DriverService) GetDriver(ctx context.Context, id string) (*domain.Driver, error) {
	if id == "" {
		return nil, ErrInvalidDriverID
	}

	return s.driverRepo.GetByID(ctx, id)
}

// GetAllDrivers retrieves all drivers.
func (s *DriverService) GetAllDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return s.driverRepo.GetAll(ctx)
}

// UpdateDriver validates and updates an existing driver.
func (s *DriverService) UpdateDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	if driver.ID == "" {
		return nil, ErrInvalidDriverID
	}

	if errs := driver.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

// DeleteDriver removes a driver.
func (s *DriverService) DeleteDriver(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDriverID
	}

	return s.driverRepo.Delete(ctx, id)
}
