package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/redis"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// dispatchLockTTL bounds how long a dispatch can hold the vehicle and driver
// locks if the process dies mid-request.
const dispatchLockTTL = 10 * time.Second

// DispatchService is the trip dispatch engine. It validates a proposed trip
// against current vehicle and driver state and keeps Vehicle.status and
// Driver.duty_status in sync with every trip status transition. All writes
// for one transition happen in a single transaction.
type DispatchService struct {
	txr      repository.TxRunner
	tripRepo repository.TripRepository
	locks    redis.LockStoreInterface
	now      func() time.Time
}

// NewDispatchService creates a new DispatchService. locks may be nil, in
// which case only the transaction guards concurrent dispatches.
func NewDispatchService(
	txr repository.TxRunner,
	tripRepo repository.TripRepository,
	locks redis.LockStoreInterface,
) *DispatchService {
	return &DispatchService{
		txr:      txr,
		tripRepo: tripRepo,
		locks:    locks,
		now:      time.Now,
	}
}

// tripTransition is one edge of the trip state machine.
type tripTransition struct {
	From domain.TripStatus
	To   domain.TripStatus
}

// transitionEffect applies the vehicle and driver side effects of one edge.
type transitionEffect func(v *domain.Vehicle, d *domain.Driver)

// transitionEffects is the authoritative transition table: an edge is legal
// iff it has an entry here. Same-status transitions never reach the table;
// they are handled as idempotent no-ops. Completion directly from pending is
// allowed: short hauls get closed out without ever being marked in_progress.
var transitionEffects = map[tripTransition]transitionEffect{
	{domain.TripStatusPending, domain.TripStatusInProgress}:   engageEffect,
	{domain.TripStatusPending, domain.TripStatusCompleted}:    completeEffect,
	{domain.TripStatusInProgress, domain.TripStatusCompleted}: completeEffect,
	{domain.TripStatusPending, domain.TripStatusCancelled}:    cancelEffect,
	{domain.TripStatusInProgress, domain.TripStatusCancelled}: cancelEffect,
}

// engageEffect marks the vehicle and driver as actively on the trip.
func engageEffect(v *domain.Vehicle, d *domain.Driver) {
	v.Status = domain.VehicleStatusOnTrip
	d.DutyStatus = domain.DutyStatusOnDuty
}

// completeEffect releases the vehicle and credits the driver. Drivers have
// no "available" state; they go back to on_duty.
func completeEffect(v *domain.Vehicle, d *domain.Driver) {
	v.Status = domain.VehicleStatusAvailable
	d.DutyStatus = domain.DutyStatusOnDuty
	d.RecordCompletion()
}

// cancelEffect releases the vehicle and applies the cancellation penalties.
func cancelEffect(v *domain.Vehicle, d *domain.Driver) {
	v.Status = domain.VehicleStatusAvailable
	d.DutyStatus = domain.DutyStatusOnDuty
	d.RecordCancellation()
}

// CreateTripRequest contains the parameters for dispatching a trip.
type CreateTripRequest struct {
	VehicleID         string
	DriverID          string
	Origin            string
	Destination       string
	CargoWeightKg     float64
	EstimatedFuelCost float64
	InitialStatus     domain.TripStatus // Defaults to pending.
}

// CreateTrip validates the dispatch preconditions in order (first failure
// wins) and creates the trip. If the initial status is in_progress or
// completed, the vehicle and driver are engaged in the same transaction.
func (s *DispatchService) CreateTrip(ctx context.Context, req CreateTripRequest) (*domain.Trip, error) {
	if req.VehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	if req.DriverID == "" {
		return nil, ErrInvalidDriverID
	}

	initialStatus := req.InitialStatus
	if initialStatus == "" {
		initialStatus = domain.TripStatusPending
	}
	if !domain.ValidTripStatus(initialStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTripStatus, initialStatus)
	}

	// Serialize dispatches per vehicle and per driver so a concurrent
	// request cannot pass the availability check while this one is between
	// check and write.
	release, err := s.acquireDispatchLocks(ctx, req.VehicleID, req.DriverID)
	if err != nil {
		return nil, err
	}
	defer release()

	var trip *domain.Trip
	err = s.txr.RunInTx(ctx, func(r repository.TxRepos) error {
		vehicle, err := r.Vehicles.GetByID(ctx, req.VehicleID)
		if err != nil {
			return fmt.Errorf("vehicle %s: %w", req.VehicleID, err)
		}

		driver, err := r.Drivers.GetByID(ctx, req.DriverID)
		if err != nil {
			return fmt.Errorf("driver %s: %w", req.DriverID, err)
		}

		if !vehicle.Dispatchable() {
			return fmt.Errorf("%w: vehicle is %s", ErrVehicleUnavailable, vehicle.Status)
		}

		if driver.DutyStatus == domain.DutyStatusSuspended {
			return ErrDriverSuspended
		}

		if !driver.LicenseValidAt(s.now()) {
			return ErrLicenseExpired
		}

		if req.CargoWeightKg <= 0 {
			return ErrInvalidCargoWeight
		}
		if req.CargoWeightKg > vehicle.CapacityKg {
			return fmt.Errorf("%w: %.0fkg > %.0fkg", ErrCapacityExceeded, req.CargoWeightKg, vehicle.CapacityKg)
		}

		trip = &domain.Trip{
			ID:                uuid.New().String(),
			VehicleID:         req.VehicleID,
			DriverID:          req.DriverID,
			Origin:            req.Origin,
			Destination:       req.Destination,
			CargoWeightKg:     req.CargoWeightKg,
			EstimatedFuelCost: req.EstimatedFuelCost,
			Status:            initialStatus,
			CreatedAt:         s.now(),
		}

		if err := r.Trips.Create(ctx, trip); err != nil {
			return err
		}

		// A trip dispatched directly into in_progress (or completed)
		// engages the vehicle and driver immediately.
		if initialStatus == domain.TripStatusInProgress || initialStatus == domain.TripStatusCompleted {
			engageEffect(vehicle, driver)

			if err := r.Vehicles.UpdateStatus(ctx, vehicle.ID, vehicle.Status); err != nil {
				return err
			}
			if err := r.Drivers.Update(ctx, driver); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// SetTripStatus applies a trip status transition and its vehicle and driver
// side effects atomically. Transitioning to the status the trip already
// holds is an idempotent no-op. Illegal transitions, including any edge out
// of a terminal state, are rejected.
func (s *DispatchService) SetTripStatus(ctx context.Context, tripID string, newStatus domain.TripStatus) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}
	if !domain.ValidTripStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTripStatus, newStatus)
	}

	var trip *domain.Trip
	err := s.txr.RunInTx(ctx, func(r repository.TxRepos) error {
		var err error
		trip, err = r.Trips.GetByID(ctx, tripID)
		if err != nil {
			return err
		}

		// Idempotent no-op: old/new comparison gates every side effect.
		if trip.Status == newStatus {
			return nil
		}

		effect, ok := transitionEffects[tripTransition{trip.Status, newStatus}]
		if !ok {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, trip.Status, newStatus)
		}

		vehicle, err := r.Vehicles.GetByID(ctx, trip.VehicleID)
		if err != nil {
			return fmt.Errorf("vehicle %s: %w", trip.VehicleID, err)
		}

		driver, err := r.Drivers.GetByID(ctx, trip.DriverID)
		if err != nil {
			return fmt.Errorf("driver %s: %w", trip.DriverID, err)
		}

		trip.Status = newStatus
		effect(vehicle, driver)

		if err := r.Trips.Update(ctx, trip); err != nil {
			return err
		}
		if err := r.Vehicles.UpdateStatus(ctx, vehicle.ID, vehicle.Status); err != nil {
			return err
		}
		return r.Drivers.Update(ctx, driver)
	})
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// GetTrip retrieves a trip by ID.
func (s *DispatchService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	return s.tripRepo.GetByID(ctx, tripID)
}

// GetAllTrips retrieves recent trips.
func (s *DispatchService) GetAllTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}

// acquireDispatchLocks takes the vehicle lock then the driver lock, and
// returns a function releasing whatever was acquired.
func (s *DispatchService) acquireDispatchLocks(ctx context.Context, vehicleID, driverID string) (func(), error) {
	if s.locks == nil {
		return func() {}, nil
	}

	ok, err := s.locks.AcquireVehicleLock(ctx, vehicleID, dispatchLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDispatchContention
	}

	ok, err = s.locks.AcquireDriverLock(ctx, driverID, dispatchLockTTL)
	if err != nil {
		_ = s.locks.ReleaseVehicleLock(ctx, vehicleID)
		return nil, err
	}
	if !ok {
		_ = s.locks.ReleaseVehicleLock(ctx, vehicleID)
		return nil, ErrDispatchContention
	}

	return func() {
		_ = s.locks.ReleaseDriverLock(ctx, driverID)
		_ = s.locks.ReleaseVehicleLock(ctx, vehicleID)
	}, nil
}
