package tests

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// ──────────────────────────────────────────────
// 1. TRIP DISPATCH PRECONDITIONS
// ──────────────────────────────────────────────

// newDispatchEnv builds a dispatch service over fresh mocks, pre-loaded with
// an available 1000kg truck and an on-duty driver with a valid license.
func newDispatchEnv() (*service.DispatchService, *MockVehicleRepository, *MockDriverRepository, *MockTripRepository, *MockLockStore) {
	vehicleRepo := NewMockVehicleRepository()
	driverRepo := NewMockDriverRepository()
	tripRepo := NewMockTripRepository()
	maintenanceRepo := NewMockMaintenanceRepository()
	lockStore := NewMockLockStore()

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:         "veh-1",
		Name:       "Box Truck 7",
		Plate:      "FLT-100",
		Type:       domain.VehicleTypeTruck,
		CapacityKg: 1000,
		Status:     domain.VehicleStatusAvailable,
	})
	driverRepo.AddDriver(&domain.Driver{
		ID:            "drv-1",
		Name:          "Sam Park",
		LicenseNumber: "DL-100",
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
		DutyStatus:    domain.DutyStatusOnDuty,
		SafetyScore:   100,
	})

	txr := NewMockTxRunner(vehicleRepo, driverRepo, tripRepo, maintenanceRepo)
	svc := service.NewDispatchService(txr, tripRepo, lockStore)
	return svc, vehicleRepo, driverRepo, tripRepo, lockStore
}

func TestDispatch_DefaultsToPending(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, driverRepo, tripRepo, _ := newDispatchEnv()

	trip, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		Origin:        "Depot A",
		Destination:   "Depot B",
		CargoWeightKg: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Status != domain.TripStatusPending {
		t.Errorf("expected status %s, got %s", domain.TripStatusPending, trip.Status)
	}
	if tripRepo.CountTrips() != 1 {
		t.Errorf("expected 1 trip, got %d", tripRepo.CountTrips())
	}

	// A pending dispatch reserves nothing yet.
	if got := vehicleRepo.GetVehicle("veh-1").Status; got != domain.VehicleStatusAvailable {
		t.Errorf("expected vehicle available, got %s", got)
	}
	if got := driverRepo.GetDriver("drv-1").DutyStatus; got != domain.DutyStatusOnDuty {
		t.Errorf("expected driver on_duty, got %s", got)
	}
}

func TestDispatch_ImmediateInProgress_EngagesVehicleAndDriver(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, driverRepo, _, _ := newDispatchEnv()

	trip, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 500,
		InitialStatus: domain.TripStatusInProgress,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Status != domain.TripStatusInProgress {
		t.Errorf("expected status %s, got %s", domain.TripStatusInProgress, trip.Status)
	}
	if got := vehicleRepo.GetVehicle("veh-1").Status; got != domain.VehicleStatusOnTrip {
		t.Errorf("expected vehicle on_trip, got %s", got)
	}
	if got := driverRepo.GetDriver("drv-1").DutyStatus; got != domain.DutyStatusOnDuty {
		t.Errorf("expected driver on_duty, got %s", got)
	}
}

func TestDispatch_VehicleNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, tripRepo, _ := newDispatchEnv()

	_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-missing",
		DriverID:      "drv-1",
		CargoWeightKg: 500,
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if tripRepo.CountTrips() != 0 {
		t.Errorf("expected no trips, got %d", tripRepo.CountTrips())
	}
}

func TestDispatch_VehicleNotAvailable(t *testing.T) {
	t.Parallel()

	statuses := []domain.VehicleStatus{
		domain.VehicleStatusOnTrip,
		domain.VehicleStatusInShop,
		domain.VehicleStatusRetired,
	}

	for _, status := range statuses {
		svc, vehicleRepo, _, tripRepo, _ := newDispatchEnv()
		vehicleRepo.GetVehicle("veh-1").Status = status

		_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
			VehicleID:     "veh-1",
			DriverID:      "drv-1",
			CargoWeightKg: 500,
		})
		if !errors.Is(err, service.ErrVehicleUnavailable) {
			t.Errorf("status %s: expected ErrVehicleUnavailable, got %v", status, err)
		}
		if tripRepo.CountTrips() != 0 {
			t.Errorf("status %s: expected no trips, got %d", status, tripRepo.CountTrips())
		}
	}
}

func TestDispatch_SuspendedDriver(t *testing.T) {
	t.Parallel()

	svc, _, driverRepo, tripRepo, _ := newDispatchEnv()
	driverRepo.GetDriver("drv-1").DutyStatus = domain.DutyStatusSuspended

	_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 500,
	})
	if !errors.Is(err, service.ErrDriverSuspended) {
		t.Fatalf("expected ErrDriverSuspended, got %v", err)
	}
	if tripRepo.CountTrips() != 0 {
		t.Errorf("expected no trips, got %d", tripRepo.CountTrips())
	}
}

func TestDispatch_ExpiredLicense_FailsRegardlessOfDutyStatus(t *testing.T) {
	t.Parallel()

	for _, duty := range []domain.DutyStatus{domain.DutyStatusOnDuty, domain.DutyStatusOnBreak} {
		svc, _, driverRepo, _, _ := newDispatchEnv()
		driver := driverRepo.GetDriver("drv-1")
		driver.DutyStatus = duty
		driver.LicenseExpiry = time.Now().AddDate(0, 0, -1)

		_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
			VehicleID:     "veh-1",
			DriverID:      "drv-1",
			CargoWeightKg: 500,
		})
		if !errors.Is(err, service.ErrLicenseExpired) {
			t.Errorf("duty %s: expected ErrLicenseExpired, got %v", duty, err)
		}
	}
}

func TestDispatch_NonPositiveCargoWeight(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newDispatchEnv()

	for _, weight := range []float64{0, -10} {
		_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
			VehicleID:     "veh-1",
			DriverID:      "drv-1",
			CargoWeightKg: weight,
		})
		if !errors.Is(err, service.ErrInvalidCargoWeight) {
			t.Errorf("weight %.0f: expected ErrInvalidCargoWeight, got %v", weight, err)
		}
	}
}

func TestDispatch_CapacityExceeded_LeavesStateUntouched(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, driverRepo, tripRepo, _ := newDispatchEnv()

	_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 1001,
		InitialStatus: domain.TripStatusInProgress,
	})
	if !errors.Is(err, service.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	if tripRepo.CountTrips() != 0 {
		t.Errorf("expected no trips, got %d", tripRepo.CountTrips())
	}
	if got := vehicleRepo.GetVehicle("veh-1").Status; got != domain.VehicleStatusAvailable {
		t.Errorf("expected vehicle still available, got %s", got)
	}
	if got := driverRepo.GetDriver("drv-1").DutyStatus; got != domain.DutyStatusOnDuty {
		t.Errorf("expected driver still on_duty, got %s", got)
	}
}

func TestDispatch_CargoAtExactCapacity(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newDispatchEnv()

	_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 1000,
	})
	if err != nil {
		t.Fatalf("cargo at capacity should dispatch, got %v", err)
	}
}

func TestDispatch_VehicleCheckWinsOverDriverCheck(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, driverRepo, _, _ := newDispatchEnv()
	vehicleRepo.GetVehicle("veh-1").Status = domain.VehicleStatusInShop
	driverRepo.GetDriver("drv-1").DutyStatus = domain.DutyStatusSuspended

	_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 500,
	})
	if !errors.Is(err, service.ErrVehicleUnavailable) {
		t.Fatalf("expected the vehicle check to fail first, got %v", err)
	}
}

func TestDispatch_UnknownInitialStatus(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newDispatchEnv()

	_, err := svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 500,
		InitialStatus: "paused",
	})
	if !errors.Is(err, service.ErrInvalidTripStatus) {
		t.Fatalf("expected ErrInvalidTripStatus, got %v", err)
	}
}

// ──────────────────────────────────────────────
// 2. CONCURRENT DISPATCH
// ──────────────────────────────────────────────

func TestDispatch_LockContention(t *testing.T) {
	t.Parallel()

	svc, _, _, tripRepo, lockStore := newDispatchEnv()

	// Another dispatch already holds the vehicle lock.
	ok, err := lockStore.AcquireVehicleLock(context.Background(), "veh-1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("failed to pre-acquire lock: ok=%v err=%v", ok, err)
	}

	_, err = svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 500,
	})
	if !errors.Is(err, service.ErrDispatchContention) {
		t.Fatalf("expected ErrDispatchContention, got %v", err)
	}
	if tripRepo.CountTrips() != 0 {
		t.Errorf("expected no trips, got %d", tripRepo.CountTrips())
	}
}

func TestDispatch_DriverLockContention_ReleasesVehicleLock(t *testing.T) {
	t.Parallel()

	svc, _, _, _, lockStore := newDispatchEnv()

	ok, err := lockStore.AcquireDriverLock(context.Background(), "drv-1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("failed to pre-acquire lock: ok=%v err=%v", ok, err)
	}

	_, err = svc.CreateTrip(context.Background(), service.CreateTripRequest{
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 500,
	})
	if !errors.Is(err, service.ErrDispatchContention) {
		t.Fatalf("expected ErrDispatchContention, got %v", err)
	}

	// The vehicle lock taken on the way in must not leak.
	if lockStore.IsLocked("lock:vehicle:veh-1") {
		t.Error("vehicle lock leaked after failed driver lock")
	}
}

func TestDispatch_ConcurrentSameVehicle_ExactlyOneWins(t *testing.T) {
	t.Parallel()

	svc, _, driverRepo, tripRepo, _ := newDispatchEnv()
	driverRepo.AddDriver(&domain.Driver{
		ID:            "drv-2",
		Name:          "Rival Driver",
		LicenseNumber: "DL-200",
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
		DutyStatus:    domain.DutyStatusOnDuty,
		SafetyScore:   100,
	})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, driverID := range []string{"drv-1", "drv-2"} {
		wg.Add(1)
		go func(i int, driverID string) {
			defer wg.Done()
			_, errs[i] = svc.CreateTrip(context.Background(), service.CreateTripRequest{
				VehicleID:     "veh-1",
				DriverID:      driverID,
				CargoWeightKg: 500,
				InitialStatus: domain.TripStatusInProgress,
			})
		}(i, driverID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		if !errors.Is(err, service.ErrDispatchContention) && !errors.Is(err, service.ErrVehicleUnavailable) {
			t.Errorf("unexpected failure mode: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("expected exactly one dispatch to win, got %d", succeeded)
	}
	if tripRepo.CountTrips() != 1 {
		t.Errorf("expected exactly 1 trip, got %d", tripRepo.CountTrips())
	}
}
