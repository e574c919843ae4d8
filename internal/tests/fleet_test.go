package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// ──────────────────────────────────────────────
// 5. VEHICLE AND DRIVER REGISTRATION
// ──────────────────────────────────────────────

func newFleetEnv() (*service.FleetService, *MockVehicleRepository, *MockTripRepository, *MockMaintenanceRepository) {
	vehicleRepo := NewMockVehicleRepository()
	tripRepo := NewMockTripRepository()
	maintenanceRepo := NewMockMaintenanceRepository()
	svc := service.NewFleetService(vehicleRepo, tripRepo, maintenanceRepo)
	return svc, vehicleRepo, tripRepo, maintenanceRepo
}

func TestFleet_RegisterVehicleDefaultsToAvailable(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, _, _ := newFleetEnv()

	vehicle, err := svc.RegisterVehicle(context.Background(), &domain.Vehicle{
		Name:       "Box Truck 7",
		Plate:      "FLT-100",
		Type:       domain.VehicleTypeTruck,
		CapacityKg: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vehicle.ID == "" {
		t.Error("expected an assigned ID")
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		t.Errorf("expected status available, got %s", vehicle.Status)
	}
	if vehicleRepo.CountVehicles() != 1 {
		t.Errorf("expected 1 vehicle, got %d", vehicleRepo.CountVehicles())
	}
}

func TestFleet_RegisterVehicleDuplicatePlate(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, _, _ := newFleetEnv()
	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:         "veh-1",
		Name:       "Box Truck 7",
		Plate:      "FLT-100",
		CapacityKg: 1000,
		Status:     domain.VehicleStatusAvailable,
	})

	_, err := svc.RegisterVehicle(context.Background(), &domain.Vehicle{
		Name:       "Another Truck",
		Plate:      "FLT-100",
		CapacityKg: 800,
	})
	if !errors.Is(err, service.ErrPlateExists) {
		t.Fatalf("expected ErrPlateExists, got %v", err)
	}
	if vehicleRepo.CountVehicles() != 1 {
		t.Errorf("expected 1 vehicle, got %d", vehicleRepo.CountVehicles())
	}
}

func TestFleet_RegisterVehicleCollectsAllViolations(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newFleetEnv()

	_, err := svc.RegisterVehicle(context.Background(), &domain.Vehicle{
		Type:       "hovercraft",
		CapacityKg: -5,
	})

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs) < 3 {
		t.Errorf("expected name, plate, capacity, and type violations, got %v", verrs)
	}
	if !strings.Contains(err.Error(), "Name is required") {
		t.Errorf("expected name violation in %q", err.Error())
	}
}

func TestFleet_DeleteVehicleBlockedByActiveTrip(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, tripRepo, _ := newFleetEnv()
	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:         "veh-1",
		Name:       "Box Truck 7",
		Plate:      "FLT-100",
		CapacityKg: 1000,
		Status:     domain.VehicleStatusOnTrip,
	})
	tripRepo.AddTrip(&domain.Trip{
		ID:        "trip-1",
		VehicleID: "veh-1",
		DriverID:  "drv-1",
		Status:    domain.TripStatusInProgress,
	})

	err := svc.DeleteVehicle(context.Background(), "veh-1")
	if !errors.Is(err, service.ErrVehicleInUse) {
		t.Fatalf("expected ErrVehicleInUse, got %v", err)
	}
	if vehicleRepo.CountVehicles() != 1 {
		t.Error("vehicle must survive a blocked delete")
	}
}

func TestFleet_DeleteVehicleBlockedByOpenMaintenance(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, _, maintenanceRepo := newFleetEnv()
	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:         "veh-1",
		Name:       "Box Truck 7",
		Plate:      "FLT-100",
		CapacityKg: 1000,
		Status:     domain.VehicleStatusInShop,
	})
	maintenanceRepo.AddRecord(&domain.Maintenance{
		ID:          "mnt-1",
		VehicleID:   "veh-1",
		ServiceType: "brake inspection",
		Status:      domain.MaintenanceStatusOpen,
	})

	err := svc.DeleteVehicle(context.Background(), "veh-1")
	if !errors.Is(err, service.ErrVehicleInUse) {
		t.Fatalf("expected ErrVehicleInUse, got %v", err)
	}
}

func TestFleet_DeleteVehicleWithOnlyHistory(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, tripRepo, maintenanceRepo := newFleetEnv()
	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:         "veh-1",
		Name:       "Box Truck 7",
		Plate:      "FLT-100",
		CapacityKg: 1000,
		Status:     domain.VehicleStatusAvailable,
	})
	// Finished work does not block deletion.
	tripRepo.AddTrip(&domain.Trip{
		ID:        "trip-1",
		VehicleID: "veh-1",
		Status:    domain.TripStatusCompleted,
	})
	maintenanceRepo.AddRecord(&domain.Maintenance{
		ID:          "mnt-1",
		VehicleID:   "veh-1",
		ServiceType: "oil change",
		Status:      domain.MaintenanceStatusResolved,
	})

	if err := svc.DeleteVehicle(context.Background(), "veh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicleRepo.CountVehicles() != 0 {
		t.Errorf("expected 0 vehicles, got %d", vehicleRepo.CountVehicles())
	}
}

func TestFleet_RegisterDriverDefaults(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	svc := service.NewDriverService(driverRepo)

	driver, err := svc.RegisterDriver(context.Background(), &domain.Driver{
		Name:          "Sam Park",
		LicenseNumber: "DL-100",
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if driver.DutyStatus != domain.DutyStatusOnDuty {
		t.Errorf("expected duty status on_duty, got %s", driver.DutyStatus)
	}
	if driver.SafetyScore != domain.DefaultSafetyScore {
		t.Errorf("expected safety score %d, got %d", domain.DefaultSafetyScore, driver.SafetyScore)
	}
}

func TestFleet_RegisterDriverDuplicateLicense(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	svc := service.NewDriverService(driverRepo)

	driverRepo.AddDriver(&domain.Driver{
		ID:            "drv-1",
		Name:          "Sam Park",
		LicenseNumber: "DL-100",
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
		DutyStatus:    domain.DutyStatusOnDuty,
		SafetyScore:   100,
	})

	_, err := svc.RegisterDriver(context.Background(), &domain.Driver{
		Name:          "Imposter",
		LicenseNumber: "DL-100",
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
	})
	if !errors.Is(err, service.ErrLicenseNumberExists) {
		t.Fatalf("expected ErrLicenseNumberExists, got %v", err)
	}
}
