package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// ──────────────────────────────────────────────
// 3. TRIP STATUS TRANSITIONS AND SIDE EFFECTS
// ──────────────────────────────────────────────

// newTransitionEnv builds a dispatch service with an in_progress trip already
// occupying the vehicle and driver.
func newTransitionEnv(tripStatus domain.TripStatus) (*service.DispatchService, *MockVehicleRepository, *MockDriverRepository, *MockTripRepository) {
	vehicleRepo := NewMockVehicleRepository()
	driverRepo := NewMockDriverRepository()
	tripRepo := NewMockTripRepository()
	maintenanceRepo := NewMockMaintenanceRepository()

	vehicleStatus := domain.VehicleStatusOnTrip
	if tripStatus == domain.TripStatusPending {
		vehicleStatus = domain.VehicleStatusAvailable
	}

	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:         "veh-1",
		Name:       "Box Truck 7",
		Plate:      "FLT-100",
		CapacityKg: 1000,
		Status:     vehicleStatus,
	})
	driverRepo.AddDriver(&domain.Driver{
		ID:            "drv-1",
		Name:          "Sam Park",
		LicenseNumber: "DL-100",
		LicenseExpiry: time.Now().AddDate(1, 0, 0),
		DutyStatus:    domain.DutyStatusOnDuty,
		SafetyScore:   100,
	})
	tripRepo.AddTrip(&domain.Trip{
		ID:            "trip-1",
		VehicleID:     "veh-1",
		DriverID:      "drv-1",
		CargoWeightKg: 500,
		Status:        tripStatus,
		CreatedAt:     time.Now(),
	})

	txr := NewMockTxRunner(vehicleRepo, driverRepo, tripRepo, maintenanceRepo)
	svc := service.NewDispatchService(txr, tripRepo, nil)
	return svc, vehicleRepo, driverRepo, tripRepo
}

func TestTransition_Complete_ReleasesVehicleAndCreditsDriver(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, driverRepo, tripRepo := newTransitionEnv(domain.TripStatusInProgress)

	trip, err := svc.SetTripStatus(context.Background(), "trip-1", domain.TripStatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.Status != domain.TripStatusCompleted {
		t.Errorf("expected status completed, got %s", trip.Status)
	}
	if got := tripRepo.GetTrip("trip-1").Status; got != domain.TripStatusCompleted {
		t.Errorf("stored trip not updated: %s", got)
	}
	if got := vehicleRepo.GetVehicle("veh-1").Status; got != domain.VehicleStatusAvailable {
		t.Errorf("expected vehicle available, got %s", got)
	}

	driver := driverRepo.GetDriver("drv-1")
	if driver.DutyStatus != domain.DutyStatusOnDuty {
		t.Errorf("expected driver on_duty, got %s", driver.DutyStatus)
	}
	if driver.TripsCompleted != 1 {
		t.Errorf("expected 1 completed trip, got %d", driver.TripsCompleted)
	}
	if driver.SafetyScore != 100 {
		t.Errorf("completion must not touch the safety score, got %d", driver.SafetyScore)
	}
}

func TestTransition_Cancel_AppliesDriverPenalties(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, driverRepo, _ := newTransitionEnv(domain.TripStatusInProgress)

	_, err := svc.SetTripStatus(context.Background(), "trip-1", domain.TripStatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := vehicleRepo.GetVehicle("veh-1").Status; got != domain.VehicleStatusAvailable {
		t.Errorf("expected vehicle available, got %s", got)
	}

	driver := driverRepo.GetDriver("drv-1")
	if driver.TripsCancelled != 1 {
		t.Errorf("expected 1 cancelled trip, got %d", driver.TripsCancelled)
	}
	if driver.ComplaintsCount != 1 {
		t.Errorf("expected 1 complaint, got %d", driver.ComplaintsCount)
	}
	if driver.SafetyScore != 95 {
		t.Errorf("expected safety score 95, got %d", driver.SafetyScore)
	}
}

func TestTransition_Cancel_SafetyScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	svc, _, driverRepo, _ := newTransitionEnv(domain.TripStatusInProgress)
	driverRepo.GetDriver("drv-1").SafetyScore = 3

	_, err := svc.SetTripStatus(context.Background(), "trip-1", domain.TripStatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := driverRepo.GetDriver("drv-1").SafetyScore; got != 0 {
		t.Errorf("expected safety score floored at 0, got %d", got)
	}
}

func TestTransition_PendingDirectlyToCompleted(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, driverRepo, _ := newTransitionEnv(domain.TripStatusPending)

	_, err := svc.SetTripStatus(context.Background(), "trip-1", domain.TripStatusCompleted)
	if err != nil {
		t.Fatalf("short hauls close out straight from pending, got %v", err)
	}

	if got := vehicleRepo.GetVehicle("veh-1").Status; got != domain.VehicleStatusAvailable {
		t.Errorf("expected vehicle available, got %s", got)
	}
	if got := driverRepo.GetDriver("drv-1").TripsCompleted; got != 1 {
		t.Errorf("expected 1 completed trip, got %d", got)
	}
}

func TestTransition_PendingToInProgress_Engages(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, driverRepo, _ := newTransitionEnv(domain.TripStatusPending)

	_, err := svc.SetTripStatus(context.Background(), "trip-1", domain.TripStatusInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := vehicleRepo.GetVehicle("veh-1").Status; got != domain.VehicleStatusOnTrip {
		t.Errorf("expected vehicle on_trip, got %s", got)
	}
	if got := driverRepo.GetDriver("drv-1").DutyStatus; got != domain.DutyStatusOnDuty {
		t.Errorf("expected driver on_duty, got %s", got)
	}
}

func TestTransition_SameStatus_IsIdempotentNoOp(t *testing.T) {
	t.Parallel()

	svc, _, driverRepo, tripRepo := newTransitionEnv(domain.TripStatusInProgress)

	// First cancellation applies the penalties.
	if _, err := svc.SetTripStatus(context.Background(), "trip-1", domain.TripStatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updatesAfterFirst := tripRepo.UpdateCallCount

	// Second cancellation is a no-op: no second penalty, no write.
	trip, err := svc.SetTripStatus(context.Background(), "trip-1", domain.TripStatusCancelled)
	if err != nil {
		t.Fatalf("repeated cancel must be a no-op, got %v", err)
	}
	if trip.Status != domain.TripStatusCancelled {
		t.Errorf("expected status cancelled, got %s", trip.Status)
	}

	driver := driverRepo.GetDriver("drv-1")
	if driver.TripsCancelled != 1 {
		t.Errorf("penalty applied twice: tripsCancelled=%d", driver.TripsCancelled)
	}
	if driver.SafetyScore != 95 {
		t.Errorf("penalty applied twice: safetyScore=%d", driver.SafetyScore)
	}
	if tripRepo.UpdateCallCount != updatesAfterFirst {
		t.Errorf("no-op transition must not write, updates went %d -> %d", updatesAfterFirst, tripRepo.UpdateCallCount)
	}
}

func TestTransition_TerminalStatesRejectEveryEdge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from domain.TripStatus
		to   domain.TripStatus
	}{
		{domain.TripStatusCompleted, domain.TripStatusPending},
		{domain.TripStatusCompleted, domain.TripStatusInProgress},
		{domain.TripStatusCompleted, domain.TripStatusCancelled},
		{domain.TripStatusCancelled, domain.TripStatusPending},
		{domain.TripStatusCancelled, domain.TripStatusInProgress},
		{domain.TripStatusCancelled, domain.TripStatusCompleted},
	}

	for _, tc := range cases {
		svc, _, driverRepo, _ := newTransitionEnv(tc.from)

		_, err := svc.SetTripStatus(context.Background(), "trip-1", tc.to)
		if !errors.Is(err, service.ErrInvalidTransition) {
			t.Errorf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}

		driver := driverRepo.GetDriver("drv-1")
		if driver.TripsCompleted != 0 || driver.TripsCancelled != 0 {
			t.Errorf("%s -> %s: rejected transition applied side effects", tc.from, tc.to)
		}
	}
}

func TestTransition_InProgressBackToPending_Rejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTransitionEnv(domain.TripStatusInProgress)

	_, err := svc.SetTripStatus(context.Background(), "trip-1", domain.TripStatusPending)
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTransition_UnknownStatusValue(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTransitionEnv(domain.TripStatusInProgress)

	_, err := svc.SetTripStatus(context.Background(), "trip-1", "paused")
	if !errors.Is(err, service.ErrInvalidTripStatus) {
		t.Fatalf("expected ErrInvalidTripStatus, got %v", err)
	}
}

func TestTransition_TripNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTransitionEnv(domain.TripStatusInProgress)

	_, err := svc.SetTripStatus(context.Background(), "trip-missing", domain.TripStatusCompleted)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Legality of edges as the domain table sees them, independent of the engine.
func TestTransition_DomainTableAgreesWithEngine(t *testing.T) {
	t.Parallel()

	if !domain.CanTransition(domain.TripStatusPending, domain.TripStatusCompleted) {
		t.Error("pending -> completed should be legal")
	}
	if domain.CanTransition(domain.TripStatusCompleted, domain.TripStatusInProgress) {
		t.Error("completed is terminal")
	}
	if !domain.IsTerminalTripStatus(domain.TripStatusCancelled) {
		t.Error("cancelled should be terminal")
	}
	if domain.IsTerminalTripStatus(domain.TripStatusPending) {
		t.Error("pending is not terminal")
	}
}
