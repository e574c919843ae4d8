package tests

import (
	"context"
	"testing"
	"time"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// ──────────────────────────────────────────────
// 8. DASHBOARD AND ANALYTICS
// ──────────────────────────────────────────────

func TestDashboard_OverviewServedFromCacheOnSecondCall(t *testing.T) {
	t.Parallel()

	statsRepo := NewMockStatsRepository()
	statsRepo.OverviewResult = &repository.FleetOverview{TotalVehicles: 4, OnTripVehicles: 1}
	cache := NewMockCacheStore()
	svc := service.NewDashboardService(statsRepo, NewMockDriverRepository(), cache)
	ctx := context.Background()

	first, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TotalVehicles != 4 {
		t.Errorf("expected 4 vehicles, got %d", first.TotalVehicles)
	}
	if statsRepo.OverviewCallCount != 1 {
		t.Errorf("expected 1 aggregation query, got %d", statsRepo.OverviewCallCount)
	}

	// Second call hits the cache, not the database.
	if _, err := svc.Overview(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if statsRepo.OverviewCallCount != 1 {
		t.Errorf("expected cached read, queries went to %d", statsRepo.OverviewCallCount)
	}
}

func TestDashboard_CacheFailureFallsThroughToDatabase(t *testing.T) {
	t.Parallel()

	statsRepo := NewMockStatsRepository()
	statsRepo.OverviewResult = &repository.FleetOverview{TotalVehicles: 4}
	cache := NewMockCacheStore()
	cache.GetError = ErrMockTimeout
	cache.SetError = ErrMockTimeout
	svc := service.NewDashboardService(statsRepo, NewMockDriverRepository(), cache)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("cache failures must not break the dashboard: %v", err)
	}
	if overview.TotalVehicles != 4 {
		t.Errorf("expected 4 vehicles, got %d", overview.TotalVehicles)
	}
}

func TestDashboard_OverviewWithoutCache(t *testing.T) {
	t.Parallel()

	statsRepo := NewMockStatsRepository()
	statsRepo.OverviewResult = &repository.FleetOverview{TotalVehicles: 2}
	svc := service.NewDashboardService(statsRepo, NewMockDriverRepository(), nil)

	if _, err := svc.Overview(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDashboard_UtilizationRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total  int
		onTrip int
		want   int
	}{
		{0, 0, 0},
		{4, 1, 25},
		{3, 2, 67},
		{10, 10, 100},
	}

	for _, tc := range cases {
		got := service.UtilizationRate(&repository.FleetOverview{
			TotalVehicles:  tc.total,
			OnTripVehicles: tc.onTrip,
		})
		if got != tc.want {
			t.Errorf("%d/%d: expected %d%%, got %d%%", tc.onTrip, tc.total, tc.want, got)
		}
	}
}

func TestDashboard_FuelEfficiencyDerivesCostPerLiter(t *testing.T) {
	t.Parallel()

	statsRepo := NewMockStatsRepository()
	statsRepo.FuelRows = []repository.FuelEfficiencyRow{
		{VehicleID: "veh-1", VehicleName: "Box Truck 7", TotalLiters: 200, TotalCost: 300},
		{VehicleID: "veh-2", VehicleName: "Van 2", TotalLiters: 0, TotalCost: 0},
	}
	svc := service.NewDashboardService(statsRepo, NewMockDriverRepository(), nil)

	entries, err := svc.FuelEfficiency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].CostPerL != 1.5 {
		t.Errorf("expected 1.5 per liter, got %.2f", entries[0].CostPerL)
	}
	if entries[1].CostPerL != 0 {
		t.Errorf("zero liters must not divide, got %.2f", entries[1].CostPerL)
	}
}

func TestDashboard_AnalyticsAggregation(t *testing.T) {
	t.Parallel()

	statsRepo := NewMockStatsRepository()
	statsRepo.OverviewResult = &repository.FleetOverview{TotalVehicles: 2, CompletedTrips: 7}
	statsRepo.FuelRows = []repository.FuelEfficiencyRow{
		{VehicleID: "veh-1", TotalLiters: 200, TotalCost: 300},
		{VehicleID: "veh-2", TotalLiters: 100, TotalCost: 150},
	}
	statsRepo.MonthlyRows = []repository.MonthlyExpenseRow{
		{Month: 1, Fuel: 450, Repair: 600, Other: 50, Total: 1100},
	}
	statsRepo.VehicleCostRows = []repository.VehicleCostRow{
		{VehicleID: "veh-1", TotalCost: 700},
		{VehicleID: "veh-2", TotalCost: 400},
	}

	driverRepo := NewMockDriverRepository()
	driverRepo.AddDriver(&domain.Driver{
		ID:             "drv-1",
		Name:           "Sam Park",
		LicenseNumber:  "DL-100",
		LicenseExpiry:  time.Now().AddDate(1, 0, 0),
		DutyStatus:     domain.DutyStatusOnDuty,
		SafetyScore:    95,
		TripsCompleted: 7,
		TripsCancelled: 1,
	})

	svc := service.NewDashboardService(statsRepo, driverRepo, nil)

	a, err := svc.GetAnalytics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.FuelCost != 450 {
		t.Errorf("expected fuel cost 450, got %.2f", a.FuelCost)
	}
	if a.FuelLiters != 300 {
		t.Errorf("expected 300 liters, got %.2f", a.FuelLiters)
	}
	if a.RepairCost != 600 {
		t.Errorf("expected repair cost 600, got %.2f", a.RepairCost)
	}
	if a.TotalOperationalCost != 1100 {
		t.Errorf("expected total cost 1100, got %.2f", a.TotalOperationalCost)
	}
	if a.AvgCostPerVehicle != 550 {
		t.Errorf("expected avg cost 550, got %.2f", a.AvgCostPerVehicle)
	}
	if a.CompletedTrips != 7 {
		t.Errorf("expected 7 completed trips, got %d", a.CompletedTrips)
	}
	if len(a.DriverScores) != 1 || a.DriverScores[0].SafetyScore != 95 {
		t.Errorf("unexpected driver scores: %+v", a.DriverScores)
	}
}
