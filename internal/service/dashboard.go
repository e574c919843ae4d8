package service

import (
	"context"
	"log"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/redis"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// DashboardService serves the reporting aggregates behind the dashboard.
type DashboardService struct {
	statsRepo  repository.StatsRepository
	driverRepo repository.DriverRepository
	cacheStore redis.CacheStoreInterface
}

// NewDashboardService creates a new DashboardService. cacheStore may be nil,
// in which case every request hits the aggregation queries.
func NewDashboardService(
	statsRepo repository.StatsRepository,
	driverRepo repository.DriverRepository,
	cacheStore redis.CacheStoreInterface,
) *DashboardService {
	return &DashboardService{
		statsRepo:  statsRepo,
		driverRepo: driverRepo,
		cacheStore: cacheStore,
	}
}

// Overview returns the fleet-wide counts and expense total, served from the
// Redis cache when fresh.
func (s *DashboardService) Overview(ctx context.Context) (*repository.FleetOverview, error) {
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetOverview(ctx)
		if err != nil {
			log.Printf("dashboard cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	overview, err := s.statsRepo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		if err := s.cacheStore.SetOverview(ctx, overview); err != nil {
			log.Printf("dashboard cache write failed: %v", err)
		}
	}

	return overview, nil
}

// UtilizationRate derives the percentage of the fleet currently on a trip.
func UtilizationRate(o *repository.FleetOverview) int {
	if o.TotalVehicles == 0 {
		return 0
	}
	return int(float64(o.OnTripVehicles)/float64(o.TotalVehicles)*100 + 0.5)
}

// FuelEfficiencyEntry is a per-vehicle fuel report row, with cost per liter
// derived from the aggregates.
type FuelEfficiencyEntry struct {
	Vehicle     string
	TotalLiters float64
	TotalCost   float64
	CostPerL    float64
}

// FuelEfficiency returns fuel spend and volume per vehicle.
func (s *DashboardService) FuelEfficiency(ctx context.Context) ([]FuelEfficiencyEntry, error) {
	rows, err := s.statsRepo.FuelEfficiency(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]FuelEfficiencyEntry, 0, len(rows))
	for _, row := range rows {
		entry := FuelEfficiencyEntry{
			Vehicle:     row.VehicleName,
			TotalLiters: row.TotalLiters,
			TotalCost:   row.TotalCost,
		}
		if row.TotalLiters > 0 {
			entry.CostPerL = row.TotalCost / row.TotalLiters
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// MonthlySummary returns expenses grouped by month and type.
func (s *DashboardService) MonthlySummary(ctx context.Context) ([]repository.MonthlyExpenseRow, error) {
	return s.statsRepo.MonthlySummary(ctx)
}

// Analytics bundles the cost breakdown shown on the analytics page.
type Analytics struct {
	FuelCost             float64
	FuelLiters           float64
	RepairCost           float64
	TotalOperationalCost float64
	AvgCostPerVehicle    float64
	CompletedTrips       int
	DriverScores         []DriverScore
}

// DriverScore is the per-driver slice of the analytics page.
type DriverScore struct {
	Name           string
	SafetyScore    int
	TripsCompleted int
	TripsCancelled int
}

// GetAnalytics computes the cost and driver-performance breakdown.
func (s *DashboardService) GetAnalytics(ctx context.Context) (*Analytics, error) {
	overview, err := s.statsRepo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	fuelRows, err := s.statsRepo.FuelEfficiency(ctx)
	if err != nil {
		return nil, err
	}

	monthly, err := s.statsRepo.MonthlySummary(ctx)
	if err != nil {
		return nil, err
	}

	costs, err := s.statsRepo.VehicleCosts(ctx)
	if err != nil {
		return nil, err
	}

	drivers, err := s.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	a := &Analytics{CompletedTrips: overview.CompletedTrips}

	for _, row := range fuelRows {
		a.FuelCost += row.TotalCost
		a.FuelLiters += row.TotalLiters
	}
	for _, row := range monthly {
		a.RepairCost += row.Repair
	}
	for _, row := range costs {
		a.TotalOperationalCost += row.TotalCost
	}
	if overview.TotalVehicles > 0 {
		a.AvgCostPerVehicle = a.TotalOperationalCost / float64(overview.TotalVehicles)
	}

	for _, d := range drivers {
		a.DriverScores = append(a.DriverScores, DriverScore{
			Name:           d.Name,
			SafetyScore:    d.SafetyScore,
			TripsCompleted: d.TripsCompleted,
			TripsCancelled: d.TripsCancelled,
		})
	}

	return a, nil
}
