package repository

import "context"

// FleetOverview holds the entity counts and totals shown on the dashboard.
type FleetOverview struct {
	TotalVehicles     int
	OnTripVehicles    int
	InShopVehicles    int
	AvailableVehicles int
	TotalDrivers      int
	OnDutyDrivers     int
	SuspendedDrivers  int
	PendingTrips      int
	CompletedTrips    int
	TotalExpenses     float64
}

// FuelEfficiencyRow aggregates fuel spend per vehicle.
type FuelEfficiencyRow struct {
	VehicleID   string
	VehicleName string
	TotalLiters float64
	TotalCost   float64
}

// MonthlyExpenseRow aggregates expenses per calendar month, split by type.
type MonthlyExpenseRow struct {
	Month  int
	Fuel   float64
	Repair float64
	Other  float64
	Total  float64
}

// VehicleCostRow aggregates total expense spend per vehicle.
type VehicleCostRow struct {
	VehicleID string
	TotalCost float64
}

// StatsRepository defines the aggregation queries behind the dashboard.
type StatsRepository interface {
	// Overview returns the fleet-wide counts and expense total.
	Overview(ctx context.Context) (*FleetOverview, error)

	// FuelEfficiency returns fuel spend and volume grouped by vehicle.
	FuelEfficiency(ctx context.Context) ([]FuelEfficiencyRow, error)

	// MonthlySummary returns expenses grouped by month and type.
	MonthlySummary(ctx context.Context) ([]MonthlyExpenseRow, error)

	// VehicleCosts returns total expense spend grouped by vehicle.
	VehicleCosts(ctx context.Context) ([]VehicleCostRow, error)
}
