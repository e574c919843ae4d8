package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// DashboardHandler handles HTTP requests for the reporting endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview handles GET /v1/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"total_vehicles":     overview.TotalVehicles,
		"on_trip_vehicles":   overview.OnTripVehicles,
		"in_shop_vehicles":   overview.InShopVehicles,
		"available_vehicles": overview.AvailableVehicles,
		"total_drivers":      overview.TotalDrivers,
		"on_duty_drivers":    overview.OnDutyDrivers,
		"suspended_drivers":  overview.SuspendedDrivers,
		"pending_trips":      overview.PendingTrips,
		"completed_trips":    overview.CompletedTrips,
		"total_expenses":     overview.TotalExpenses,
		"utilization_rate":   service.UtilizationRate(overview),
	})
}

// FuelEfficiency handles GET /v1/dashboard/fuel-efficiency
func (h *DashboardHandler) FuelEfficiency(c *gin.Context) {
	entries, err := h.dashboardService.FuelEfficiency(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		response = append(response, gin.H{
			"vehicle":      e.Vehicle,
			"total_liters": e.TotalLiters,
			"total_cost":   e.TotalCost,
			"cost_per_l":   e.CostPerL,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// MonthlySummary handles GET /v1/dashboard/monthly-summary
func (h *DashboardHandler) MonthlySummary(c *gin.Context) {
	rows, err := h.dashboardService.MonthlySummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		response = append(response, gin.H{
			"month":  r.Month,
			"fuel":   r.Fuel,
			"repair": r.Repair,
			"other":  r.Other,
			"total":  r.Total,
		})
	}

	respondJSON(c, http.StatusOK, response)
}

// Analytics handles GET /v1/dashboard/analytics
func (h *DashboardHandler) Analytics(c *gin.Context) {
	a, err := h.dashboardService.GetAnalytics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	scores := make([]gin.H, 0, len(a.DriverScores))
	for _, s := range a.DriverScores {
		scores = append(scores, gin.H{
			"name":           s.Name,
			"safety_score":   s.SafetyScore,
			"tripsCompleted": s.TripsCompleted,
			"tripsCancelled": s.TripsCancelled,
		})
	}

	respondJSON(c, http.StatusOK, gin.H{
		"fuel_cost":              a.FuelCost,
		"fuel_liters":            a.FuelLiters,
		"repair_cost":            a.RepairCost,
		"total_operational_cost": a.TotalOperationalCost,
		"avg_cost_per_vehicle":   a.AvgCostPerVehicle,
		"completed_trips":        a.CompletedTrips,
		"driver_scores":          scores,
	})
}
