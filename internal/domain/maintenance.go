package domain

import "time"

// MaintenanceStatus represents the lifecycle state of a maintenance record.
type MaintenanceStatus string

const (
	MaintenanceStatusOpen     MaintenanceStatus = "open"
	MaintenanceStatusResolved MaintenanceStatus = "resolved"
)

// Maintenance represents a service record for a vehicle. An open record
// keeps the vehicle in the shop until it is resolved or deleted.
type Maintenance struct {
	ID          string
	VehicleID   string
	ServiceType string
	Technician  string
	Cost        float64
	Findings    string
	Status      MaintenanceStatus
	Date        time.Time
}

// Validate checks the maintenance fields and returns all violations found.
func (m *Maintenance) Validate() ValidationErrors {
	var errs ValidationErrors

	if m.VehicleID == "" {
		errs = append(errs, "Vehicle is required")
	}
	if m.ServiceType == "" {
		errs = append(errs, "Service type is required")
	}
	if m.Cost < 0 {
		errs = append(errs, "Cost must be a non-negative number")
	}

	return errs
}
