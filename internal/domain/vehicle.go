package domain

// VehicleStatus represents the current status of a vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusOnTrip    VehicleStatus = "on_trip"
	VehicleStatusInShop    VehicleStatus = "in_shop"
	VehicleStatusRetired   VehicleStatus = "retired"
)

// VehicleType represents the class of a vehicle.
type VehicleType string

const (
	VehicleTypeTruck VehicleType = "truck"
	VehicleTypeVan   VehicleType = "van"
	VehicleTypeBike  VehicleType = "bike"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID         string
	Name       string
	Plate      string
	Make       string
	Model      string
	Year       int
	Type       VehicleType
	CapacityKg float64
	Odometer   float64
	Status     VehicleStatus
}

// Dispatchable reports whether the vehicle can be assigned a new trip.
func (v *Vehicle) Dispatchable() bool {
	return v.Status == VehicleStatusAvailable
}

// Validate checks the vehicle fields and returns all violations found.
func (v *Vehicle) Validate() ValidationErrors {
	var errs ValidationErrors

	if v.Name == "" {
		errs = append(errs, "Name is required")
	}
	if v.Plate == "" {
		errs = append(errs, "License plate is required")
	}
	if v.CapacityKg <= 0 {
		errs = append(errs, "Capacity must be a positive number")
	}
	if v.Odometer < 0 {
		errs = append(errs, "Odometer must be a non-negative number")
	}
	if v.Type != "" {
		switch v.Type {
		case VehicleTypeTruck, VehicleTypeVan, VehicleTypeBike:
		default:
			errs = append(errs, "Type must be one of: truck, van, bike")
		}
	}
	if v.Status != "" {
		switch v.Status {
		case VehicleStatusAvailable, VehicleStatusOnTrip, VehicleStatusInShop, VehicleStatusRetired:
		default:
			errs = append(errs, "Status must be one of: available, on_trip, in_shop, retired")
		}
	}

	return errs
}
