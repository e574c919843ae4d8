package service

import "errors"

var (
	// ErrInvalidVehicleID is returned when a vehicle ID is empty.
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	// ErrInvalidDriverID is returned when a driver ID is empty.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidTripID is returned when a trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidMaintenanceID is returned when a maintenance ID is empty.
	ErrInvalidMaintenanceID = errors.New("invalid maintenance id")

	// ErrInvalidExpenseID is returned when an expense ID is empty.
	ErrInvalidExpenseID = errors.New("invalid expense id")

	// ErrVehicleUnavailable is returned when dispatching against a vehicle
	// that is on a trip, in the shop, or retired.
	ErrVehicleUnavailable = errors.New("vehicle unavailable")

	// ErrDriverSuspended is returned when dispatching against a suspended driver.
	ErrDriverSuspended = errors.New("driver suspended")

	// ErrLicenseExpired is returned when the driver's license has expired.
	ErrLicenseExpired = errors.New("license expired")

	// ErrInvalidCargoWeight is returned when cargo weight is zero or negative.
	ErrInvalidCargoWeight = errors.New("cargo weight must be positive")

	// ErrCapacityExceeded is returned when cargo weight exceeds vehicle capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidTripStatus is returned when a requested status is not a known value.
	ErrInvalidTripStatus = errors.New("invalid trip status")

	// ErrInvalidTransition is returned for an illegal trip status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDispatchContention is returned when another dispatch holds the lock
	// for the same vehicle or driver.
	ErrDispatchContention = errors.New("dispatch already in progress for vehicle or driver")

	// ErrVehicleInUse is returned when deleting a vehicle still referenced by
	// an active trip or open maintenance record.
	ErrVehicleInUse = errors.New("vehicle referenced by active trips or open maintenance")

	// ErrPlateExists is returned when registering a vehicle with a plate
	// already in the fleet.
	ErrPlateExists = errors.New("license plate already registered")

	// ErrLicenseNumberExists is returned when registering a driver with a
	// license number already on file.
	ErrLicenseNumberExists = errors.New("license number already registered")

	// ErrEmailExists is returned when registering a user with a taken email.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for a missing, malformed, or expired token.
	ErrInvalidToken = errors.New("invalid token")
)
