package domain

import "time"

// TripStatus represents the current status of a trip.
type TripStatus string

const (
	TripStatusPending    TripStatus = "pending"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// Trip represents a dispatched cargo trip.
type Trip struct {
	ID                string
	VehicleID         string
	DriverID          string
	Origin            string
	Destination       string
	CargoWeightKg     float64
	EstimatedFuelCost float64
	Status            TripStatus
	CreatedAt         time.Time
}

// Active reports whether the trip still occupies its vehicle.
func (t *Trip) Active() bool {
	return t.Status == TripStatusPending || t.Status == TripStatusInProgress
}

// tripTransitions is the set of legal trip status changes. Completed and
// cancelled are terminal: no edge leaves them.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusPending:    {TripStatusInProgress, TripStatusCompleted, TripStatusCancelled},
	TripStatusInProgress: {TripStatusCompleted, TripStatusCancelled},
	TripStatusCompleted:  {},
	TripStatusCancelled:  {},
}

// CanTransition reports whether from -> to is a legal trip status change.
// A same-status transition is legal and treated as a no-op by the caller.
func CanTransition(from, to TripStatus) bool {
	if from == to {
		return true
	}
	for _, s := range tripTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminalTripStatus reports whether no transition leaves the given status.
func IsTerminalTripStatus(s TripStatus) bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// ValidTripStatus reports whether s is a known trip status value.
func ValidTripStatus(s TripStatus) bool {
	switch s {
	case TripStatusPending, TripStatusInProgress, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}
