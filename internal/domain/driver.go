package domain

import "time"

// DutyStatus represents the current operational state of a driver.
type DutyStatus string

const (
	DutyStatusOnDuty    DutyStatus = "on_duty"
	DutyStatusOnBreak   DutyStatus = "on_break"
	DutyStatusSuspended DutyStatus = "suspended"
)

// Safety score bounds and the penalty applied for a cancelled trip.
const (
	MaxSafetyScore       = 100
	MinSafetyScore       = 0
	CancelledTripPenalty = 5
	DefaultSafetyScore   = 100
)

// Driver represents a fleet driver.
type Driver struct {
	ID               string
	Name             string
	LicenseNumber    string
	LicenseExpiry    time.Time
	DutyStatus       DutyStatus
	SafetyScore      int
	PerformanceScore int
	ComplaintsCount  int
	TripsCompleted   int
	TripsCancelled   int
}

// LicenseValidAt reports whether the driver's license is valid at the given time.
func (d *Driver) LicenseValidAt(t time.Time) bool {
	return !d.LicenseExpiry.Before(t)
}

// RecordCancellation applies the penalties for a cancelled trip:
// tripsCancelled and complaints increment, and the safety score drops
// by the cancellation penalty, floored at the minimum.
func (d *Driver) RecordCancellation() {
	d.TripsCancelled++
	d.ComplaintsCount++
	d.SafetyScore -= CancelledTripPenalty
	if d.SafetyScore < MinSafetyScore {
		d.SafetyScore = MinSafetyScore
	}
}

// RecordCompletion credits the driver for a completed trip.
func (d *Driver) RecordCompletion() {
	d.TripsCompleted++
}

// Validate checks the driver fields and returns all violations found.
func (d *Driver) Validate() ValidationErrors {
	var errs ValidationErrors

	if d.Name == "" {
		errs = append(errs, "Name is required")
	}
	if d.LicenseNumber == "" {
		errs = append(errs, "License number is required")
	}
	if d.LicenseExpiry.IsZero() {
		errs = append(errs, "License expiry must be a valid date")
	}
	if d.DutyStatus != "" {
		switch d.DutyStatus {
		case DutyStatusOnDuty, DutyStatusOnBreak, DutyStatusSuspended:
		default:
			errs = append(errs, "Status must be one of: on_duty, on_break, suspended")
		}
	}
	if d.SafetyScore < MinSafetyScore || d.SafetyScore > MaxSafetyScore {
		errs = append(errs, "Safety score must be between 0 and 100")
	}

	return errs
}
