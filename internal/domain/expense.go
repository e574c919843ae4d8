package domain

import "time"

// ExpenseType represents the category of an expense.
type ExpenseType string

const (
	ExpenseTypeFuel   ExpenseType = "fuel"
	ExpenseTypeRepair ExpenseType = "repair"
	ExpenseTypeOther  ExpenseType = "other"
)

// Expense is a pure ledger entry against a vehicle, optionally tied to a
// driver and a trip. It carries no status and no side effects.
type Expense struct {
	ID        string
	VehicleID string
	DriverID  string
	TripID    string
	Type      ExpenseType
	Liters    float64
	Amount    float64
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// Validate checks the expense fields and returns all violations found.
func (e *Expense) Validate() ValidationErrors {
	var errs ValidationErrors

	if e.VehicleID == "" {
		errs = append(errs, "Vehicle is required")
	}
	if e.Amount < 0 {
		errs = append(errs, "Amount must be a non-negative number")
	}
	if e.Type != "" {
		switch e.Type {
		case ExpenseTypeFuel, ExpenseTypeRepair, ExpenseTypeOther:
		default:
			errs = append(errs, "Type must be one of: fuel, repair, other")
		}
	}
	if e.Liters < 0 {
		errs = append(errs, "Liters must be a non-negative number")
	}

	return errs
}
