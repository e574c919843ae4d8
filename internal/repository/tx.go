package repository

import "context"

// TxRepos bundles the transaction-scoped repositories handed to a TxRunner
// callback. Every write made through them lands in the same transaction.
type TxRepos struct {
	Vehicles    VehicleRepository
	Drivers     DriverRepository
	Trips       TripRepository
	Maintenance MaintenanceRepository
}

// TxRunner executes a function inside a single storage transaction. If the
// function returns an error the transaction is rolled back; otherwise it is
// committed. The dispatch engine relies on this to keep the trip, vehicle,
// and driver writes of one status transition atomic.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(r TxRepos) error) error
}
