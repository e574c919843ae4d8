package redis

import (
	"context"
	"time"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// LockStoreInterface defines the interface for distributed dispatch locking.
type LockStoreInterface interface {
	AcquireVehicleLock(ctx context.Context, vehicleID string, ttl time.Duration) (bool, error)
	ReleaseVehicleLock(ctx context.Context, vehicleID string) error
	AcquireDriverLock(ctx context.Context, driverID string, ttl time.Duration) (bool, error)
	ReleaseDriverLock(ctx context.Context, driverID string) error
}

// CacheStoreInterface defines the interface for dashboard caching.
type CacheStoreInterface interface {
	GetOverview(ctx context.Context) (*repository.FleetOverview, error)
	SetOverview(ctx context.Context, overview *repository.FleetOverview) error
	InvalidateOverview(ctx context.Context) error
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface  = (*LockStore)(nil)
	_ CacheStoreInterface = (*CacheStore)(nil)
)
