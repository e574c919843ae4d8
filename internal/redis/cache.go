package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// CacheStore caches dashboard aggregates in Redis. The dashboard is polled
// by every open browser tab, so the counts are served from a short-lived
// cache instead of hitting the aggregation queries on every request.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// OverviewCacheTTL bounds how stale the dashboard counts may be.
const OverviewCacheTTL = 15 * time.Second

const overviewCacheKey = "cache:dashboard:overview"

// GetOverview retrieves the cached fleet overview. Returns nil on cache miss.
func (s *CacheStore) GetOverview(ctx context.Context) (*repository.FleetOverview, error) {
	data, err := s.client.Get(ctx, overviewCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var overview repository.FleetOverview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// SetOverview stores the fleet overview in cache.
func (s *CacheStore) SetOverview(ctx context.Context, overview *repository.FleetOverview) error {
	data, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, overviewCacheKey, data, OverviewCacheTTL).Err()
}

// InvalidateOverview removes the cached fleet overview so the next read
// recomputes it. Normally the short TTL handles expiry on its own.
func (s *CacheStore) InvalidateOverview(ctx context.Context) error {
	return s.client.Del(ctx, overviewCacheKey).Err()
}
