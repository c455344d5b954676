package stores

import (
	"context"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/cache"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
)

const statsCacheKey = "reference:dashboard-stats"

// DashboardStore fetches the aggregate stats view. Stats are computed
// backend-side; this store only mirrors and briefly caches them.
type DashboardStore struct {
	client *apiclient.Client
	cache  *cache.Cache
}

func NewDashboardStore(client *apiclient.Client, c *cache.Cache) *DashboardStore {
	return &DashboardStore{client: client, cache: c}
}

// Stats returns the dashboard aggregates, served from cache when fresh.
func (s *DashboardStore) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var cached models.DashboardStats
	if hit, err := s.cache.GetJSON(ctx, statsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	var env apiclient.Envelope
	if err := s.client.Get(ctx, "/dashboard/stats", &env, apiclient.WithResource("dashboard")); err != nil {
		return nil, err
	}

	var stats models.DashboardStats
	if err := env.Unmarshal(&stats, "stats", "dashboardStats"); err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, statsCacheKey, stats)
	return &stats, nil
}
