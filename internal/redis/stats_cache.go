package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ignis/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// StatsCache keeps the last aggregated dashboard snapshot so repeated
// dashboard loads do not re-scan the whole collection.
type StatsCache struct {
	client *goredis.Client
	key    string
}

func NewStatsCache(r *Redis) *StatsCache {
	return &StatsCache{
		client: r.Client,
		key:    "dashboard:stats",
	}
}

// Get returns (nil, nil) on a cache miss.
func (c *StatsCache) Get(ctx context.Context) (*domain.DashboardStats, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
