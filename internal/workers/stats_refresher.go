package workers

import (
	"context"
	"log/slog"
	"time"

	"ignis/internal/service"
)

// StatsRefresher re-aggregates dashboard metrics on an interval and warms
// the cache, so dashboard reads between ticks are served from the snapshot
// instead of a full listing.
type StatsRefresher struct {
	repo     service.StatsRepository
	cache    service.StatsCache
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
}

func NewStatsRefresher(repo service.StatsRepository, cache service.StatsCache, interval, ttl time.Duration, logger *slog.Logger) *StatsRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatsRefresher{
		repo:     repo,
		cache:    cache,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (w *StatsRefresher) Run(ctx context.Context) {
	w.logger.Info("stats refresher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stats refresher stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *StatsRefresher) refresh(ctx context.Context) {
	records, err := w.repo.List(ctx)
	if err != nil {
		w.logger.Error("stats refresh list failed", slog.Any("error", err))
		return
	}

	stats := service.Aggregate(records)

	// ttl outlives the interval so a slow tick never leaves a cold cache
	ttl := w.ttl
	if ttl < 2*w.interval {
		ttl = 2 * w.interval
	}
	if err := w.cache.Set(ctx, stats, ttl); err != nil {
		w.logger.Warn("stats cache warm failed", slog.Any("error", err))
		return
	}

	w.logger.Debug("dashboard stats refreshed", slog.Int("total", stats.Total))
}
