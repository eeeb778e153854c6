package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"ignis/internal/domain"
)

const (
	topMunicipalities = 10
	maxDailyBuckets   = 30

	// bucket for records persisted without a municipality
	missingMunicipality = "Não informado"
)

type StatsRepository interface {
	List(ctx context.Context) ([]*domain.Occurrence, error)
}

type statsService struct {
	repo   StatsRepository
	cache  StatsCache
	ttl    time.Duration
	logger *slog.Logger
}

func NewStatsService(repo StatsRepository, cache StatsCache, ttl time.Duration, logger *slog.Logger) StatsService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &statsService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// GetDashboard serves the cached snapshot when fresh and otherwise
// recomputes from a full listing. Cache failures degrade to recomputation.
func (s *statsService) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("stats cache read failed", slog.Any("error", err))
		}
		if cached != nil {
			return cached, nil
		}
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := Aggregate(records)

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats, s.ttl); err != nil {
			s.logger.Warn("stats cache write failed", slog.Any("error", err))
		}
	}
	return stats, nil
}

// Aggregate derives the dashboard metrics from a snapshot of the record
// collection in a single pass. Unknown status strings keep the record in
// the total but in no bucket; records without a parseable receipt timestamp
// are skipped by the daily series only. Truncation (top 10 municipalities,
// latest 30 days) happens after the full scan, never mid-stream.
func Aggregate(records []*domain.Occurrence) *domain.DashboardStats {
	stats := &domain.DashboardStats{
		Total:          len(records),
		ByMunicipality: []domain.MunicipalityCount{},
		ByDay:          []domain.DayCount{},
	}

	municipalities := make(map[string]int)
	days := make(map[string]int)

	for _, rec := range records {
		if status, ok := domain.NormalizeStatus(rec.StatusGeral, rec.LegacyStatus); ok {
			switch status.Bucket() {
			case domain.StatusReceived:
				stats.Received++
			case domain.StatusInService:
				stats.InService++
			case domain.StatusFinalized:
				stats.Finalized++
			case domain.StatusCanceled:
				stats.Canceled++
			}
		}

		name := strings.TrimSpace(rec.Address.Municipality)
		if name == "" {
			name = missingMunicipality
		}
		municipalities[name]++

		if !rec.ReceivedAt.IsZero() {
			days[rec.ReceivedAt.UTC().Format("2006-01-02")]++
		}
	}

	for name, total := range municipalities {
		stats.ByMunicipality = append(stats.ByMunicipality, domain.MunicipalityCount{Name: name, Total: total})
	}
	sort.Slice(stats.ByMunicipality, func(i, j int) bool {
		a, b := stats.ByMunicipality[i], stats.ByMunicipality[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Name < b.Name
	})
	if len(stats.ByMunicipality) > topMunicipalities {
		stats.ByMunicipality = stats.ByMunicipality[:topMunicipalities]
	}

	for date, total := range days {
		stats.ByDay = append(stats.ByDay, domain.DayCount{Date: date, Total: total})
	}
	sort.Slice(stats.ByDay, func(i, j int) bool {
		return stats.ByDay[i].Date < stats.ByDay[j].Date
	})
	if len(stats.ByDay) > maxDailyBuckets {
		stats.ByDay = stats.ByDay[len(stats.ByDay)-maxDailyBuckets:]
	}

	return stats
}
