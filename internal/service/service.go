package service

import (
	"context"
	"time"

	"ignis/internal/domain"
	"ignis/internal/intake"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type OccurrenceService interface {
	Create(ctx context.Context, draft domain.OccurrenceDraft, createdBy string) (*domain.Occurrence, intake.FieldErrors, error)
	List(ctx context.Context) ([]*domain.Occurrence, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Occurrence, error)
	Edit(ctx context.Context, id uuid.UUID, req domain.UpdateOccurrenceRequest) (*domain.Occurrence, intake.FieldErrors, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) (*domain.Occurrence, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Finalize(ctx context.Context, id uuid.UUID) error
}

type StatsService interface {
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
}

// OccurrenceRepository is the persistence gateway the lifecycle persists
// through. The lifecycle itself holds no storage and performs no I/O.
type OccurrenceRepository interface {
	Create(ctx context.Context, occ *domain.Occurrence) error
	List(ctx context.Context) ([]*domain.Occurrence, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Occurrence, error)
	Update(ctx context.Context, occ *domain.Occurrence) error
	UpdateCoordinates(ctx context.Context, id uuid.UUID, coords *domain.Coordinates) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

// StatsCache holds the last computed dashboard snapshot.
type StatsCache interface {
	Get(ctx context.Context) (*domain.DashboardStats, error)
	Set(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error
}

// EventQueue receives lifecycle events for asynchronous webhook delivery.
type EventQueue interface {
	Enqueue(ctx context.Context, event domain.OccurrenceEvent) error
}

type Service struct {
	OccurrenceService OccurrenceService
	StatsService      StatsService
}

func NewService(occurrenceService OccurrenceService, statsService StatsService) *Service {
	return &Service{
		OccurrenceService: occurrenceService,
		StatsService:      statsService,
	}
}
