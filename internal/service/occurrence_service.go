package service

import (
	"context"

	"ignis/internal/domain"
	"ignis/internal/intake"

	"github.com/google/uuid"
)

func (s *Service) Create(ctx context.Context, draft domain.OccurrenceDraft, createdBy string) (*domain.Occurrence, intake.FieldErrors, error) {
	return s.OccurrenceService.Create(ctx, draft, createdBy)
}

func (s *Service) List(ctx context.Context) ([]*domain.Occurrence, error) {
	return s.OccurrenceService.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Occurrence, error) {
	return s.OccurrenceService.Get(ctx, id)
}

func (s *Service) Edit(ctx context.Context, id uuid.UUID, req domain.UpdateOccurrenceRequest) (*domain.Occurrence, intake.FieldErrors, error) {
	return s.OccurrenceService.Edit(ctx, id, req)
}

func (s *Service) UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) (*domain.Occurrence, error) {
	return s.OccurrenceService.UpdateLocation(ctx, id, req)
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.OccurrenceService.Cancel(ctx, id)
}

func (s *Service) Finalize(ctx context.Context, id uuid.UUID) error {
	return s.OccurrenceService.Finalize(ctx, id)
}

func (s *Service) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.StatsService.GetDashboard(ctx)
}
