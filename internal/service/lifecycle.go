package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ignis/internal/domain"
	"ignis/internal/intake"
	"ignis/pkg/e"
	"ignis/pkg/format"
	"ignis/pkg/validator"

	"github.com/google/uuid"
)

// createMaxAttempts bounds ticket regeneration when the storage uniqueness
// constraint rejects a generated number.
const createMaxAttempts = 3

type LifecycleService struct {
	repo   OccurrenceRepository
	intake *intake.Validator
	events EventQueue
	logger *slog.Logger
	now    func() time.Time
}

func NewLifecycleService(repo OccurrenceRepository, iv *intake.Validator, events EventQueue, logger *slog.Logger) *LifecycleService {
	return &LifecycleService{
		repo:   repo,
		intake: iv,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the intake draft and persists the new occurrence. The
// acting user is an explicit argument; nothing is read from ambient state.
// A ticket collision reported by the gateway is retried with a regenerated
// number instead of surfacing to the caller.
func (s *LifecycleService) Create(ctx context.Context, draft domain.OccurrenceDraft, createdBy string) (*domain.Occurrence, intake.FieldErrors, error) {
	if draft.TicketNumber == "" {
		draft.TicketNumber = format.GenerateTicketNumber(s.now())
	}

	occ, fieldErrs := s.intake.Validate(draft, intake.Options{RequireCoordinates: true})
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	occ.ID = uuid.New()
	occ.CreatedBy = createdBy

	for attempt := 1; ; attempt++ {
		err := s.repo.Create(ctx, occ)
		if err == nil {
			break
		}
		if !errors.Is(err, e.ErrUniqueViolation) || attempt >= createMaxAttempts {
			return nil, nil, err
		}
		s.logger.Warn("ticket number collision, regenerating",
			slog.String("numAviso", occ.TicketNumber),
			slog.Int("attempt", attempt),
		)
		occ.TicketNumber = format.GenerateTicketNumber(s.now())
	}

	s.publish(ctx, occ, domain.EventCreated, createdBy)
	return occ, nil, nil
}

func (s *LifecycleService) List(ctx context.Context) ([]*domain.Occurrence, error) {
	return s.repo.List(ctx)
}

func (s *LifecycleService) Get(ctx context.Context, id uuid.UUID) (*domain.Occurrence, error) {
	return s.repo.Get(ctx, id)
}

// Edit re-validates only the supplied patch fields and merges them into the
// stored record. Edits against a terminal occurrence are rejected.
func (s *LifecycleService) Edit(ctx context.Context, id uuid.UUID, req domain.UpdateOccurrenceRequest) (*domain.Occurrence, intake.FieldErrors, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if status, ok := existing.CurrentStatus(); ok && status.IsTerminal() {
		return nil, nil, e.Wrap("service.Lifecycle.Edit", e.ErrTerminalStatus)
	}

	merged, fieldErrs := s.intake.ValidatePatch(existing, req)
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		return nil, nil, err
	}
	s.publish(ctx, merged, domain.EventUpdated, "")
	return merged, nil, nil
}

// UpdateLocation applies the coordinate-only patch. It is a logging action,
// not a workflow transition, so it is legal in any status, terminal included.
func (s *LifecycleService) UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) (*domain.Occurrence, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return nil, e.Wrap("service.Lifecycle.UpdateLocation", e.ErrInvalidCoordinates)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ts := req.Timestamp
	if ts.IsZero() {
		ts = s.now().UTC()
	}
	coords := &domain.Coordinates{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: ts,
	}
	if err := s.repo.UpdateCoordinates(ctx, id, coords); err != nil {
		return nil, err
	}
	existing.Coordinates = coords
	return existing, nil
}

func (s *LifecycleService) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.transitionTerminal(ctx, id, domain.StatusCanceled, domain.EventCanceled)
}

func (s *LifecycleService) Finalize(ctx context.Context, id uuid.UUID) error {
	return s.transitionTerminal(ctx, id, domain.StatusFinalized, domain.EventFinalized)
}

// transitionTerminal moves a non-terminal occurrence into finalized or
// canceled. Repeating the call on an already-terminal record is a no-op
// success, which also absorbs the two-actors race: whoever lost the write
// still gets a success for a record that ended up terminal.
func (s *LifecycleService) transitionTerminal(ctx context.Context, id uuid.UUID, target domain.Status, action domain.EventAction) error {
	occ, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if status, ok := occ.CurrentStatus(); ok && status.IsTerminal() {
		s.logger.Debug("terminal transition no-op",
			slog.String("id", id.String()),
			slog.String("status", string(status)),
			slog.String("target", string(target)),
		)
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, e.ErrConflict) {
			return nil
		}
		return err
	}

	s.publish(ctx, occ, action, "")
	return nil
}

// publish is best effort: a queue failure is logged, never surfaced, so a
// persisted write is not reported as failed because of the event log.
func (s *LifecycleService) publish(ctx context.Context, occ *domain.Occurrence, action domain.EventAction, actor string) {
	if s.events == nil {
		return
	}
	event := domain.OccurrenceEvent{
		ID:           uuid.New(),
		OccurrenceID: occ.ID,
		TicketNumber: occ.TicketNumber,
		Action:       action,
		Actor:        actor,
		At:           s.now().UTC(),
	}
	if err := s.events.Enqueue(ctx, event); err != nil {
		s.logger.Error("enqueue occurrence event failed",
			slog.String("action", string(action)),
			slog.String("occurrence_id", occ.ID.String()),
			slog.Any("error", err),
		)
	}
}
