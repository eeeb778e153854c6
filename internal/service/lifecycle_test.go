package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"ignis/internal/domain"
	"ignis/internal/intake"
	"ignis/internal/service"
	mock_service "ignis/internal/service/mocks"
	"ignis/pkg/e"
	"ignis/pkg/logger"
)

func f64ptr(v float64) *float64 { return &v }
func strptr(s string) *string   { return &s }

func mustTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
}

func newIntake() *intake.Validator {
	return intake.New(logger.Discard())
}

func validDraft() domain.OccurrenceDraft {
	activation := domain.NewChoiceGroup("telephone", "radio", "in-person", "other")
	activation.Select("telephone")
	situation := domain.NewChoiceGroup("received", "in-service", "finalized", "canceled")
	situation.Select("received")

	return domain.OccurrenceDraft{
		TicketNumber:      "2025000000001",
		Type:              domain.TypeFire,
		InitialNature:     "Incêndio em residência",
		ReceiptDate:       "2025-03-10",
		ReceiptTime:       "14:30",
		Activation:        activation,
		Situation:         situation,
		RequesterName:     "Maria Silva",
		RequesterPhone:    "81999991111",
		RequesterRelation: "Vizinha",
		Street:            "Rua das Flores",
		Number:            "123",
		District:          "Boa Vista",
		Municipality:      "Recife",
		Latitude:          f64ptr(-8.05),
		Longitude:         f64ptr(-34.88),
		Accuracy:          12,
	}
}

func storedOccurrence(t *testing.T, status domain.Status) *domain.Occurrence {
	t.Helper()
	occ := &domain.Occurrence{
		ID:            uuid.New(),
		TicketNumber:  "2025000000001",
		Type:          domain.TypeFire,
		InitialNature: "Incêndio em residência",
		ReceivedAt:    mustTime(t),
		Activation:    domain.ActivationTelephone,
		Address: domain.Address{
			Street:       "Rua das Flores",
			Number:       "123",
			District:     "Boa Vista",
			Municipality: "Recife",
		},
		Requester: domain.Requester{
			Name:     "Maria Silva",
			Phone:    "81999991111",
			Relation: "Vizinha",
		},
		CreatedBy: "operator-1",
		CreatedAt: mustTime(t),
	}
	occ.SetStatus(status)
	return occ
}

// --- Create ---

func TestLifecycleService_Create_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	var got *domain.Occurrence
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, occ *domain.Occurrence) error {
			got = occ
			return nil
		}).
		Times(1)
	events.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	svc := service.NewLifecycleService(repo, newIntake(), events, logger.Discard())

	occ, fieldErrs, err := svc.Create(context.Background(), validDraft(), "operator-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fieldErrs != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if occ == nil || got == nil {
		t.Fatalf("expected occurrence")
	}
	if occ.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if occ.CreatedBy != "operator-1" {
		t.Fatalf("expected createdBy=operator-1 got=%s", occ.CreatedBy)
	}
	if st, ok := occ.CurrentStatus(); !ok || st != domain.StatusReceived {
		t.Fatalf("expected status received, got=%v ok=%v", st, ok)
	}
	if occ.Requester.Phone != "81999991111" {
		t.Fatalf("expected digit-only phone, got=%s", occ.Requester.Phone)
	}
}

func TestLifecycleService_Create_GeneratesTicket(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	draft := validDraft()
	draft.TicketNumber = ""

	occ, fieldErrs, err := svc.Create(context.Background(), draft, "operator-1")
	if err != nil || fieldErrs != nil {
		t.Fatalf("unexpected err=%v fieldErrs=%v", err, fieldErrs)
	}
	if len(occ.TicketNumber) != 13 {
		t.Fatalf("expected 13-char generated ticket, got=%q", occ.TicketNumber)
	}
}

func TestLifecycleService_Create_FieldErrors_NoRepoCall(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)
	// repo.Create must not be called

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	draft := validDraft()
	draft.InitialNature = ""
	draft.RequesterName = "  "

	occ, fieldErrs, err := svc.Create(context.Background(), draft, "operator-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if occ != nil {
		t.Fatalf("expected nil occurrence")
	}
	if fieldErrs == nil {
		t.Fatalf("expected field errors")
	}
	if _, ok := fieldErrs["naturezaInicial"]; !ok {
		t.Fatalf("expected naturezaInicial error, got=%v", fieldErrs)
	}
	if _, ok := fieldErrs["solNome"]; !ok {
		t.Fatalf("expected solNome error, got=%v", fieldErrs)
	}
}

func TestLifecycleService_Create_TicketCollision_Retries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	collision := e.Wrap("postgres.Occurrence.Create", e.ErrUniqueViolation)
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(collision).Times(1),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1),
	)
	events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewLifecycleService(repo, newIntake(), events, logger.Discard())

	_, fieldErrs, err := svc.Create(context.Background(), validDraft(), "operator-1")
	if err != nil || fieldErrs != nil {
		t.Fatalf("unexpected err=%v fieldErrs=%v", err, fieldErrs)
	}
}

func TestLifecycleService_Create_TicketCollision_GivesUp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)

	collision := e.Wrap("postgres.Occurrence.Create", e.ErrUniqueViolation)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(collision).
		Times(3)

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	_, _, err := svc.Create(context.Background(), validDraft(), "operator-1")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}
}

func TestLifecycleService_Create_EnqueueFailure_NotSurfaced(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	svc := service.NewLifecycleService(repo, newIntake(), events, logger.Discard())

	_, fieldErrs, err := svc.Create(context.Background(), validDraft(), "operator-1")
	if err != nil || fieldErrs != nil {
		t.Fatalf("expected success despite enqueue failure, err=%v fieldErrs=%v", err, fieldErrs)
	}
}

// --- Edit ---

func TestLifecycleService_Edit_OK_MergesPatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	existing := storedOccurrence(t, domain.StatusReceived)

	var updated *domain.Occurrence
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1),
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, occ *domain.Occurrence) error {
				updated = occ
				return nil
			}).
			Times(1),
	)
	events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewLifecycleService(repo, newIntake(), events, logger.Discard())

	req := domain.UpdateOccurrenceRequest{
		InitialNature: strptr("Incêndio em vegetação"),
	}

	got, fieldErrs, err := svc.Edit(context.Background(), existing.ID, req)
	if err != nil || fieldErrs != nil {
		t.Fatalf("unexpected err=%v fieldErrs=%v", err, fieldErrs)
	}
	if updated == nil {
		t.Fatalf("expected repo.Update call")
	}
	if got.InitialNature != "Incêndio em vegetação" {
		t.Fatalf("expected patched nature, got=%s", got.InitialNature)
	}
	// untouched fields survive
	if got.Requester.Name != existing.Requester.Name || got.TicketNumber != existing.TicketNumber {
		t.Fatalf("unexpected changes: %+v", got)
	}
}

func TestLifecycleService_Edit_Terminal_Rejected(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.Status{domain.StatusFinalized, domain.StatusCanceled} {
		status := status
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockOccurrenceRepository(ctrl)

			existing := storedOccurrence(t, status)
			repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1)
			// repo.Update must not be called

			svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

			_, _, err := svc.Edit(context.Background(), existing.ID, domain.UpdateOccurrenceRequest{
				InitialNature: strptr("late edit"),
			})
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, e.ErrTerminalStatus) {
				t.Fatalf("expected ErrTerminalStatus, got: %v", err)
			}
		})
	}
}

func TestLifecycleService_Edit_InvalidTransition_FieldError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)

	existing := storedOccurrence(t, domain.StatusInService)
	repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1)
	// no Update: the patch is rejected

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	situation := domain.NewChoiceGroup("received", "in-service", "finalized", "canceled")
	situation.Select("received")

	_, fieldErrs, err := svc.Edit(context.Background(), existing.ID, domain.UpdateOccurrenceRequest{
		Situation: &situation,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fieldErrs == nil {
		t.Fatalf("expected field errors for backward transition")
	}
	if _, ok := fieldErrs["situacaoOcorrencia"]; !ok {
		t.Fatalf("expected situacaoOcorrencia error, got=%v", fieldErrs)
	}
}

func TestLifecycleService_Edit_GetError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(nil, e.Wrap("postgres.Occurrence.Get", e.ErrNotFound)).Times(1)

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	_, _, err := svc.Edit(context.Background(), id, domain.UpdateOccurrenceRequest{})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// --- UpdateLocation ---

func TestLifecycleService_UpdateLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)

	existing := storedOccurrence(t, domain.StatusInService)

	var gotCoords *domain.Coordinates
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1),
		repo.EXPECT().UpdateCoordinates(gomock.Any(), existing.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, coords *domain.Coordinates) error {
				gotCoords = coords
				return nil
			}).
			Times(1),
	)

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	occ, err := svc.UpdateLocation(context.Background(), existing.ID, domain.UpdateLocationRequest{
		Latitude:  -8.11,
		Longitude: -34.92,
		Accuracy:  8,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotCoords == nil || gotCoords.Latitude != -8.11 || gotCoords.Longitude != -34.92 {
		t.Fatalf("coordinates mismatch: %+v", gotCoords)
	}
	if gotCoords.Timestamp.IsZero() {
		t.Fatalf("expected timestamp defaulted")
	}
	if occ.Coordinates != gotCoords {
		t.Fatalf("expected returned occurrence to carry new coordinates")
	}
}

func TestLifecycleService_UpdateLocation_TerminalAllowed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)

	existing := storedOccurrence(t, domain.StatusFinalized)
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1),
		repo.EXPECT().UpdateCoordinates(gomock.Any(), existing.ID, gomock.Any()).Return(nil).Times(1),
	)

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	if _, err := svc.UpdateLocation(context.Background(), existing.ID, domain.UpdateLocationRequest{
		Latitude:  -8.11,
		Longitude: -34.92,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLifecycleService_UpdateLocation_OutOfRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)
	// no repo calls at all

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	_, err := svc.UpdateLocation(context.Background(), uuid.New(), domain.UpdateLocationRequest{
		Latitude:  91,
		Longitude: -34.92,
	})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

// --- Cancel / Finalize ---

func TestLifecycleService_Finalize_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	existing := storedOccurrence(t, domain.StatusInService)
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1),
		repo.EXPECT().UpdateStatus(gomock.Any(), existing.ID, domain.StatusFinalized).Return(nil).Times(1),
	)
	events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewLifecycleService(repo, newIntake(), events, logger.Discard())

	if err := svc.Finalize(context.Background(), existing.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLifecycleService_Cancel_AlreadyTerminal_NoOp(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.Status{domain.StatusFinalized, domain.StatusCanceled} {
		status := status
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockOccurrenceRepository(ctrl)

			existing := storedOccurrence(t, status)
			repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1)
			// no UpdateStatus, no event

			svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

			if err := svc.Cancel(context.Background(), existing.ID); err != nil {
				t.Fatalf("expected idempotent no-op, got: %v", err)
			}
		})
	}
}

func TestLifecycleService_Cancel_RaceWithOtherActor_Absorbed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)

	// the record turned terminal between Get and UpdateStatus
	existing := storedOccurrence(t, domain.StatusInService)
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1),
		repo.EXPECT().UpdateStatus(gomock.Any(), existing.ID, domain.StatusCanceled).
			Return(e.Wrap("postgres.Occurrence.UpdateStatus", e.ErrConflict)).
			Times(1),
	)

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	if err := svc.Cancel(context.Background(), existing.ID); err != nil {
		t.Fatalf("expected race absorbed, got: %v", err)
	}
}

func TestLifecycleService_Finalize_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOccurrenceRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(nil, e.Wrap("postgres.Occurrence.Get", e.ErrNotFound)).Times(1)

	svc := service.NewLifecycleService(repo, newIntake(), nil, logger.Discard())

	if err := svc.Finalize(context.Background(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
