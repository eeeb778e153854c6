//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"ignis/internal/domain"
	"ignis/pkg/e"
	"ignis/pkg/logger"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS occurrences (
			id uuid PRIMARY KEY,
			num_aviso text NOT NULL UNIQUE,
			tipo_ocorrencia text NOT NULL,
			natureza_inicial text NOT NULL,
			received_at timestamptz,
			forma_acionamento text NOT NULL,
			status_geral text NOT NULL,
			legacy_status text NOT NULL DEFAULT '',
			endereco jsonb NOT NULL,
			solicitante jsonb NOT NULL,
			coordenadas jsonb,
			created_by text NOT NULL,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateOccurrences(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE occurrences`)
	if err != nil {
		t.Fatalf("truncate occurrences: %v", err)
	}
}

func newTestRepo() *OccurrenceRepo {
	return NewOccurrenceRepo(testPool, logger.Discard())
}

func sampleOccurrence(ticket string) *domain.Occurrence {
	occ := &domain.Occurrence{
		TicketNumber:  ticket,
		Type:          domain.TypeFire,
		InitialNature: "Incêndio em residência",
		ReceivedAt:    time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
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
		Coordinates: &domain.Coordinates{
			Latitude:  -8.05,
			Longitude: -34.88,
			Accuracy:  12,
			Timestamp: time.Date(2025, 3, 10, 14, 31, 0, 0, time.UTC),
		},
		CreatedBy: "operator-1",
	}
	occ.SetStatus(domain.StatusReceived)
	return occ
}

func TestOccurrenceRepo_Create_RoundTrip(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	occ := sampleOccurrence("2025000000001")
	if err := repo.Create(context.Background(), occ); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if occ.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if occ.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}

	got, err := repo.Get(context.Background(), occ.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.TicketNumber != occ.TicketNumber {
		t.Fatalf("ticket mismatch got=%s want=%s", got.TicketNumber, occ.TicketNumber)
	}
	if got.Address != occ.Address {
		t.Fatalf("address mismatch got=%+v want=%+v", got.Address, occ.Address)
	}
	if got.Requester != occ.Requester {
		t.Fatalf("requester mismatch got=%+v want=%+v", got.Requester, occ.Requester)
	}
	if got.Coordinates == nil || got.Coordinates.Latitude != -8.05 || got.Coordinates.Longitude != -34.88 {
		t.Fatalf("coordinates mismatch got=%+v", got.Coordinates)
	}
	if !got.ReceivedAt.Equal(occ.ReceivedAt) {
		t.Fatalf("received_at mismatch got=%v want=%v", got.ReceivedAt, occ.ReceivedAt)
	}
	if st, ok := got.CurrentStatus(); !ok || st != domain.StatusReceived {
		t.Fatalf("status mismatch got=%v ok=%v", st, ok)
	}
}

func TestOccurrenceRepo_Create_NullOptionalFields(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	occ := sampleOccurrence("2025000000002")
	occ.ReceivedAt = time.Time{}
	occ.Coordinates = nil

	if err := repo.Create(context.Background(), occ); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), occ.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.ReceivedAt.IsZero() {
		t.Fatalf("expected zero received_at, got %v", got.ReceivedAt)
	}
	if got.Coordinates != nil {
		t.Fatalf("expected nil coordinates, got %+v", got.Coordinates)
	}
}

func TestOccurrenceRepo_Create_DuplicateTicket(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	first := sampleOccurrence("2025000000003")
	if err := repo.Create(context.Background(), first); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	second := sampleOccurrence("2025000000003")
	err := repo.Create(context.Background(), second)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}
}

func TestOccurrenceRepo_Update_OK(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	occ := sampleOccurrence("2025000000004")
	if err := repo.Create(context.Background(), occ); err != nil {
		t.Fatalf("Create: %v", err)
	}

	occ.InitialNature = "Incêndio em vegetação"
	occ.Address.Municipality = "Olinda"
	occ.SetStatus(domain.StatusInService)

	if err := repo.Update(context.Background(), occ); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(context.Background(), occ.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.InitialNature != "Incêndio em vegetação" || got.Address.Municipality != "Olinda" {
		t.Fatalf("unexpected updated row: %+v", got)
	}
	if st, _ := got.CurrentStatus(); st != domain.StatusInService {
		t.Fatalf("status mismatch got=%v", st)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("expected updated_at after created_at")
	}
}

func TestOccurrenceRepo_Update_NotFound(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	occ := sampleOccurrence("2025000000005")
	occ.ID = uuid.New()

	err := repo.Update(context.Background(), occ)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestOccurrenceRepo_UpdateCoordinates(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	occ := sampleOccurrence("2025000000006")
	occ.Coordinates = nil
	if err := repo.Create(context.Background(), occ); err != nil {
		t.Fatalf("Create: %v", err)
	}

	coords := &domain.Coordinates{
		Latitude:  -8.11,
		Longitude: -34.92,
		Accuracy:  8,
		Timestamp: time.Now().UTC(),
	}
	if err := repo.UpdateCoordinates(context.Background(), occ.ID, coords); err != nil {
		t.Fatalf("UpdateCoordinates: %v", err)
	}

	got, err := repo.Get(context.Background(), occ.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Coordinates == nil || got.Coordinates.Latitude != -8.11 || got.Coordinates.Longitude != -34.92 {
		t.Fatalf("coordinates mismatch got=%+v", got.Coordinates)
	}
}

func TestOccurrenceRepo_UpdateStatus_TerminalGuard(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	occ := sampleOccurrence("2025000000007")
	if err := repo.Create(context.Background(), occ); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.UpdateStatus(context.Background(), occ.ID, domain.StatusFinalized); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	err := repo.UpdateStatus(context.Background(), occ.ID, domain.StatusInService)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}

	got, err := repo.Get(context.Background(), occ.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if st, _ := got.CurrentStatus(); st != domain.StatusFinalized {
		t.Fatalf("expected terminal status preserved, got %v", st)
	}
}

func TestOccurrenceRepo_UpdateStatus_NotFound(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCanceled)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestOccurrenceRepo_List_NewestFirst(t *testing.T) {
	truncateOccurrences(t)

	repo := newTestRepo()

	for i := 0; i < 3; i++ {
		occ := sampleOccurrence(fmt.Sprintf("202500000001%d", i))
		occ.CreatedAt = time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC)
		if err := repo.Create(context.Background(), occ); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected len=3 got=%d", len(list))
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("expected DESC order by created_at")
	}
}
