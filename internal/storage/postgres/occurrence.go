package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ignis/internal/domain"
	"ignis/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OccurrenceRepo persists occurrence records. The address, requester and
// coordinates blocks are stored as jsonb; the two historical status columns
// are stored exactly as the domain carries them.
type OccurrenceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOccurrenceRepo(pool *pgxpool.Pool, logger *slog.Logger) *OccurrenceRepo {
	return &OccurrenceRepo{pool: pool, logger: logger}
}

const occurrenceColumns = `
	id, num_aviso, tipo_ocorrencia, natureza_inicial, received_at,
	forma_acionamento, status_geral, legacy_status,
	endereco, solicitante, coordenadas,
	created_by, created_at, updated_at
`

func (p *OccurrenceRepo) Create(ctx context.Context, occ *domain.Occurrence) error {
	const op = "postgres.Occurrence.Create"

	const query = `
		INSERT INTO occurrences (
			id, num_aviso, tipo_ocorrencia, natureza_inicial, received_at,
			forma_acionamento, status_geral, legacy_status,
			endereco, solicitante, coordenadas,
			created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	if occ.ID == uuid.Nil {
		occ.ID = uuid.New()
	}
	if occ.CreatedAt.IsZero() {
		occ.CreatedAt = time.Now().UTC()
	}
	occ.UpdatedAt = occ.CreatedAt

	_, err := p.pool.Exec(ctx, query,
		occ.ID,
		occ.TicketNumber,
		occ.Type,
		occ.InitialNature,
		nullableTime(occ.ReceivedAt),
		occ.Activation,
		occ.StatusGeral,
		occ.LegacyStatus,
		occ.Address,
		occ.Requester,
		occ.Coordinates,
		occ.CreatedBy,
		occ.CreatedAt,
		occ.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *OccurrenceRepo) List(ctx context.Context) ([]*domain.Occurrence, error) {
	const op = "postgres.Occurrence.List"

	query := `
		SELECT ` + occurrenceColumns + `
		FROM occurrences
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var occurrences []*domain.Occurrence
	for rows.Next() {
		occ, err := scanOccurrence(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		occurrences = append(occurrences, occ)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return occurrences, nil
}

func (p *OccurrenceRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Occurrence, error) {
	const op = "postgres.Occurrence.Get"

	query := `
		SELECT ` + occurrenceColumns + `
		FROM occurrences
		WHERE id = $1
	`

	row := p.pool.QueryRow(ctx, query, id)
	occ, err := scanOccurrence(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return occ, nil
}

func (p *OccurrenceRepo) Update(ctx context.Context, occ *domain.Occurrence) error {
	const op = "postgres.Occurrence.Update"

	const query = `
		UPDATE occurrences
		SET tipo_ocorrencia   = $2,
			natureza_inicial  = $3,
			received_at       = $4,
			forma_acionamento = $5,
			status_geral      = $6,
			legacy_status     = $7,
			endereco          = $8,
			solicitante       = $9,
			coordenadas       = $10,
			updated_at        = $11
		WHERE id = $1
	`

	occ.UpdatedAt = time.Now().UTC()

	cmd, err := p.pool.Exec(ctx, query,
		occ.ID,
		occ.Type,
		occ.InitialNature,
		nullableTime(occ.ReceivedAt),
		occ.Activation,
		occ.StatusGeral,
		occ.LegacyStatus,
		occ.Address,
		occ.Requester,
		occ.Coordinates,
		occ.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", occ.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *OccurrenceRepo) UpdateCoordinates(ctx context.Context, id uuid.UUID, coords *domain.Coordinates) error {
	const op = "postgres.Occurrence.UpdateCoordinates"

	const query = `
		UPDATE occurrences
		SET coordenadas = $2,
			updated_at  = $3
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, coords, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// UpdateStatus writes the canonical status into both historical columns.
// The WHERE guard refuses to move a record already parked in a terminal
// status; the caller decides whether that is a conflict or a no-op.
func (p *OccurrenceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	const op = "postgres.Occurrence.UpdateStatus"

	const query = `
		UPDATE occurrences
		SET status_geral  = $2,
			legacy_status = $2,
			updated_at    = $3
		WHERE id = $1
		  AND status_geral NOT IN ('finalized', 'canceled')
	`

	cmd, err := p.pool.Exec(ctx, query, id, string(status), time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM occurrences WHERE id = $1)`, id).Scan(&exists); err != nil {
			p.logger.Error("db exists check failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
			return e.WrapError(ctx, op, err)
		}
		if !exists {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	return nil
}

func scanOccurrence(row pgx.Row) (*domain.Occurrence, error) {
	var (
		occ        domain.Occurrence
		receivedAt *time.Time
	)
	err := row.Scan(
		&occ.ID,
		&occ.TicketNumber,
		&occ.Type,
		&occ.InitialNature,
		&receivedAt,
		&occ.Activation,
		&occ.StatusGeral,
		&occ.LegacyStatus,
		&occ.Address,
		&occ.Requester,
		&occ.Coordinates,
		&occ.CreatedBy,
		&occ.CreatedAt,
		&occ.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if receivedAt != nil {
		occ.ReceivedAt = *receivedAt
	}
	return &occ, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
