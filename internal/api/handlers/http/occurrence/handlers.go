package occurrence

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ignis/internal/domain"
	"ignis/internal/intake"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Occurrences interface {
	Create(ctx context.Context, draft domain.OccurrenceDraft, createdBy string) (*domain.Occurrence, intake.FieldErrors, error)
	List(ctx context.Context) ([]*domain.Occurrence, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Occurrence, error)
	Edit(ctx context.Context, id uuid.UUID, req domain.UpdateOccurrenceRequest) (*domain.Occurrence, intake.FieldErrors, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) (*domain.Occurrence, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Finalize(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	logger      *slog.Logger
	Occurrences Occurrences
}

func NewHandler(logger *slog.Logger, occurrences Occurrences) *Handler {
	return &Handler{
		logger:      logger,
		Occurrences: occurrences,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// actor resolves the acting user from the X-User header. The frontend always
// sends it; a missing value is recorded as-is rather than rejected.
func actor(r *http.Request) string {
	if u := r.Header.Get("X-User"); u != "" {
		return u
	}
	return "anonymous"
}

func (h *Handler) OccurrenceCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OccurrenceCreate", slog.String("remote", r.RemoteAddr))

	var draft domain.OccurrenceDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	createdBy := actor(r)
	l.Info("creating occurrence",
		slog.String("numAviso", draft.TicketNumber),
		slog.String("tipoOcorrencia", string(draft.Type)),
		slog.String("createdBy", createdBy),
	)

	occ, fieldErrs, err := h.Occurrences.Create(r.Context(), draft, createdBy)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if fieldErrs != nil {
		h.writeFieldErrors(w, r, fieldErrs)
		return
	}

	l.Info("occurrence created",
		slog.String("id", occ.ID.String()),
		slog.String("numAviso", occ.TicketNumber),
	)
	h.writeJSON(w, http.StatusCreated, occ)
}

func (h *Handler) OccurrenceList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OccurrenceList", slog.String("remote", r.RemoteAddr))

	occurrences, err := h.Occurrences.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if occurrences == nil {
		occurrences = []*domain.Occurrence{}
	}

	l.Info("occurrences listed", slog.Int("count", len(occurrences)))
	h.writeJSON(w, http.StatusOK, occurrences)
}

func (h *Handler) OccurrenceGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OccurrenceGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	occ, err := h.Occurrences.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, occ)
}

func (h *Handler) OccurrenceEdit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OccurrenceEdit", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateOccurrenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	occ, fieldErrs, err := h.Occurrences.Edit(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if fieldErrs != nil {
		h.writeFieldErrors(w, r, fieldErrs)
		return
	}

	l.Info("occurrence updated", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, occ)
}

func (h *Handler) OccurrenceUpdateLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OccurrenceUpdateLocation", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	occ, err := h.Occurrences.UpdateLocation(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("occurrence location updated", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, occ)
}

func (h *Handler) OccurrenceCancel(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OccurrenceCancel", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Occurrences.Cancel(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("occurrence canceled", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) OccurrenceFinalize(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("OccurrenceFinalize", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Occurrences.Finalize(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("occurrence finalized", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
