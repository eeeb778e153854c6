package occurrence

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ignis/internal/intake"
	"ignis/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrTerminalStatus):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "occurrence is in a terminal status"})
	case errors.Is(err, e.ErrInvalidCoordinates):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid coordinates"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// writeFieldErrors renders intake validation failures with the per-field
// messages the form renders next to its inputs.
func (h *Handler) writeFieldErrors(w http.ResponseWriter, r *http.Request, fieldErrs intake.FieldErrors) {
	h.log(r).Warn("validation failed", slog.Int("fields", len(fieldErrs)))
	h.writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"fields": fieldErrs,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
