package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ignis/internal/domain"
	"ignis/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type StatsGetter interface {
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type Handler struct {
	logger *slog.Logger
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("DashboardStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.GetDashboard(r.Context())
	if err != nil {
		l.Error("Stats.GetDashboard failed", slog.Any("error", err))
		switch {
		case errors.Is(err, e.ErrDeadline) || errors.Is(err, e.ErrCanceled):
			h.writeJSON(w, http.StatusGatewayTimeout, map[string]string{"error": "timeout"})
		default:
			h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
		return
	}

	l.Info("dashboard stats served", slog.Int("total", stats.Total))
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
