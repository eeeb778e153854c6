package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"ignis/internal/api/handlers/http/dashboard"
	"ignis/internal/api/handlers/http/occurrence"
	"ignis/internal/api/handlers/http/system"
	"ignis/internal/config"
	"ignis/internal/middleware"
	"ignis/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	occurrenceHandler := occurrence.NewHandler(logger, svc.OccurrenceService)
	dashboardHandler := dashboard.NewHandler(logger, svc.StatsService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, occurrenceHandler, dashboardHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, occurrenceHandler *occurrence.Handler, dashboardHandler *dashboard.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/occurrences", func(or chi.Router) {
			or.Use(middleware.APIKey(cfg.APIKey, logger))
			or.Use(middleware.Limit(10, 20, 10*time.Minute, logger))

			or.Post("/", occurrenceHandler.OccurrenceCreate)
			or.Get("/", occurrenceHandler.OccurrenceList)

			or.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", occurrenceHandler.OccurrenceGet)
				rr.Patch("/", occurrenceHandler.OccurrenceEdit)
				rr.Patch("/location", occurrenceHandler.OccurrenceUpdateLocation)
				rr.Patch("/cancel", occurrenceHandler.OccurrenceCancel)
				rr.Patch("/finalize", occurrenceHandler.OccurrenceFinalize)
			})
		})

		api.Route("/dashboard", func(dr chi.Router) {
			dr.Use(middleware.Limit(30, 60, 5*time.Minute, logger))
			dr.Get("/stats", dashboardHandler.DashboardStats)
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
