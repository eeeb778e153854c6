package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ignis/internal/api"
	"ignis/internal/config"
	"ignis/internal/intake"
	"ignis/internal/redis"
	"ignis/internal/service"
	"ignis/internal/storage/postgres"
	"ignis/internal/workers"
	"ignis/pkg/logger"
)

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	Postgres       *postgres.Postgres
	Redis          *redis.Redis
	WebhookSender  *service.WebhookSender
	StatsRefresher *workers.StatsRefresher
	Cfg            *config.Config
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	statsCache := redis.NewStatsCache(redisClient)
	eventQueue := redis.NewEventQueue(redisClient.Client, "occurrences:events")

	intakeValidator := intake.New(logger)

	var events service.EventQueue
	if !cfg.Webhook.Disabled {
		events = eventQueue
	}

	lifecycleSvc := service.NewLifecycleService(storage.Occurrence, intakeValidator, events, logger)
	statsSvc := service.NewStatsService(storage.Occurrence, statsCache, cfg.Stats.CacheTTL, logger)

	srv := service.NewService(lifecycleSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	comps := &Components{
		logger:         logger,
		HttpServer:     httpServer,
		Postgres:       storage,
		Redis:          redisClient,
		StatsRefresher: workers.NewStatsRefresher(storage.Occurrence, statsCache, cfg.Stats.RefreshInterval, cfg.Stats.CacheTTL, logger),
		Cfg:            cfg,
	}
	if !cfg.Webhook.Disabled {
		comps.WebhookSender = service.NewWebhookSender(logger, cfg.Webhook, eventQueue)
	}

	return comps, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
