package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"wastetrack/internal/api"
	"wastetrack/internal/api/handlers/http/system"
	"wastetrack/internal/auth"
	"wastetrack/internal/config"
	"wastetrack/internal/metrics"
	"wastetrack/internal/redis"
	"wastetrack/internal/render"
	"wastetrack/internal/service"
	"wastetrack/internal/storage/postgres"
	"wastetrack/internal/workers"
	"wastetrack/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Notifier   *workers.Notifier // nil when notifications are disabled
	Metrics    *metrics.Collector
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	collector, err := metrics.New(nil)
	if err != nil {
		storage.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init metrics: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		storage.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init token service: %w", err)
	}

	renderer, err := render.NewRenderer(cfg.Http.TemplatesGlob)
	if err != nil {
		storage.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	var (
		events   service.EventQueue
		notifier *workers.Notifier
	)
	if cfg.Notify.Disabled {
		logger.Info("Notifications disabled")
	} else {
		queue := redis.NewEventQueue(redisClient.Client, cfg.Notify.QueueKey)
		events = queue
		err := collector.WatchQueue(func() (int64, error) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return queue.Len(ctx)
		})
		if err != nil {
			storage.Close()
			_ = redisClient.Close()
			return nil, fmt.Errorf("failed to register queue metric: %w", err)
		}
		notifier = workers.NewNotifier(queue, cfg.Notify.URL, cfg.Notify.Workers, collector, logger)
	}

	centerCache := redis.NewCenterCache(redisClient.Client, cfg.Cache.CentersTTL)

	srv := service.NewService(
		service.NewReportService(storage.Report, storage.Center, events, collector, logger),
		service.NewCenterService(storage.Center, storage.User, centerCache, logger),
		service.NewUserService(storage.User, centerCache, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, logger),
		service.NewDashboardService(storage.Report, storage.Center, storage.Stat, logger),
	)

	httpServer := api.NewServer(cfg, logger, srv, tokens, storage.User, renderer, collector, map[string]system.Pinger{
		"postgres": storage.Pool,
		"redis":    redisClient,
	})
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Notifier:   notifier,
		Metrics:    collector,
	}, nil
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
	c.logger.Info("Shutting down components")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
