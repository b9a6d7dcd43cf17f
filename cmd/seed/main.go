package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"wastetrack/internal/auth"
	"wastetrack/internal/components"
	"wastetrack/internal/config"
	"wastetrack/internal/storage/postgres"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config failed", "err", err)
		os.Exit(1)
	}
	logger := components.SetupLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("could not connect to postgres", "err", err)
		os.Exit(1)
	}
	defer storage.Close()

	s := &Seeder{
		users:   storage.User,
		centers: storage.Center,
		reports: storage.Report,
		hasher:  auth.NewBcryptHasher(bcrypt.DefaultCost),
		logger:  logger,
	}

	sum, err := s.Seed(ctx)
	if err != nil {
		logger.Error("seeding failed", "err", err)
		storage.Close()
		os.Exit(1)
	}

	logger.Info("sample data ready",
		slog.Int("users_created", sum.UsersCreated),
		slog.Int("centers_created", sum.CentersCreated),
		slog.Int("reports_created", sum.ReportsCreated),
	)
	logger.Info("credentials: admin/admin123, staff1|staff2/staff123, citizen1..3/citizen123")
}
