package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"trivia-titans/internal/config"
	"trivia-titans/internal/observability"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}
	cfg := config.Load()
	logger := observability.NewLogger(os.Stderr, cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is not set")
		os.Exit(1)
	}
	m, err := migrate.New("file://db/migrations", cfg.DatabaseURL)
	if err != nil {
		logger.Error("migration setup failed", "error", err)
		os.Exit(1)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		logger.Warn("could not read migration version", "error", err)
	}
	logger.Info("database migrations applied", "version", version, "dirty", dirty)
}
