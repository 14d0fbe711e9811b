package db

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trivia-titans/internal/config"
)

var ErrNoDatabase = errors.New("DATABASE_URL is not set")

// Open connects to Postgres and applies the pool settings from cfg.
func Open(cfg config.Config) (*gorm.DB, error) {
	dsn := strings.TrimSpace(cfg.DatabaseURL)
	if dsn == "" {
		return nil, ErrNoDatabase
	}
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime())
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime())
	return conn, nil
}

// Migrate runs GORM auto-migrations for the core tables.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	if err := conn.AutoMigrate(
		&Game{},
		&Player{},
		&Question{},
		&HistoryEntry{},
		&Event{},
		&Session{},
		&QuestionLibrary{},
	); err != nil {
		return err
	}
	slog.Info("database migration complete")
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
