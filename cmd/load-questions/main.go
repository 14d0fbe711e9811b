package main

import (
	"flag"
	"log/slog"
	"os"

	"trivia-titans/internal/config"
	"trivia-titans/internal/db"
	"trivia-titans/internal/observability"
	"trivia-titans/internal/trivia"
)

func main() {
	filePath := flag.String("file", "questions.csv", "path to questions csv with a category,question,answer,difficulty header")
	locale := flag.String("locale", trivia.DefaultLocale, "language of the questions")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}
	cfg := config.Load()
	logger := observability.NewLogger(os.Stderr, cfg.LogLevel)

	conn, err := db.Open(cfg)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(conn); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	stats, err := db.LoadQuestionLibrary(conn, *filePath, *locale)
	if err != nil {
		logger.Error("failed to load questions", "file", *filePath, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded questions",
		"file", *filePath,
		"locale", *locale,
		"inserted", stats.Inserted,
		"duplicate", stats.Duplicate,
		"invalid", stats.Invalid,
	)
}
