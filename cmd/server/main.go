package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"trivia-titans/internal/ai"
	"trivia-titans/internal/config"
	"trivia-titans/internal/db"
	"trivia-titans/internal/observability"
	"trivia-titans/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}
	opts := &options{game: config.Load()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newCmd(opts)
	cmd.SetContext(ctx)
	cobra.CheckErr(cmd.Execute())
}

func serve(ctx context.Context, opts *options) error {
	cfg := opts.game
	logger := observability.NewLogger(os.Stderr, cfg.LogLevel)

	tracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:    "trivia-titans",
		ServiceVersion: releaseVersion,
		Environment:    os.Getenv("ENV"),
		Enabled:        cfg.OTelEnabled,
		Endpoint:       cfg.OTelEndpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()

	conn, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}

	deps := server.Deps{Logger: logger}
	client, err := ai.New(ai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Locale:  cfg.QuestionLocale,
		Timeout: cfg.AITimeout(),
	}, logger)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		logger.Warn("OPENAI_API_KEY not set; AI questions and summaries disabled")
	case err != nil:
		return err
	default:
		deps.Generator = client
		deps.Summarizer = client
		deps.Analyzer = client
	}

	srv := server.New(conn, cfg, deps)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:    opts.addr(),
		Handler: srv.Handler(),
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("trivia-titans listening", "addr", httpServer.Addr, "persistence", conn != nil, "ai", deps.Generator != nil)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// openDatabase connects when a DSN is configured. Without one the server
// runs in memory and finished games are shared through local result links.
func openDatabase(cfg config.Config, logger *slog.Logger) (*gorm.DB, error) {
	conn, err := db.Open(cfg)
	if errors.Is(err, db.ErrNoDatabase) {
		logger.Warn("DATABASE_URL not set; games will not be persisted")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}
