package observability

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps LOG_LEVEL values onto slog levels. Unknown values mean info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger and installs it as the slog default.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		AddSource:  lvl == slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
