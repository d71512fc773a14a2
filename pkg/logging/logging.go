// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logger := logging.SetupWithLevel(cfg.LogLevel)
//	logger.Info("Server starting", "addr", cfg.Addr())
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// SetupWithLevel installs a stderr tint logger at level as the slog default
// and returns it.
func SetupWithLevel(level slog.Level) *slog.Logger {
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger
}

// Discard returns a logger that drops everything. Tests use it to keep
// output quiet.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1)
}
