// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// devSecret is accepted only when ENV is "dev" or unset.
const devSecret = "dev-secret-change-me"

// DefaultDBPath is used when DB_PATH is unset.
const DefaultDBPath = "./data/ledger.db"

// Config holds every setting the server reads at startup.
type Config struct {
	Env           string
	Port          int
	DBPath        string
	JWTSecret     string
	TokenTTL      time.Duration
	NotifyWorkers int
	NotifyBuffer  int
	LogLevel      slog.Level
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the configuration from environment variables, applying
// defaults for anything unset.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Env:       get("ENV", "dev"),
		DBPath:    get("DB_PATH", DefaultDBPath),
		JWTSecret: get("JWT_SECRET", ""),
	}

	var errs []error
	atoi := func(key, fallback string, min int) int {
		n, err := strconv.Atoi(get(key, fallback))
		if err != nil || n < min {
			errs = append(errs, fmt.Errorf("%s must be an integer >= %d", key, min))
		}
		return n
	}
	cfg.Port = atoi("PORT", "8080", 1)
	cfg.NotifyWorkers = atoi("NOTIFY_WORKERS", "2", 1)
	cfg.NotifyBuffer = atoi("NOTIFY_BUFFER", "256", 0)

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be a positive duration"))
	}
	cfg.TokenTTL = ttl

	level, err := ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		errs = append(errs, err)
	}
	cfg.LogLevel = level

	if cfg.JWTSecret == "" {
		if cfg.Env != "dev" {
			errs = append(errs, errors.New("JWT_SECRET is required outside dev"))
		}
		cfg.JWTSecret = devSecret
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", s)
	}
}
