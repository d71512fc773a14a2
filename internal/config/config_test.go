package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "./data/ledger.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 2, cfg.NotifyWorkers)
	assert.Equal(t, 256, cfg.NotifyBuffer)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, devSecret, cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"PORT":           "9090",
		"DB_PATH":        "/tmp/x.db",
		"JWT_SECRET":     "s3cret",
		"TOKEN_TTL":      "90m",
		"NOTIFY_WORKERS": "4",
		"NOTIFY_BUFFER":  "0",
		"LOG_LEVEL":      "DEBUG",
		"ENV":            "prod",
	}))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 4, cfg.NotifyWorkers)
	assert.Equal(t, 0, cfg.NotifyBuffer)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"bad port", map[string]string{"PORT": "http"}, "PORT"},
		{"zero workers", map[string]string{"NOTIFY_WORKERS": "0"}, "NOTIFY_WORKERS"},
		{"bad ttl", map[string]string{"TOKEN_TTL": "forever"}, "TOKEN_TTL"},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"missing secret in prod", map[string]string{"ENV": "prod"}, "JWT_SECRET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(env(tt.vars))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
