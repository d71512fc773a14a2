package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden", "debt_id", "d1")
	assert.Empty(t, buf.String())

	logger.Warn("shown", "debt_id", "d1")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "debt_id")
}
