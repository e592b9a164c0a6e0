package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("Error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("chatty"))
}

func TestSetupLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "artgrid.log")

	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "INFO"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("page fetched", "page", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"msg":"page fetched"`)
	assert.Contains(t, string(data), `"page":3`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNullLoggerDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		NullLogger().Error("dropped", "error", os.ErrClosed)
	})
}
