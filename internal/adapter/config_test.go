package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.artic.edu/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 12, cfg.Paging.PageSize)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Empty(t, cfg.Metrics.Listen)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
api:
  base_url: http://localhost:8080/api/v1
  timeout: 3s
paging:
  page_size: 25
logging:
  level: debug
`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 25, cfg.Paging.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "artgrid (terminal client)", cfg.API.UserAgent)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paging:\n  page_size: 25\n"), 0644))

	t.Setenv("ARTGRID_PAGING_PAGE_SIZE", "50")
	t.Setenv("ARTGRID_METRICS_LISTEN", "127.0.0.1:9464")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Paging.PageSize)
	assert.Equal(t, "127.0.0.1:9464", cfg.Metrics.Listen)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Paging.PageSize = 5
	cfg.API.Timeout = 40 * time.Second
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Paging.PageSize)
	assert.Equal(t, 40*time.Second, loaded.API.Timeout)
}

func TestValidateJoinsProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = "ftp://example.com"
	cfg.API.Timeout = 0
	cfg.Paging.PageSize = 500
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "api.base_url must be http or https")
	assert.Contains(t, msg, "api.timeout must be positive")
	assert.Contains(t, msg, "paging.page_size must be between 1 and 100")
	assert.Contains(t, msg, `logging.level "loud"`)
}
