package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/galscrape/galscrape"
	"github.com/galscrape/galscrape/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "Mozilla/5.0", cfg.Fetch.UserAgent)
	assert.Equal(t, float64(0), cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1, cfg.RateLimit.Burst)
	assert.Equal(t, 10, cfg.Crawl.Concurrency)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
fetch:
  timeout: 5s
  user_agent: galscrape-test
rate_limit:
  requests_per_second: 2.5
  burst: 3
crawl:
  concurrency: 4
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "galscrape-test", cfg.Fetch.UserAgent)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, 4, cfg.Crawl.Concurrency)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crawl:\n  concurrency: 4\n"), 0o600))

	t.Setenv("GALSCRAPE_CONCURRENCY", "7")
	t.Setenv("GALSCRAPE_USER_AGENT", "env-agent")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Crawl.Concurrency)
	assert.Equal(t, "env-agent", cfg.Fetch.UserAgent)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Crawl.Concurrency)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Equal(t, galscrape.EINVALID, galscrape.ErrorCode(err))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"zero timeout", func(c *config.Config) { c.Fetch.Timeout = 0 }},
		{"negative rate", func(c *config.Config) { c.RateLimit.RequestsPerSecond = -1 }},
		{"zero burst", func(c *config.Config) { c.RateLimit.Burst = 0 }},
		{"zero concurrency", func(c *config.Config) { c.Crawl.Concurrency = 0 }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.modify(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Equal(t, galscrape.EINVALID, galscrape.ErrorCode(err))
		})
	}
}
