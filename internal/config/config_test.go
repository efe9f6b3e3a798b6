package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.API.MaxRetries)
	assert.Equal(t, 50, cfg.API.MaxRequestsPerSecond)
	assert.Equal(t, "localhost:3000", cfg.Server.Address())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 50, cfg.Search.Limit)
	assert.Equal(t, 100, cfg.Units.Limit)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  shutdown_timeout: 2s
api:
  base_url: http://grimoire.example/api/v1/
  max_requests_per_second: 5
redis:
  enabled: true
  history_size: 3
`)
	t.Setenv("API_TIMEOUT", "7")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://grimoire.example/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.MaxRequestsPerSecond)
	assert.Equal(t, 7, cfg.API.Timeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.HistorySize)
}

func TestLoad_BaseURLFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://remote:8080/api/v1")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://remote:8080/api/v1", cfg.API.BaseURL)
}

func TestLoad_FlagsOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://from-env/api/v1")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("api-url", "", "")
	flags.Int("port", 0, "")
	require.NoError(t, flags.Parse([]string{"--api-url", "http://from-flag/api/v1", "--port", "4000"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_InvalidRate(t *testing.T) {
	path := writeConfig(t, "api:\n  max_requests_per_second: 0\n")

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_requests_per_second")
}
