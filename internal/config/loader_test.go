package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/page-index-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: page-index-service
  version: 0.2.0
  env: test

http:
  port: 18080
  read_timeout: 2s

logger:
  level: info
  format: json
  output_target: stdout
  time_format: rfc3339

pagination:
  strict: true
  default_items_per_page: 20
`
	path := writeTempConfig(t, yaml)

	t.Setenv("APP_PAGINATION_STRICT", "false")
	t.Setenv("APP_HTTP_HOST", "127.0.0.1")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1:18080", cfg.HTTP.Addr())
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout, "default expected")
	assert.Equal(t, "0.2.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "rfc3339", cfg.Logger.TimeFormat)
	assert.False(t, cfg.Pagination.Strict, "env override not applied")
	assert.Equal(t, 20, cfg.Pagination.DefaultItemsPerPage)
}

func TestConfigLoad_LoggerEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, "logger:\n  level: info\n")

	t.Setenv("APP_LOGGER_STACKTRACE", "true")
	t.Setenv("APP_LOGGER_WITH_CALLER", "true")
	t.Setenv("APP_LOGGER_SERVICE_NAME", "pages-edge")
	t.Setenv("APP_LOGGER_SERVICE_VERSION", "9.9.9")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Logger.Stacktrace)
	assert.True(t, cfg.Logger.WithCaller)
	assert.Equal(t, "pages-edge", cfg.Logger.ServiceName)
	assert.Equal(t, "9.9.9", cfg.Logger.ServiceVersion)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestConfigLoad_LoggerFieldsFromYAML(t *testing.T) {
	path := writeTempConfig(t, "logger:\n  fields:\n    region: eu-west\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eu-west", cfg.Logger.Fields["region"])
}

func TestConfigLoad_Defaults(t *testing.T) {
	path := writeTempConfig(t, "app:\n  env: dev\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "page-index-service", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.Pagination.Strict)
	assert.Equal(t, 10, cfg.Pagination.DefaultItemsPerPage)
}

func TestConfigLoad_DotEnv(t *testing.T) {
	path := writeTempConfig(t, "app:\n  env: dev\n")
	dotenv := filepath.Join(filepath.Dir(path), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("APP_PAGINATION_DEFAULT_ITEMS_PER_PAGE=42\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("APP_PAGINATION_DEFAULT_ITEMS_PER_PAGE") })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Pagination.DefaultItemsPerPage)
}

func TestConfigLoad_InvalidValuesFail(t *testing.T) {
	cases := map[string]string{
		"bad page size": "pagination:\n  default_items_per_page: 0\n",
		"bad port":      "http:\n  port: 70000\n",
		"bad env":       "app:\n  env: moon\n",
	}
	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeTempConfig(t, yaml))
			assert.Error(t, err)
		})
	}
}

func TestConfigLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
