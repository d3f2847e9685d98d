package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Should load server settings from file", func(t *testing.T) {
		path := writeConfig(t, `
server:
  url: https://play.dhis2.org/demo
  username: admin
  timeout: 2m
logging:
  level: debug
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "https://play.dhis2.org/demo", cfg.Server.URL)
		assert.Equal(t, "admin", cfg.Server.Username)
		assert.Equal(t, 2*time.Minute, cfg.Server.Timeout)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("Should apply defaults for missing values", func(t *testing.T) {
		path := writeConfig(t, `
server:
  url: https://play.dhis2.org/demo
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 10*time.Minute, cfg.Server.Timeout)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		assert.Equal(t, "sqlite://./dhis2.db", cfg.Database.URL)
	})

	t.Run("Should override nested keys from environment", func(t *testing.T) {
		path := writeConfig(t, `
server:
  url: https://file.example.org
  username: fileuser
`)
		t.Setenv("DHIS2_SERVER_URL", "https://env.example.org")
		t.Setenv("DHIS2_SERVER_USERNAME", "envuser")
		t.Setenv("DHIS2_DATABASE_URL", "postgres://localhost:5432/dhis2")
		t.Setenv("DHIS2_LOGGING_LEVEL", "warn")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "https://env.example.org", cfg.Server.URL)
		assert.Equal(t, "envuser", cfg.Server.Username)
		assert.Equal(t, "postgres://localhost:5432/dhis2", cfg.Database.URL)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("Should apply environment without a config file", func(t *testing.T) {
		t.Setenv("DHIS2_SERVER_URL", "https://env.example.org")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "https://env.example.org", cfg.Server.URL)
	})

	t.Run("Should reject invalid logging level", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: verbose
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})

	t.Run("Should reject invalid logging format", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  format: xml
`)

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging format")
	})
}
