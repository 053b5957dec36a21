package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_WEATHER_KEY", "secret-key")

	path := writeConfig(t, `
content:
  dir: testdata/content
artifact:
  output: out/days.json
location:
  name: Alki Beach
  lat: 47.58
  lng: -122.41
weather:
  api_key: ${TEST_WEATHER_KEY}
serve:
  addr: ":9090"
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "testdata/content", cfg.Content.Dir)
	require.Equal(t, "out/days.json", cfg.Artifact.Output)
	require.Equal(t, "Alki Beach", cfg.Location.Name)
	require.Equal(t, "secret-key", cfg.Weather.APIKey)
	require.True(t, cfg.Weather.Enabled())
	require.Equal(t, ":9090", cfg.Serve.Addr)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	require.Equal(t, "content/days", cfg.Content.Dir)
	require.Equal(t, "*.json", cfg.Content.Glob)
	require.Equal(t, 500*time.Millisecond, cfg.Content.WatchDebounce)
	require.Equal(t, "site/data/days.json", cfg.Artifact.Output)
	// Local serving defaults to reading the build output directly.
	require.Equal(t, cfg.Artifact.Output, cfg.Artifact.Path)
	require.Equal(t, 3, cfg.Artifact.Retry.MaxAttempts)
	require.Equal(t, "Lake Washington", cfg.Location.Name)
	require.False(t, cfg.Weather.Enabled())
	require.False(t, cfg.Publisher.Enabled())
	require.Equal(t, ":8080", cfg.Serve.Addr)
	require.Equal(t, 5*time.Minute, cfg.Serve.RefreshInterval)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
