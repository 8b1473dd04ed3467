package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Catalog.Watch)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
ui:
  theme: dark
catalog:
  path: /tmp/extra.yaml
  watch: false
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "/tmp/extra.yaml", cfg.Catalog.Path)
	assert.False(t, cfg.Catalog.Watch)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: light\n"), 0644))

	t.Setenv("SCHEMES_THEME", "dark")
	t.Setenv("SCHEMES_CATALOG", "/tmp/user.yaml")
	t.Setenv("SCHEMES_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.UI.Theme, "env must win over file")
	assert.Equal(t, "/tmp/user.yaml", cfg.Catalog.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.UI.Theme = "dark"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.UI.Theme)
}

func TestBuildLogger(t *testing.T) {
	cfg := DefaultConfig()

	logger, err := cfg.BuildLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = cfg.BuildLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), "verbose should enable debug")
}

func TestBuildLogger_BadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"

	_, err := cfg.BuildLogger(false)
	assert.Error(t, err)
}
