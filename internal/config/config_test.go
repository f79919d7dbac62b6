package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmorales/jornada/internal/config"
)

func setupEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("JORNADA_ENV", "")
	t.Setenv("JORNADA_DATA_DIR", "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return home
}

func TestNewWritesDefaultConfig(t *testing.T) {
	setupEnv(t)

	cfg, err := config.New()
	require.NoError(t, err)
	require.NoError(t, config.WithViperConfig(cfg.System.ConfigPath)(cfg))

	assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
	assert.True(t, cfg.Display.Color)
	assert.False(t, cfg.Display.TwentyFourHour)
	assert.FileExists(t, cfg.System.ConfigPath)
}

func TestNewReadsExistingConfig(t *testing.T) {
	setupEnv(t)

	probe, err := config.New()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(probe.System.ConfigPath), 0o755))
	yaml := "storage:\n  backend: bolt\ndisplay:\n  color: false\n"
	require.NoError(t, os.WriteFile(probe.System.ConfigPath, []byte(yaml), 0o644))

	cfg, err := config.New(config.WithViperConfig(probe.System.ConfigPath))
	require.NoError(t, err)

	assert.Equal(t, config.BackendBolt, cfg.Storage.Backend)
	assert.False(t, cfg.Display.Color)
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	setupEnv(t)

	_, err := config.New(config.WithBackend("redis"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestWithBackendOverridesFile(t *testing.T) {
	setupEnv(t)

	probe, err := config.New()
	require.NoError(t, err)
	cfg, err := config.New(
		config.WithViperConfig(probe.System.ConfigPath),
		config.WithBackend(config.BackendBolt),
	)
	require.NoError(t, err)

	assert.Equal(t, config.BackendBolt, cfg.Storage.Backend)
}

func TestDataDirOverride(t *testing.T) {
	setupEnv(t)
	custom := t.TempDir()
	t.Setenv("JORNADA_DATA_DIR", custom)

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, custom, cfg.System.DataDir)
	assert.Equal(t, filepath.Join(custom, "jornada.db"), cfg.SQLitePath())
	assert.Equal(t, filepath.Join(custom, "jornada.bolt"), cfg.BoltPath())
}
