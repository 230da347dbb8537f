package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"orrery/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.MetricsPort)
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "assets", cfg.Storage.Bucket)
	assert.Equal(t, "orrery/figure.json", cfg.Storage.ObjectKey)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SERVER_DEBUG", "true")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_METRICS_PORT=9100\nSTORAGE_BUCKET=orrery\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("SERVER_METRICS_PORT")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.MetricsPort)
	assert.Equal(t, "orrery", cfg.Storage.Bucket)
}
