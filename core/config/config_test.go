package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"precache-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv registers cleanup for keys a .env file may overwrite.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t, "GAME_GAME_DIR", "GAME_MANIFEST", "SERVER_PORT", "STORAGE_ENABLED", "DATABASE_DRIVER", "LOG_LEVEL")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Game.GameDir)
	assert.Equal(t, "valve", cfg.Game.FallbackDir)
	assert.Equal(t, "addons/precache/precache.cfg", cfg.Game.Manifest)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "fastdl", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Sources(t *testing.T) {
	clearEnv(t, "GAME_GAME_DIR", "SERVER_PORT", "STORAGE_ENABLED", "LOG_LEVEL")
	dir := t.TempDir()

	yaml := "game:\n  game_dir: /hlds/cstrike\nserver:\n  port: \"9000\"\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_ENABLED=true\nLOG_LEVEL=debug\n"), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/hlds/cstrike", cfg.Game.GameDir)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level, "environment wins over config.yaml")
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("game: [unclosed"), 0o644))

	_, err := config.LoadConfig(dir)
	assert.Error(t, err)
}
