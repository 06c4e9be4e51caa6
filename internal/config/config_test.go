package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"imagestudio/internal/config"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "imagestudio.db", cfg.DBPath)
	assert.Equal(t, config.ServiceModeLocal, cfg.ServiceMode)
	assert.Equal(t, logger.Warn, cfg.DBLogLevel)
	assert.Empty(t, cfg.KeyringBackend)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := config.FromEnv(envMap(map[string]string{
		"IMAGESTUDIO_DB_PATH":          "/tmp/studio.db",
		"IMAGESTUDIO_SERVICE_MODE":     " Hydration ",
		"IMAGESTUDIO_DB_LOG_LEVEL":     "info",
		"IMAGESTUDIO_KEYRING_BACKEND":  "file",
		"IMAGESTUDIO_KEYRING_DIR":      "/tmp/keys",
		"IMAGESTUDIO_KEYRING_PASSWORD": "secret",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/studio.db", cfg.DBPath)
	assert.Equal(t, config.ServiceModeHydration, cfg.ServiceMode)
	assert.Equal(t, logger.Info, cfg.DBLogLevel)
	assert.Equal(t, "file", cfg.KeyringBackend)
	assert.Equal(t, "/tmp/keys", cfg.KeyringDir)
	assert.Equal(t, "secret", cfg.KeyringPassword)
}

func TestFromEnv_InvalidServiceMode(t *testing.T) {
	_, err := config.FromEnv(envMap(map[string]string{"IMAGESTUDIO_SERVICE_MODE": "cloud"}))
	assert.Error(t, err)
}

func TestFromEnv_InvalidLogLevel(t *testing.T) {
	_, err := config.FromEnv(envMap(map[string]string{"IMAGESTUDIO_DB_LOG_LEVEL": "loud"}))
	assert.Error(t, err)
}

func TestIsServiceMode(t *testing.T) {
	assert.True(t, config.IsServiceMode("server"))
	assert.False(t, config.IsServiceMode("Server"))
	assert.False(t, config.IsServiceMode(""))
}

func TestLoad_ReadsDotEnvFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("IMAGESTUDIO_SERVICE_MODE=server\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("IMAGESTUDIO_DB_PATH", filepath.Join(dir, "studio.db"))
	os.Unsetenv("IMAGESTUDIO_SERVICE_MODE")
	t.Cleanup(func() { os.Unsetenv("IMAGESTUDIO_SERVICE_MODE") })

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.ServiceModeServer, cfg.ServiceMode)
	assert.Equal(t, filepath.Join(dir, "studio.db"), cfg.DBPath)
}
