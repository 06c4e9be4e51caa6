package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm/logger"

	"imagestudio/internal/database"
)

// Service modes. Local shows built-in providers, server shows custom providers,
// hydration shows both.
const (
	ServiceModeLocal     = "local"
	ServiceModeServer    = "server"
	ServiceModeHydration = "hydration"
)

const (
	envDBPath          = "IMAGESTUDIO_DB_PATH"
	envDBLogLevel      = "IMAGESTUDIO_DB_LOG_LEVEL"
	envServiceMode     = "IMAGESTUDIO_SERVICE_MODE"
	envKeyringBackend  = "IMAGESTUDIO_KEYRING_BACKEND"
	envKeyringDir      = "IMAGESTUDIO_KEYRING_DIR"
	envKeyringPassword = "IMAGESTUDIO_KEYRING_PASSWORD"
)

// Config holds process-level settings read from the environment.
type Config struct {
	DBPath          string
	DBLogLevel      logger.LogLevel
	ServiceMode     string
	KeyringBackend  string
	KeyringDir      string
	KeyringPassword string
}

// Load reads .env from the project root when present, then the environment.
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBPath:          strings.TrimSpace(getenv(envDBPath)),
		ServiceMode:     strings.ToLower(strings.TrimSpace(getenv(envServiceMode))),
		KeyringBackend:  strings.TrimSpace(getenv(envKeyringBackend)),
		KeyringDir:      strings.TrimSpace(getenv(envKeyringDir)),
		KeyringPassword: getenv(envKeyringPassword),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = database.GetDefaultDBPath()
	}
	if cfg.ServiceMode == "" {
		cfg.ServiceMode = ServiceModeLocal
	}
	if !IsServiceMode(cfg.ServiceMode) {
		return nil, fmt.Errorf("%s must be 'local', 'server', or 'hydration', got %q", envServiceMode, cfg.ServiceMode)
	}

	level, err := parseLogLevel(getenv(envDBLogLevel))
	if err != nil {
		return nil, err
	}
	cfg.DBLogLevel = level
	return cfg, nil
}

// IsServiceMode reports whether mode is one of the known service modes.
func IsServiceMode(mode string) bool {
	switch mode {
	case ServiceModeLocal, ServiceModeServer, ServiceModeHydration:
		return true
	}
	return false
}

func parseLogLevel(raw string) (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return logger.Warn, nil
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	}
	return 0, fmt.Errorf("%s must be silent, error, warn or info, got %q", envDBLogLevel, raw)
}
