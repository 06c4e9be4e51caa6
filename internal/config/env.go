package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// findModuleRoot walks up from the working directory to the nearest go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// loadEnvFiles loads the first .env it finds: next to go.mod in development, then the
// working directory. Existing environment variables win over file values.
func loadEnvFiles() error {
	var candidates []string
	if root, err := findModuleRoot(); err == nil {
		candidates = append(candidates, filepath.Join(root, ".env"))
	}
	candidates = append(candidates, ".env")

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return os.ErrNotExist
}
