package store

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir resolves the per-user pmdeck directory (session db, TUI state).
//
// Priority:
// 1) PMDECK_DIR
// 2) ~/.pmdeck
func ConfigDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("PMDECK_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pmdeck"), nil
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
