// Package paths expands user-facing file locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve expands path, falling back to def when path is blank.
func Resolve(path, def string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return Expand(def)
	}
	return Expand(path)
}

// Expand resolves a leading ~ against the home directory and returns an
// absolute path.
func Expand(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
