// Package prefs handles docket user preferences persistence.
// Preferences are stored in ~/.config/docket/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/docketwatch/docket/internal/paths"
)

// Prefs holds user preferences for docket.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/docket/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. A missing, unreadable, or
// malformed prefs file never blocks startup; defaults apply instead.
func Load(path string) (Prefs, error) {
	out := Prefs{Theme: defaultTheme}

	resolved, err := paths.Resolve(path, defaultPrefsPath)
	if err != nil {
		return out, nil
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return out, nil
	}
	if err := toml.Unmarshal(raw, &out); err != nil {
		return Prefs{Theme: defaultTheme}, nil
	}

	if strings.TrimSpace(out.Theme) == "" {
		out.Theme = defaultTheme
	}
	return out, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := paths.Resolve(path, defaultPrefsPath)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, raw, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
