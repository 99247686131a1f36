package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/docketwatch/docket/internal/courtlistener"
	"github.com/docketwatch/docket/internal/paths"
)

// Config captures everything docket needs to talk to the API. It is loaded
// once at startup and passed into the client constructor; nothing mutates
// it afterwards.
type Config struct {
	APIBase  string
	APIToken string
	PageSize int
}

const (
	defaultConfigPath = "~/.config/docket/config.toml"

	// TokenEnvVar overrides any api_token found in the config file.
	TokenEnvVar = "COURTLISTENER_API_TOKEN"
)

// MissingTokenError indicates that no API credential was configured.
type MissingTokenError struct{}

func (MissingTokenError) Error() string {
	return fmt.Sprintf("no API token configured: set %s or api_token in %s", TokenEnvVar, defaultConfigPath)
}

// Load locates and parses the docket config, falling back to defaults when
// the file at the default location is missing. An explicitly given path
// that does not exist is an error; silently ignoring it would mask typos.
// A .env file in the working directory is honored before the environment
// is consulted. Load never fails on an absent token; callers that need
// the network check RequireToken first.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{APIBase: courtlistener.DefaultBaseURL}

	resolved, err := paths.Resolve(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if strings.TrimSpace(path) != "" {
				return Config{}, fmt.Errorf("config file %s does not exist", resolved)
			}
			cfg.applyEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIToken string `toml:"api_token"`
		APIBase  string `toml:"api_base"`
		PageSize int    `toml:"page_size"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIToken = strings.TrimSpace(raw.APIToken)
	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}

	cfg.applyEnv()
	return cfg, nil
}

// RequireToken fails when no credential is available. Front-ends call this
// before constructing a client so credential problems surface before any
// network activity.
func (c Config) RequireToken() error {
	if strings.TrimSpace(c.APIToken) == "" {
		return MissingTokenError{}
	}
	return nil
}

func (c *Config) applyEnv() {
	if token := strings.TrimSpace(os.Getenv(TokenEnvVar)); token != "" {
		c.APIToken = token
	}
}
