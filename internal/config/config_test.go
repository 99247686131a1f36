package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/docketwatch/docket/internal/courtlistener"
)

func TestLoad_MissingDefaultConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(TokenEnvVar, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != courtlistener.DefaultBaseURL {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, courtlistener.DefaultBaseURL)
	}
	if cfg.APIToken != "" {
		t.Fatalf("APIToken = %q, want empty", cfg.APIToken)
	}
}

func TestLoad_MissingExplicitConfigFails(t *testing.T) {
	t.Setenv(TokenEnvVar, "")

	path := filepath.Join(t.TempDir(), "does-not-exist.toml")
	if _, err := Load(path); err == nil {
		t.Fatal("Load with a missing explicit path returned nil error")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv(TokenEnvVar, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_token = "  file-token  "
api_base = "  https://api.example.com/v4  "
page_size = 25
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIToken != "file-token" {
		t.Fatalf("APIToken = %q, want %q", cfg.APIToken, "file-token")
	}
	if cfg.APIBase != "https://api.example.com/v4" {
		t.Fatalf("APIBase = %q, want trimmed value", cfg.APIBase)
	}
	if cfg.PageSize != 25 {
		t.Fatalf("PageSize = %d, want 25", cfg.PageSize)
	}
}

func TestLoad_EnvTokenBeatsFileToken(t *testing.T) {
	t.Setenv(TokenEnvVar, "env-token")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_token = "file-token"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIToken != "env-token" {
		t.Fatalf("APIToken = %q, want env-token", cfg.APIToken)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_token = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
}

func TestRequireToken(t *testing.T) {
	var missing MissingTokenError
	err := Config{}.RequireToken()
	if !errors.As(err, &missing) {
		t.Fatalf("RequireToken on empty config = %v, want MissingTokenError", err)
	}
	if err := (Config{APIToken: "tok"}).RequireToken(); err != nil {
		t.Fatalf("RequireToken = %v, want nil", err)
	}
	err = Config{APIToken: "   "}.RequireToken()
	if !errors.As(err, &missing) {
		t.Fatalf("RequireToken on blank token = %v, want MissingTokenError", err)
	}
}
