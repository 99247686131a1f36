package paths

import (
	"path/filepath"
	"testing"
)

func TestExpand_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Expand("~/a/b")
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("Expand = %q, want %q", got, want)
	}
}

func TestExpand_EmptyPathFails(t *testing.T) {
	if _, err := Expand("   "); err == nil {
		t.Fatal("Expand on blank path returned nil error")
	}
}

func TestResolve_BlankFallsBackToDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Resolve("", "~/.config/docket/config.toml")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := filepath.Join(home, ".config/docket/config.toml")
	if got != want {
		t.Fatalf("Resolve = %q, want %q", got, want)
	}
}

func TestResolve_ExplicitPathWins(t *testing.T) {
	got, err := Resolve("/tmp/custom.toml", "~/.config/docket/config.toml")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "/tmp/custom.toml" {
		t.Fatalf("Resolve = %q, want %q", got, "/tmp/custom.toml")
	}
}
