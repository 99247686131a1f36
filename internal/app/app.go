// Package app wires configuration, the API client, and the terminal UI
// together for the docket-tui binary.
package app

import (
	"context"
	"fmt"

	"github.com/docketwatch/docket/internal/config"
	"github.com/docketwatch/docket/internal/courtlistener"
	"github.com/docketwatch/docket/internal/prefs"
	"github.com/docketwatch/docket/internal/ui"
)

// Options configures application startup.
type Options struct {
	ConfigPath string
	PrefsPath  string
}

// Run loads configuration, builds the API client, and starts the UI.
// Credential problems surface here, before any terminal state changes.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.RequireToken(); err != nil {
		return err
	}

	client, err := courtlistener.NewClient(cfg.APIBase, cfg.APIToken)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		SiteURL:   client.SiteURL(),
		PageSize:  cfg.PageSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		ResolveCourt: func(ref string) string {
			return client.ResolveCourtName(ctx, ref)
		},
	})
}
