package app

import (
	"context"
	"fmt"

	"roverwatch/internal/config"
	"roverwatch/internal/nasa"
	"roverwatch/internal/prefs"
	"roverwatch/internal/state"
	"roverwatch/internal/ui"
)

// Options configure the roverwatch dashboard.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roverwatch/prefs.toml
}

// Run boots the roverwatch TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := nasa.NewClient(cfg.APIServer)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	// Seed the store with the lifecycle defaults: no rovers, no selection,
	// dark mode from saved preferences.
	store := state.NewStore(state.State{
		UserName: cfg.UserName,
		DarkMode: userPrefs.DarkMode,
	})

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		PrefsPath: opts.PrefsPath,
	})
}
