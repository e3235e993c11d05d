package app

import (
	"context"
	"fmt"
	"os"

	"github.com/barohub/barohub/internal/catalog"
	"github.com/barohub/barohub/internal/config"
	"github.com/barohub/barohub/internal/logger"
	"github.com/barohub/barohub/internal/prefs"
	"github.com/barohub/barohub/internal/storage"
	"github.com/barohub/barohub/internal/ui"
)

// Options configure the BaroHub application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/barohub/prefs.toml
	DataDir    string // overrides the configured data directory
}

// Run boots the BaroHub TUI until the user exits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	log, logCloser, err := logger.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logCloser.Close()

	kv, err := storage.OpenBadger(cfg.DatabasePath(), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer kv.Close()

	store := catalog.Open(kv, log)
	userPrefs, _ := prefs.Load(opts.PrefsPath)

	log.Info("barohub starting",
		"data_dir", cfg.DataDir,
		"theme", userPrefs.Theme,
		"courses", len(store.List()))

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		Logger:    log,
		ThemeName: userPrefs.Theme,
		StartTab:  userPrefs.StartTab,
		PrefsPath: opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	log.Info("barohub exiting")
	return nil
}
