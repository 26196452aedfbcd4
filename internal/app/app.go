package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/overlay/internal/config"
	"github.com/five82/overlay/internal/logsink"
	"github.com/five82/overlay/internal/logview"
	"github.com/five82/overlay/internal/prefs"
	"github.com/five82/overlay/internal/state"
	"github.com/five82/overlay/internal/ui"
)

// Options configure one of the frame-loop skeletons.
type Options struct {
	Variant    ui.Variant
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/overlay/prefs.toml
	SeedPath   string // overrides overlay.seed_file
	Follow     int    // seconds; overrides overlay.follow_seconds
}

// Run installs the log sink and runs the TUI until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store := &state.Store{}
	sink := logsink.New(store)
	sink.Install()
	defer sink.Uninstall()

	return ui.Run(prepare(ctx, opts, cfg, store, sink))
}

// prepare seeds the store and builds the UI options. Failures past config
// loading are logged into the store rather than returned, so they show up
// in the overlay.
func prepare(ctx context.Context, opts Options, cfg config.Config, store *state.Store, sink *logsink.Sink) ui.Options {
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		slog.Warn("ignoring preferences", "error", err)
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Variant:    opts.Variant,
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ClearColor: cfg.ClearColor,
		FPS:        cfg.FPS,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Fullscreen: userPrefs.Fullscreen,
	}

	if opts.Variant == ui.VariantOverlay {
		if path := cmp.Or(opts.SeedPath, cfg.Overlay.SeedFile); path != "" {
			follower, err := seed(sink, path, cfg.Overlay.SeedLines)
			if err != nil {
				slog.Warn("seed log failed", "path", path, "error", err)
			} else if every := cmp.Or(opts.Follow, cfg.Overlay.Follow); every > 0 {
				StartFollower(ctx, sink, follower, time.Duration(every)*time.Second)
			}
		}

		uiOpts.View = logview.New(store, logview.Options{
			Title:     "Log",
			RowHeight: float64(cfg.Overlay.RowHeight),
		})
		uiOpts.OverlayWidth = cfg.Overlay.Width
		uiOpts.OverlayHeight = cfg.Overlay.Height
		uiOpts.Heartbeat = cfg.Overlay.Heartbeat
	}

	slog.Info("app initialized",
		"variant", opts.Variant.String(),
		"fps", cfg.FPS,
		"theme", userPrefs.Theme)
	return uiOpts
}
