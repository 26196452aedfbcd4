package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/overlay/internal/app"
	"github.com/five82/overlay/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	seedPath := flag.String("seed", "", "log file to show on startup (optional, overrides overlay.seed_file)")
	followSeconds := flag.Int("follow", 0, "poll the seed file for new lines every N seconds (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		Variant:    ui.VariantOverlay,
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		SeedPath:   *seedPath,
	}
	if follow := *followSeconds; follow > 0 {
		opts.Follow = follow
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "overlay: %v\n", err)
		return 1
	}
	return 0
}
