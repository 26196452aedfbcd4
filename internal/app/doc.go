// Package app provides the orchestration layer shared by the window,
// fullscreen and overlay binaries.
//
// # Overview
//
// This package wires together configuration, preferences, log capture and
// the UI. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/overlay/config.toml
//  2. Create the shared state.Store and install a logsink.Sink over slog
//  3. Load preferences (theme, fullscreen) from ~/.config/overlay/prefs.toml
//  4. Overlay only: seed the store from a log file and optionally follow it
//  5. Start the TUI and block until the user quits or the context cancels
//  6. Uninstall the sink, restoring the previous slog default
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read config
//	       ├─────> sink.Install()      slog and log now feed the store
//	       ├─────> prefs.Load()        Theme and fullscreen
//	       ├─────> seed()              Trailing lines of seed_file
//	       ├─────> StartFollower()     Lines appended later (optional)
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Background Follower Loop:
//	┌─────────────────────────────────────────┐
//	│ StartFollower() goroutine               │
//	│  ├─> follower.Poll()                    │
//	│  └─> sink.OnRecord()  (store mutex)     │
//	│      └─> logview renders next frame     │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Only configuration errors are returned from Run; they happen before the
// sink is installed and are printed by the caller. Everything after that is
// logged through slog and so ends up in the overlay:
//
//   - Unreadable or malformed preferences (defaults are used)
//   - Seed file read failures (the overlay starts empty)
//   - Follow poll failures (retried with exponential backoff up to 30s)
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	opts := app.Options{
//		Variant:  ui.VariantOverlay,
//		SeedPath: "/var/log/app.log",
//		Follow:   2,
//	}
//	if err := app.Run(ctx, opts); err != nil {
//		log.Fatalf("overlay failed: %v", err)
//	}
package app
