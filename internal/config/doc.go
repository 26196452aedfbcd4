// Package config loads the TOML configuration shared by the frame-loop
// skeletons.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/overlay/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Example File
//
//	title = "My App"
//	width = 80             # windowed size in cells
//	height = 24
//	clear_color = "#0000FF"
//	fps = 30
//
//	[overlay]
//	width = 72
//	height = 16
//	row_height = 1
//	heartbeat = 300        # frames; 0 disables the heartbeat record
//	seed_file = "~/app.log"
//	seed_lines = 500
//	follow_seconds = 0     # poll seed_file for new lines; 0 disables
//
// # Validation
//
// Values that cannot be defaulted sensibly are rejected instead of being
// silently replaced: clear_color must be #RRGGBB and fps must lie in 1-120.
// All parse failures are wrapped as "parse config: ...".
//
// # Path Expansion
//
// A leading ~ expands to the user's home directory and the result is made
// absolute. This applies to the config path itself and to seed_file.
package config
