// Package ui provides the terminal frontend for the window, fullscreen and
// overlay skeletons.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. A terminal frame stands in for the
// application window: the title bar plays the caption, the body is painted
// with the configured clear color every frame, and the footer shows the key
// help. Fullscreen maps to the terminal's alternate screen; windowed mode
// renders inline at the configured size.
//
// # Package Structure
//
//   - app.go: Model, frame loop, key handling and the Run function
//   - frame.go: termFrame, the logview.Frame implementation over lipgloss
//   - logs.go: log panel scrolling
//   - help.go: full key help modal
//   - keys.go: key bindings per variant
//   - theme.go: color themes, including the log row palette
//   - style_helpers.go: background-preserving render helpers
//   - layout.go: size defaults
//
// # Frame Loop
//
// Each tea.Tick delivers a frameMsg. The overlay variant renders the log
// view into a termFrame on every frame and caches the result for View, so
// new records appear within one frame of being logged from any goroutine.
//
// # Variants
//
//   - Window: clear and present; alt+enter is disabled
//   - Fullscreen: adds the alt+enter toggle, persisted in prefs
//   - Overlay: adds the log panel, theme cycling, demo records on 1-7,
//     copying and scrolling; scrolling to the bottom resumes auto-scroll
//
// # Key Bindings
//
//	q, ctrl+c     Quit
//	alt+enter     Toggle fullscreen
//	o             Toggle overlay
//	T             Cycle theme
//	y             Copy the log to the clipboard
//	1-7           Emit a record at TRACE..CRITICAL
//	j/k, pgup...  Scroll the log panel
//	g/G           Top / bottom
//	?             Toggle help
package ui
