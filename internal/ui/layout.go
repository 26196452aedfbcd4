package ui

// Window defaults, used when Options leave a size unset.
const (
	defaultWindowWidth  = 80
	defaultWindowHeight = 24
	defaultClearColor   = "#0000FF"
	defaultFPS          = 30
)

// Overlay panel limits. Below the minimum the panel is not drawn.
const (
	defaultOverlayWidth  = 72
	defaultOverlayHeight = 16
	minOverlayWidth      = 20
	minOverlayHeight     = 4
)
