// Package logview renders the log store as a virtualized list.
//
// Render only reads the rows the Frame reports as visible, so its cost per
// frame is bounded by the viewport height rather than by the number of
// records captured. Frames are supplied by the frontend; see internal/ui for
// the terminal implementation.
package logview
