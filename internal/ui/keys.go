package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Fullscreen key.Binding

	// Overlay
	ToggleOverlay key.Binding
	CycleTheme    key.Binding
	Emit          key.Binding
	Copy          key.Binding

	// Log panel navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	variant Variant
}

// DefaultKeyMap returns the key bindings for a variant. Bindings a variant
// does not support are disabled so they neither match nor show in help.
func DefaultKeyMap(variant Variant) keyMap {
	k := keyMap{
		variant: variant,

		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "Toggle fullscreen"),
		),

		// Overlay
		ToggleOverlay: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Toggle overlay"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Emit: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "Emit test record"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy log"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}

	if variant == VariantWindow {
		k.Fullscreen.SetEnabled(false)
	}
	if variant != VariantOverlay {
		for _, b := range []*key.Binding{&k.ToggleOverlay, &k.CycleTheme, &k.Emit, &k.Copy, &k.Up, &k.Down, &k.Top, &k.Bottom, &k.PageUp, &k.PageDown} {
			b.SetEnabled(false)
		}
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	if k.variant == VariantOverlay {
		return []key.Binding{k.Fullscreen, k.ToggleOverlay, k.Emit, k.Help, k.Quit}
	}
	return []key.Binding{k.Fullscreen, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Log panel
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		// Overlay
		{k.ToggleOverlay, k.Emit, k.Copy, k.CycleTheme},
		// General
		{k.Fullscreen, k.Help, k.Quit},
	}
}
