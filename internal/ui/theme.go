package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/overlay/internal/logview"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Surface string // Overlay panel background
	FocusBg string // Help modal background

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string

	// Log row colors
	Cyan     string
	Yellow   string
	LightRed string
	Red      string
}

// LogColor resolves a semantic log color to a concrete hex value.
func (t Theme) LogColor(c logview.Color) string {
	switch c {
	case logview.ColorMuted:
		return t.Muted
	case logview.ColorCyan:
		return t.Cyan
	case logview.ColorYellow:
		return t.Yellow
	case logview.ColorLightRed:
		return t.LightRed
	case logview.ColorRed:
		return t.Red
	default:
		return t.Text
	}
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Surface    lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	Title      lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Surface: "#282A36", // Background
		FocusBg: "#343746", // BGLight

		Border:      "#44475A", // Selection
		BorderFocus: "#BD93F9", // Purple

		Text:   "#F8F8F2", // Foreground
		Muted:  "#6272A4", // Comment
		Faint:  "#44475A", // Selection
		Accent: "#BD93F9", // Purple

		Cyan:     "#8BE9FD", // Cyan
		Yellow:   "#F1FA8C", // Yellow
		LightRed: "#FF6E6E", // Bright red (ANSI)
		Red:      "#FF5555", // Red
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Surface: "#0f172a", // slate-900
		FocusBg: "#283548", // between slate-800 and slate-700

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Faint:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400

		Cyan:     "#06b6d4", // cyan-500
		Yellow:   "#facc15", // yellow-400
		LightRed: "#f87171", // red-400
		Red:      "#dc2626", // red-600
	}
}
