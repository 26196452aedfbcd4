package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/overlay/internal/logsink"
	"github.com/five82/overlay/internal/logview"
	"github.com/five82/overlay/internal/prefs"
	"github.com/five82/overlay/internal/state"
)

// Variant selects which skeleton the frame loop runs.
type Variant int

const (
	// VariantWindow clears and presents, nothing else.
	VariantWindow Variant = iota
	// VariantFullscreen adds the fullscreen hotkey.
	VariantFullscreen
	// VariantOverlay adds the log overlay on top of the fullscreen variant.
	VariantOverlay
)

func (v Variant) String() string {
	switch v {
	case VariantFullscreen:
		return "fullscreen"
	case VariantOverlay:
		return "overlay"
	default:
		return "window"
	}
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Variant    Variant
	Title      string
	Width      int // windowed size
	Height     int
	ClearColor string
	FPS        int
	ThemeName  string
	PrefsPath  string
	Fullscreen bool

	// Overlay only.
	View          *logview.View
	OverlayWidth  int
	OverlayHeight int
	Heartbeat     int // frames between heartbeat records; zero disables
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	variant    Variant
	title      string
	winWidth   int
	winHeight  int
	clearColor string
	frameEvery time.Duration
	prefsPath  string
	heartbeat  uint64

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	termWidth   int
	termHeight  int
	ready       bool
	fullscreen  bool
	showOverlay bool
	showHelp    bool

	// Frame loop
	frame   uint64
	started time.Time

	// Log overlay
	logView       *logview.View
	panel         *panelState
	overlayWidth  int
	overlayHeight int
	overlay       string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	clearColor := opts.ClearColor
	if clearColor == "" {
		clearColor = defaultClearColor
	}

	variant := opts.Variant
	if variant == VariantOverlay && opts.View == nil {
		variant = VariantFullscreen
	}

	m := Model{
		ctx:           ctx,
		variant:       variant,
		title:         opts.Title,
		winWidth:      positiveOr(opts.Width, defaultWindowWidth),
		winHeight:     positiveOr(opts.Height, defaultWindowHeight),
		clearColor:    clearColor,
		frameEvery:    time.Second / time.Duration(fps),
		prefsPath:     prefsPath,
		heartbeat:     uint64(max(opts.Heartbeat, 0)),
		keys:          DefaultKeyMap(variant),
		help:          help.New(),
		fullscreen:    opts.Fullscreen && variant != VariantWindow,
		showOverlay:   variant == VariantOverlay,
		logView:       opts.View,
		panel:         &panelState{},
		overlayWidth:  positiveOr(opts.OverlayWidth, defaultOverlayWidth),
		overlayHeight: positiveOr(opts.OverlayHeight, defaultOverlayHeight),
	}
	m.setTheme(GetTheme(themeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(m.frameEvery)}
	if m.fullscreen {
		cmds = append(cmds, tea.EnterAltScreen)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		slog.Debug("window resized",
			logsink.CategoryKey, logsink.CategoryVideo,
			"width", msg.Width, "height", msg.Height)
		m.draw()
		return m, nil

	case frameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	width, height := m.screenSize()
	if width <= 0 || height <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTitleBar(width))
	b.WriteString("\n")

	bodyHeight := max(height-2, 0)
	body := NewBgStyle(m.clearColor).Fill(width, bodyHeight)
	if m.showHelp {
		body = m.renderHelp(width, bodyHeight)
	} else if m.showOverlay && m.overlay != "" {
		body = lipgloss.Place(width, bodyHeight,
			lipgloss.Center, lipgloss.Center,
			m.overlay,
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.clearColor)),
		)
	}
	if bodyHeight > 0 {
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(width))
	return b.String()
}

// handleKey processes keyboard input. Quit wins over everything; the help
// overlay swallows the remaining keys while open.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Fullscreen):
		return m.toggleFullscreen()

	case key.Matches(msg, m.keys.ToggleOverlay):
		m.showOverlay = !m.showOverlay
		m.draw()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()
		m.draw()
		return m, nil

	case key.Matches(msg, m.keys.Emit):
		emitTestRecord(m.ctx, msg.String())
		return m, nil
	}

	if m.variant == VariantOverlay && m.showOverlay {
		return m.handleLogsKey(msg)
	}
	return m, nil
}

// toggleFullscreen switches between the alternate screen (fullscreen) and
// inline rendering at the configured window size.
func (m Model) toggleFullscreen() (tea.Model, tea.Cmd) {
	m.fullscreen = !m.fullscreen
	m.savePrefs()
	slog.Info("fullscreen toggled",
		logsink.CategoryKey, logsink.CategoryVideo,
		"fullscreen", m.fullscreen)
	m.draw()
	if m.fullscreen {
		return m, tea.EnterAltScreen
	}
	return m, tea.ExitAltScreen
}

// handleFrame runs one iteration of the frame loop and schedules the next.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.frame == 0 {
		m.started = time.Now()
	}
	m.frame++

	if m.variant == VariantOverlay && m.heartbeat > 0 && m.frame%m.heartbeat == 0 {
		slog.Log(m.ctx, logsink.LevelVerbose, "frame heartbeat",
			logsink.CategoryKey, logsink.CategoryRender,
			"frame", m.frame, "fps", fmt.Sprintf("%.1f", m.measuredFPS()))
	}

	m.draw()
	return m, frameCmd(m.frameEvery)
}

// draw renders the log overlay for this frame.
func (m *Model) draw() {
	if m.variant != VariantOverlay || !m.showOverlay || !m.ready {
		return
	}
	width, height := m.screenSize()
	pw := min(m.overlayWidth, width)
	ph := min(m.overlayHeight, max(height-2, 0))
	if pw < minOverlayWidth || ph < minOverlayHeight {
		m.overlay = ""
		return
	}

	f := newTermFrame(m.panel, m.theme, pw, ph)
	m.logView.Render(f)
	m.overlay = f.String()
}

// screenSize is the area the app draws into: the whole terminal when
// fullscreen, the configured window size otherwise.
func (m Model) screenSize() (int, int) {
	if m.fullscreen {
		return m.termWidth, m.termHeight
	}
	return min(m.winWidth, m.termWidth), min(m.winHeight, m.termHeight)
}

func (m Model) measuredFPS() float64 {
	elapsed := time.Since(m.started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.frame) / elapsed
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Fullscreen: m.fullscreen}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		slog.Warn("save preferences failed", "error", err)
	}
}

// renderTitleBar renders the title line, standing in for a window caption.
func (m Model) renderTitleBar(width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	title := m.title
	if title == "" {
		title = m.variant.String()
	}
	mode := "windowed"
	if m.fullscreen {
		mode = "fullscreen"
	}
	right := fmt.Sprintf("%s  frame %d", mode, m.frame)

	left := bg.Render(title, styles.Title)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	line := bg.Space() + left + bg.FillLine("", gap) + bg.Render(right, styles.FaintText)
	return bg.FillLine(lipgloss.NewStyle().Inline(true).MaxWidth(width).Render(line), width)
}

func (m Model) renderFooter(width int) string {
	bg := NewBgStyle(m.theme.Surface)
	return bg.FillLine(m.help.ShortHelpView(m.keys.ShortHelp()), width)
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// emitTestRecord logs one record at the priority bound to keys 1-7.
func emitTestRecord(ctx context.Context, k string) {
	if len(k) != 1 || k[0] < '1' || k[0] > '7' {
		return
	}
	p := state.Priority(k[0] - '0')
	slog.Log(ctx, logsink.LevelForPriority(p), "test record",
		logsink.CategoryKey, logsink.CategoryInput,
		"key", k)
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
