package ui

import (
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/overlay/internal/logsink"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// handleLogsKey scrolls the log panel. Scrolling back to the bottom
// resumes following new records on the next frame.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(m.panel.viewHeight-1, 1)

	switch {
	case key.Matches(msg, m.keys.Up):
		m.panel.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.panel.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.panel.scrollBy(-page)
	case key.Matches(msg, m.keys.PageDown):
		m.panel.scrollBy(page)
	case key.Matches(msg, m.keys.Top):
		m.panel.setScroll(0)
	case key.Matches(msg, m.keys.Bottom):
		m.panel.setScroll(m.panel.maxY)
	case key.Matches(msg, m.keys.Copy):
		m.copyLog()
		return m, nil
	default:
		return m, nil
	}

	m.draw()
	return m, nil
}

// following reports whether the log panel is pinned to the newest record.
func (m Model) following() bool {
	return m.panel.atBottom()
}

// copyLog puts the whole log on the system clipboard. The outcome is itself
// logged, so it shows up in the panel.
func (m Model) copyLog() {
	lines := m.logView.Lines()
	if err := writeClipboard(strings.Join(lines, "\n")); err != nil {
		slog.Warn("copy log failed",
			logsink.CategoryKey, logsink.CategoryInput,
			"error", err)
		return
	}
	slog.Info("log copied",
		logsink.CategoryKey, logsink.CategoryInput,
		"lines", len(lines))
}
