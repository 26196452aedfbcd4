package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/overlay/internal/logview"
)

// panelState is the scroll state of the log panel. It survives across
// frames; everything else in a termFrame is rebuilt each frame.
type panelState struct {
	scrollY    float64 // in terminal lines
	maxY       float64 // content height minus view height, from the last layout
	viewHeight int
}

func (p *panelState) setScroll(y float64) {
	p.scrollY = math.Round(min(max(y, 0), p.maxY))
}

func (p *panelState) scrollBy(lines int) {
	p.setScroll(p.scrollY + float64(lines))
}

func (p *panelState) atBottom() bool {
	return p.scrollY >= p.maxY
}

type frameRow struct {
	color logview.Color
	text  string
}

// termFrame implements logview.Frame by collecting the visible rows and
// laying them out as a bordered lipgloss panel on EndPanel.
type termFrame struct {
	panel  *panelState
	theme  Theme
	width  int // inner width in cells
	height int // outer height in lines

	title      string
	colors     []logview.Color
	rows       []frameRow
	rowHeight  int
	clipStart  int
	clipScroll float64
	out        string
}

func newTermFrame(panel *panelState, theme Theme, width, height int) *termFrame {
	panel.viewHeight = max(height-2, 1)
	return &termFrame{
		panel:     panel,
		theme:     theme,
		width:     max(width-4, 1),
		height:    height,
		rowHeight: 1,
	}
}

func (f *termFrame) BeginPanel(title string) {
	f.title = title
	f.rows = f.rows[:0]
	f.colors = f.colors[:0]
	f.out = ""
}

func (f *termFrame) ScrollY() float64     { return f.panel.scrollY }
func (f *termFrame) ScrollMaxY() float64  { return f.panel.maxY }
func (f *termFrame) SetScrollY(y float64) { f.panel.setScroll(y) }

func (f *termFrame) PushTextColor(c logview.Color) {
	f.colors = append(f.colors, c)
}

func (f *termFrame) PopTextColor() {
	if len(f.colors) > 0 {
		f.colors = f.colors[:len(f.colors)-1]
	}
}

func (f *termFrame) Text(line string) {
	c := logview.ColorDefault
	if len(f.colors) > 0 {
		c = f.colors[len(f.colors)-1]
	}
	f.rows = append(f.rows, frameRow{color: c, text: line})
}

// Clip lays out count rows and returns the range intersecting the view.
// Row heights are rounded up to whole terminal lines.
func (f *termFrame) Clip(count int, rowHeight float64) (int, int) {
	f.rowHeight = max(int(math.Ceil(rowHeight)), 1)
	view := f.panel.viewHeight

	f.panel.maxY = float64(max(count*f.rowHeight-view, 0))
	f.panel.setScroll(f.panel.scrollY)

	scroll := int(f.panel.scrollY)
	start := min(scroll/f.rowHeight, count)
	end := min((scroll+view+f.rowHeight-1)/f.rowHeight, count)

	f.clipStart = start
	f.clipScroll = f.panel.scrollY
	return start, end
}

func (f *termFrame) EndPanel() {
	bg := NewBgStyle(f.theme.Surface)
	view := f.panel.viewHeight

	lines := make([]string, 0, len(f.rows)*f.rowHeight)
	for _, r := range f.rows {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.theme.LogColor(r.color))).
			Inline(true).
			MaxWidth(f.width)
		lines = append(lines, bg.FillLine(bg.Render(r.text, style), f.width))
		for range f.rowHeight - 1 {
			lines = append(lines, bg.FillLine("", f.width))
		}
	}

	skip := int(f.clipScroll) - f.clipStart*f.rowHeight
	if skip > 0 && skip <= len(lines) {
		lines = lines[skip:]
	}
	if len(lines) > view {
		lines = lines[:view]
	}
	for len(lines) < view {
		lines = append(lines, bg.FillLine("", f.width))
	}

	f.out = f.renderBox(strings.Join(lines, "\n"))
}

// String returns the panel laid out by the last EndPanel.
func (f *termFrame) String() string {
	return f.out
}

// renderBox wraps content in a rounded border with the title inset in the
// top edge.
func (f *termFrame) renderBox(content string) string {
	border := lipgloss.RoundedBorder()
	borderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(f.theme.BorderFocus)).
		Background(lipgloss.Color(f.theme.Surface))

	body := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(lipgloss.Color(f.theme.BorderFocus)).
		BorderBackground(lipgloss.Color(f.theme.Surface)).
		Background(lipgloss.Color(f.theme.Surface)).
		Padding(0, 1).
		Render(content)

	outer := f.width + 4
	title := f.theme.Styles().Title.Background(lipgloss.Color(f.theme.Surface)).
		Inline(true).MaxWidth(max(outer-6, 0)).Render(" " + f.title + " ")
	fill := max(outer-3-lipgloss.Width(title), 0)
	top := borderStyle.Render(border.TopLeft+border.Top) +
		title +
		borderStyle.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	return top + "\n" + body
}
