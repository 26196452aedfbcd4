package logview

import (
	"fmt"
	"strings"

	"github.com/five82/overlay/internal/state"
)

// Color is a semantic text colour; the frame decides the concrete value.
type Color int

const (
	ColorDefault Color = iota
	ColorMuted
	ColorCyan
	ColorYellow
	ColorLightRed
	ColorRed
)

func (c Color) String() string {
	switch c {
	case ColorMuted:
		return "muted"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorLightRed:
		return "light-red"
	case ColorRed:
		return "red"
	default:
		return "default"
	}
}

// Frame is the per-frame drawing surface a View renders into.
type Frame interface {
	BeginPanel(title string)
	EndPanel()

	// ScrollY and ScrollMaxY are in the same units as the row height.
	ScrollY() float64
	ScrollMaxY() float64
	SetScrollY(y float64)

	PushTextColor(c Color)
	PopTextColor()
	Text(line string)

	// Clip reports the visible index range [start, end) of a list of
	// count rows, each rowHeight tall, at the current scroll position.
	Clip(count int, rowHeight float64) (start, end int)
}

// Options configure a View.
type Options struct {
	Title     string
	RowHeight float64
}

const (
	defaultTitle     = "Log"
	defaultRowHeight = 1
)

// View renders a state.Store as a scrolling, colour-coded list.
type View struct {
	store     *state.Store
	title     string
	rowHeight float64
}

// New returns a view over store.
func New(store *state.Store, opts Options) *View {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultTitle
	}
	rowHeight := opts.RowHeight
	if rowHeight <= 0 {
		rowHeight = defaultRowHeight
	}
	return &View{store: store, title: title, rowHeight: rowHeight}
}

// RowHeight returns the fixed height of one row.
func (v *View) RowHeight() float64 {
	return v.rowHeight
}

// Render draws the visible slice of the store into f. When the panel was
// scrolled to the bottom before this frame, it is kept at the bottom after
// new rows are laid out; otherwise the scroll position is left alone.
func (v *View) Render(f Frame) {
	f.BeginPanel(v.title)
	defer f.EndPanel()

	atBottom := f.ScrollY() >= f.ScrollMaxY()

	start, end := f.Clip(v.store.Len(), v.rowHeight)
	for _, rec := range v.store.Slice(start, end) {
		f.PushTextColor(ColorFor(rec.Priority))
		f.Text(FormatRow(rec))
		f.PopTextColor()
	}

	if atBottom {
		f.SetScrollY(f.ScrollMaxY())
	}
}

// Lines returns every record formatted as a display line, oldest first.
func (v *View) Lines() []string {
	records := v.store.Snapshot()
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = FormatRow(rec)
	}
	return lines
}

// FormatRow renders one record as a display line.
func FormatRow(rec state.Record) string {
	return fmt.Sprintf("[%s] %s", LabelFor(rec.Priority), rec.Message)
}

// LabelFor returns the display label of p.
func LabelFor(p state.Priority) string {
	switch p {
	case state.PriorityTrace:
		return "TRACE"
	case state.PriorityVerbose:
		return "VERBOSE"
	case state.PriorityDebug:
		return "DEBUG"
	case state.PriorityInfo:
		return "INFO"
	case state.PriorityWarn:
		return "WARNING"
	case state.PriorityError:
		return "ERROR"
	case state.PriorityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ColorFor returns the display colour of p.
func ColorFor(p state.Priority) Color {
	switch p {
	case state.PriorityTrace, state.PriorityVerbose:
		return ColorMuted
	case state.PriorityDebug:
		return ColorCyan
	case state.PriorityWarn:
		return ColorYellow
	case state.PriorityError:
		return ColorLightRed
	case state.PriorityCritical:
		return ColorRed
	default:
		return ColorDefault
	}
}

// ParseLabel splits a line produced by FormatRow back into its priority and
// message. Lines without a recognised "[LABEL] " prefix are INFO.
func ParseLabel(line string) (state.Priority, string) {
	rest, ok := strings.CutPrefix(line, "[")
	if !ok {
		return state.PriorityInfo, line
	}
	label, msg, ok := strings.Cut(rest, "] ")
	if !ok {
		return state.PriorityInfo, line
	}
	for p := state.PriorityTrace; p <= state.PriorityCritical; p++ {
		if LabelFor(p) == label {
			return p, msg
		}
	}
	if label == "UNKNOWN" {
		return 0, msg
	}
	return state.PriorityInfo, line
}
