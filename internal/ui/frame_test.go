package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/five82/overlay/internal/logview"
	"github.com/five82/overlay/internal/state"
)

func TestTermFrame_ClipReportsVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		scroll     float64
		count      int
		rowHeight  float64
		start, end int
		maxY       float64
	}{
		{"top", 0, 100, 1, 0, 10, 90},
		{"middle", 37, 100, 1, 37, 47, 90},
		{"short list", 0, 4, 1, 0, 4, 0},
		{"empty", 0, 0, 1, 0, 0, 0},
		{"tall rows", 5, 100, 2, 2, 8, 190},
		{"scroll past end clamps", 500, 100, 1, 90, 100, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := &panelState{scrollY: tt.scroll, maxY: 1 << 20}
			f := newTermFrame(panel, GetTheme("Dracula"), 40, 12)

			start, end := f.Clip(tt.count, tt.rowHeight)
			if start != tt.start || end != tt.end {
				t.Fatalf("Clip = [%d, %d), want [%d, %d)", start, end, tt.start, tt.end)
			}
			if panel.maxY != tt.maxY {
				t.Fatalf("maxY = %v, want %v", panel.maxY, tt.maxY)
			}
		})
	}
}

func TestTermFrame_RendersOnlyVisibleRecords(t *testing.T) {
	store := &state.Store{}
	for i := range 500 {
		_ = store.Append(0, state.PriorityInfo, fmt.Sprintf("record %d", i))
	}
	v := logview.New(store, logview.Options{Title: "Log"})

	panel := &panelState{}
	f := newTermFrame(panel, GetTheme("Dracula"), 40, 12)
	v.Render(f)

	// A fresh panel starts at the bottom and follows.
	if panel.scrollY != 490 {
		t.Fatalf("scrollY = %v, want 490", panel.scrollY)
	}

	panel.setScroll(100)
	f = newTermFrame(panel, GetTheme("Dracula"), 40, 12)
	v.Render(f)
	out := f.String()

	for i := 100; i < 110; i++ {
		if !strings.Contains(out, fmt.Sprintf("record %d", i)) {
			t.Fatalf("output missing record %d:\n%s", i, out)
		}
	}
	for _, i := range []int{99, 110, 499} {
		if strings.Contains(out, fmt.Sprintf("record %d", i)) {
			t.Fatalf("output contains off-screen record %d:\n%s", i, out)
		}
	}
	if got := len(strings.Split(out, "\n")); got != 12 {
		t.Fatalf("panel is %d lines, want 12", got)
	}
	if !strings.Contains(strings.SplitN(out, "\n", 2)[0], "Log") {
		t.Fatalf("top border missing title: %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestTermFrame_ColorStack(t *testing.T) {
	f := newTermFrame(&panelState{}, GetTheme("Dracula"), 40, 12)
	f.BeginPanel("x")
	f.PushTextColor(logview.ColorRed)
	f.PushTextColor(logview.ColorCyan)
	f.Text("a")
	f.PopTextColor()
	f.Text("b")
	f.PopTextColor()
	f.PopTextColor() // extra pop is ignored
	f.Text("c")

	want := []frameRow{
		{logview.ColorCyan, "a"},
		{logview.ColorRed, "b"},
		{logview.ColorDefault, "c"},
	}
	if len(f.rows) != len(want) {
		t.Fatalf("rows = %#v, want %#v", f.rows, want)
	}
	for i := range want {
		if f.rows[i] != want[i] {
			t.Fatalf("row %d = %#v, want %#v", i, f.rows[i], want[i])
		}
	}
}

func TestPanelState_SetScrollClampsAndRounds(t *testing.T) {
	p := &panelState{maxY: 10}

	p.setScroll(-3)
	if p.scrollY != 0 {
		t.Fatalf("scrollY = %v, want 0", p.scrollY)
	}
	p.setScroll(4.6)
	if p.scrollY != 5 {
		t.Fatalf("scrollY = %v, want 5", p.scrollY)
	}
	p.scrollBy(100)
	if p.scrollY != 10 || !p.atBottom() {
		t.Fatalf("scrollY = %v atBottom = %v, want 10 true", p.scrollY, p.atBottom())
	}
	p.scrollBy(-1)
	if p.atBottom() {
		t.Fatal("atBottom = true after scrolling up")
	}
}
