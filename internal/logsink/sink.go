package logsink

import (
	"context"
	"io"
	"log"
	"log/slog"
	"strings"
	"sync"

	"github.com/five82/overlay/internal/state"
)

// Categories attached to records through the "category" attribute. The sink
// does not interpret them.
const (
	CategoryApplication = iota
	CategoryError
	CategoryAssert
	CategorySystem
	CategoryAudio
	CategoryVideo
	CategoryRender
	CategoryInput
	CategoryTest
	CategoryGPU
	CategoryCustom
)

// CategoryKey is the slog attribute key carrying a record's category.
const CategoryKey = "category"

// Extra slog levels for the priorities slog does not name.
const (
	LevelTrace    = slog.Level(-8)
	LevelVerbose  = slog.Level(-6)
	LevelCritical = slog.Level(12)
)

type appender interface {
	Append(category int, priority state.Priority, message string) error
}

// Sink captures every record emitted through the process-wide slog logger
// into a state.Store.
type Sink struct {
	store appender

	mu        sync.Mutex
	installed bool
	previous  *slog.Logger
	logOutput io.Writer
	logFlags  int
}

// New returns a sink appending to store. It captures nothing until Install
// is called.
func New(store *state.Store) *Sink {
	return &Sink{store: store}
}

// Install makes the sink the exclusive destination of the default slog
// logger, and through it of the standard log package. Calling Install again
// replaces the registration; the destination seen by the first call is the
// one Uninstall restores.
func (s *Sink) Install() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.installed {
		s.previous = slog.Default()
		s.logOutput = log.Writer()
		s.logFlags = log.Flags()
		s.installed = true
	}
	slog.SetDefault(slog.New(&handler{sink: s, category: CategoryApplication}))
}

// Uninstall restores the logger that was the default before Install.
func (s *Sink) Uninstall() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.installed {
		return
	}
	// SetDefault leaves the log package pointed at our handler when handed
	// the original default handler, so restore its output first.
	log.SetOutput(s.logOutput)
	log.SetFlags(s.logFlags)
	slog.SetDefault(s.previous)
	s.previous = nil
	s.logOutput = nil
	s.installed = false
}

// Handler returns an slog.Handler feeding the sink without touching the
// process default, for loggers constructed explicitly.
func (s *Sink) Handler() slog.Handler {
	return &handler{sink: s, category: CategoryApplication}
}

// OnRecord appends one record. It never panics and never reports failure:
// a record that cannot be stored is dropped.
func (s *Sink) OnRecord(category int, priority state.Priority, message string) {
	defer func() { _ = recover() }()
	_ = s.store.Append(category, priority, message)
}

// PriorityForLevel maps an slog level onto a record priority. Only the
// exact levels the sink knows map to a named priority.
func PriorityForLevel(level slog.Level) state.Priority {
	switch level {
	case LevelTrace:
		return state.PriorityTrace
	case LevelVerbose:
		return state.PriorityVerbose
	case slog.LevelDebug:
		return state.PriorityDebug
	case slog.LevelInfo:
		return state.PriorityInfo
	case slog.LevelWarn:
		return state.PriorityWarn
	case slog.LevelError:
		return state.PriorityError
	case LevelCritical:
		return state.PriorityCritical
	default:
		return 0
	}
}

// LevelForPriority is the inverse of PriorityForLevel for named priorities.
// Unknown priorities log at info.
func LevelForPriority(p state.Priority) slog.Level {
	switch p {
	case state.PriorityTrace:
		return LevelTrace
	case state.PriorityVerbose:
		return LevelVerbose
	case state.PriorityDebug:
		return slog.LevelDebug
	case state.PriorityWarn:
		return slog.LevelWarn
	case state.PriorityError:
		return slog.LevelError
	case state.PriorityCritical:
		return LevelCritical
	default:
		return slog.LevelInfo
	}
}

type handler struct {
	sink     *Sink
	category int
	attrs    []slog.Attr
	groups   []string
}

func (h *handler) Enabled(context.Context, slog.Level) bool { return true }

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	category := h.category
	var b strings.Builder
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, nil, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if len(h.groups) == 0 && a.Key == CategoryKey {
			if c, ok := categoryValue(a.Value); ok {
				category = c
				return true
			}
		}
		writeAttr(&b, h.groups, a)
		return true
	})

	h.sink.OnRecord(category, PriorityForLevel(r.Level), b.String())
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if len(h.groups) == 0 && a.Key == CategoryKey {
			if c, ok := categoryValue(a.Value); ok {
				next.category = c
				continue
			}
		}
		if len(h.groups) > 0 {
			a.Key = strings.Join(h.groups, ".") + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

func categoryValue(v slog.Value) (int, bool) {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindInt64:
		return int(v.Int64()), true
	case slog.KindUint64:
		return int(v.Uint64()), true
	default:
		return 0, false
	}
}

func writeAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	for _, g := range groups {
		b.WriteString(g)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
