package app

import (
	"github.com/five82/overlay/internal/logsink"
	"github.com/five82/overlay/internal/logtail"
	"github.com/five82/overlay/internal/logview"
	"github.com/five82/overlay/internal/state"
)

// recorder receives log records outside of slog.
type recorder interface {
	OnRecord(category int, priority state.Priority, message string)
}

// seed feeds the last maxLines lines of the file at path into the sink and
// returns a Follower positioned after them.
func seed(sink recorder, path string, maxLines int) (*logtail.Follower, error) {
	lines, follower, err := logtail.Open(path, maxLines)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		feedLine(sink, line)
	}
	return follower, nil
}

// feedLine records one log file line, recovering its priority from a
// leading [LABEL].
func feedLine(sink recorder, line string) {
	priority, message := logview.ParseLabel(line)
	sink.OnRecord(logsink.CategoryApplication, priority, message)
}
