package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/overlay/internal/logsink"
	"github.com/five82/overlay/internal/logtail"
)

const (
	defaultFollowInterval = 2 * time.Second
	maxBackoff            = 30 * time.Second
)

// StartFollower launches a background goroutine that feeds lines appended
// to the followed file into the sink. Consecutive failures back off
// exponentially. It returns immediately.
func StartFollower(ctx context.Context, sink recorder, follower *logtail.Follower, interval time.Duration) {
	if interval <= 0 {
		interval = defaultFollowInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		failures := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			err := follower.Poll(func(line string) { feedLine(sink, line) })
			if err != nil {
				failures++
				slog.Warn("follow log failed",
					logsink.CategoryKey, logsink.CategoryApplication,
					"error", err,
					"retry_in", calculateBackoff(failures, interval))
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles base once per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
