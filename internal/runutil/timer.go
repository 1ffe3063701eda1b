// Package runutil holds small run-level helpers shared by the application
// layers.
package runutil

import (
	"log/slog"
	"time"
)

// Timer logs how long a named phase took. Use with defer:
//
//	defer runutil.StartTimer("search", logger).Stop()
type Timer struct {
	name   string
	start  time.Time
	logger *slog.Logger
}

func StartTimer(name string, logger *slog.Logger) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Timer{name: name, start: time.Now(), logger: logger}
}

func (t *Timer) Elapsed() time.Duration { return time.Since(t.start) }

func (t *Timer) Stop() {
	t.logger.Info(t.name+" completed", "elapsed", t.Elapsed().Round(time.Millisecond))
}
