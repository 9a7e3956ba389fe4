package workers

import (
	"context"
	"log/slog"
	"time"
)

const DefaultBacklogInterval = 10 * time.Second

// Backlog is anything exposing the number of queued tasks, the owner loop
// in practice.
type Backlog interface {
	Pending() int
}

// BacklogMonitor periodically samples the owner loop queue and warns when it
// grows past the threshold. Sampling does not interfere with the loop.
type BacklogMonitor struct {
	log       *slog.Logger
	backlog   Backlog
	threshold int
	interval  time.Duration
}

func NewBacklogMonitor(log *slog.Logger, backlog Backlog, threshold int, interval time.Duration) *BacklogMonitor {
	if interval <= 0 {
		interval = DefaultBacklogInterval
	}
	return &BacklogMonitor{log: log, backlog: backlog, threshold: threshold, interval: interval}
}

func (w *BacklogMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping backlog monitor")
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

// sample returns true when the backlog is above the threshold.
func (w *BacklogMonitor) sample() bool {
	pending := w.backlog.Pending()
	if w.threshold > 0 && pending > w.threshold {
		w.log.Warn("Event loop is lagging", "pending", pending, "threshold", w.threshold)
		return true
	}
	w.log.Debug("Event loop backlog", "pending", pending)
	return false
}
