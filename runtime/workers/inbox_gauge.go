package workers

import (
	"context"
	"log/slog"
	"time"
)

// InboxLevel is a snapshot of a participant inbox.
type InboxLevel struct {
	Name     string
	Length   int
	Capacity int
}

func (l InboxLevel) Saturated() bool {
	return l.Capacity > 0 && l.Length*4 >= l.Capacity*3
}

// InboxGaugeWorker periodically samples the inboxes of a session.
// Reading len and cap is non-blocking so it never slows delivery down.
// An inbox filled at 75% or more is reported as a warning.
type InboxGaugeWorker struct {
	log      *slog.Logger
	sample   func() []InboxLevel
	interval time.Duration
	report   func(InboxLevel)
}

func NewInboxGaugeWorker(log *slog.Logger, sample func() []InboxLevel, interval time.Duration) *InboxGaugeWorker {
	w := &InboxGaugeWorker{log: log, sample: sample, interval: interval}
	w.report = w.logLevel
	return w
}

func (w *InboxGaugeWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping inbox gauge")
			return nil
		case <-ticker.C:
			for _, level := range w.sample() {
				w.report(level)
			}
		}
	}
}

func (w *InboxGaugeWorker) logLevel(level InboxLevel) {
	if level.Saturated() {
		w.log.Warn("Inbox close to saturation", "inbox", level.Name, "length", level.Length, "capacity", level.Capacity)
		return
	}
	w.log.Debug("Inbox level", "inbox", level.Name, "length", level.Length, "capacity", level.Capacity)
}
