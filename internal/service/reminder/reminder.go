// Package reminder periodically checks for due reviews and notifies when
// the number of due words changes.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/wordbook/internal/config"
)

const defaultInterval = 5 * time.Minute

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dueCounter interface {
	GetDueCount(ctx context.Context) (int, error)
}

// Notifier delivers a due-review reminder.
type Notifier interface {
	Notify(ctx context.Context, due int) error
}

// ---------------------------------------------------------------------------
// LogNotifier
// ---------------------------------------------------------------------------

// LogNotifier writes reminders to the log.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that logs at info level.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("notifier", "log")}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(ctx context.Context, due int) error {
	n.log.InfoContext(ctx, "words due for review", slog.Int("due", due))
	return nil
}

// ---------------------------------------------------------------------------
// Reminder
// ---------------------------------------------------------------------------

// Reminder runs the check loop.
type Reminder struct {
	log      *slog.Logger
	reviews  dueCounter
	notifier Notifier
	clock    clockwork.Clock
	interval time.Duration

	last int
}

// New creates a reminder. A non-positive interval falls back to five minutes.
func New(log *slog.Logger, reviews dueCounter, notifier Notifier, clock clockwork.Clock, cfg config.ReminderConfig) *Reminder {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Reminder{
		log:      log.With("service", "reminder"),
		reviews:  reviews,
		notifier: notifier,
		clock:    clock,
		interval: interval,
	}
}

// Run checks once immediately and then on every tick until ctx is done.
// It always returns nil so it can run inside an errgroup next to the server.
func (r *Reminder) Run(ctx context.Context) error {
	r.log.InfoContext(ctx, "reminder started", slog.Duration("interval", r.interval))

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	r.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			r.log.Info("reminder stopped")
			return nil
		case <-ticker.Chan():
			r.Check(ctx)
		}
	}
}

// Check runs a single reminder pass. The notifier is called when words are
// due and the count differs from the last notified one.
func (r *Reminder) Check(ctx context.Context) {
	due, err := r.reviews.GetDueCount(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.log.ErrorContext(ctx, "count due words", slog.String("error", err.Error()))
		}
		return
	}

	if due == 0 {
		r.last = 0
		return
	}
	if due == r.last {
		return
	}

	if err := r.notifier.Notify(ctx, due); err != nil {
		r.log.WarnContext(ctx, "send reminder", slog.String("error", err.Error()))
		return
	}
	r.last = due
}
