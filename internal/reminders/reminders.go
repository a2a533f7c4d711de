// Package reminders runs the background notifier that announces reminders as
// they come due.
package reminders

import (
	"context"
	"errors"
	"time"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// Source is the part of the store the notifier reads from.
type Source interface {
	DueReminders(until time.Time) []models.Reminder
}

// Handler delivers one due reminder. A returned error schedules a retry.
type Handler func(ctx context.Context, r models.Reminder) error

// ErrStopped is returned by Scan once the notifier has been stopped.
var ErrStopped = errors.New("notifier stopped")

// BackoffDuration returns exponential backoff duration for attempt n
func BackoffDuration(attempt int) time.Duration {
	if attempt <= 0 {
		return time.Second
	}
	// base 2^attempt seconds, capped
	if attempt > 16 {
		attempt = 16
	}
	d := time.Duration(1<<uint(attempt)) * time.Second
	max := 5 * time.Minute
	if d > max {
		return max
	}
	return d
}
