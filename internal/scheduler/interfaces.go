package scheduler

import (
	"context"
	"time"
)

// Content is the payload a delivered notification carries. ReminderID
// lets a tap on the notification be routed back to the adherence tracker.
type Content struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	ReminderID string `json:"reminder_id"`
}

// SchedulerI is the notification scheduler the reconciler heals against.
// Its live state is authoritative but volatile: entries may vanish
// without notice, and ListActiveIDs is the only ground truth.
type SchedulerI interface {
	// Registers a trigger repeating daily at hour:minute. Returns the live id
	ScheduleRecurring(ctx context.Context, content Content, hour, minute int) (string, error)
	// Registers a one-shot trigger at the given instant. Returns the live id
	ScheduleAt(ctx context.Context, content Content, at time.Time) (string, error)
	// Idempotent, unknown or already-fired ids are not an error
	Cancel(ctx context.Context, id string) error
	// Ground truth of currently registered trigger ids
	ListActiveIDs(ctx context.Context) (map[string]struct{}, error)
}

// Delivery is the channel a fired trigger goes out on.
type Delivery interface {
	Deliver(ctx context.Context, content Content) error
}
