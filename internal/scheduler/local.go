package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type trigger struct {
	content Content
	repeats bool
	hour    int
	minute  int
	at      time.Time
}

// LocalScheduler keeps registered triggers in process memory and fires
// them through a Delivery channel. It is deliberately volatile: a restart
// drops every registration, which is exactly the drift the reconciler
// exists to heal from the store.
type LocalScheduler struct {
	mu       sync.Mutex
	triggers map[string]*trigger
	delivery Delivery
}

func NewLocalScheduler(delivery Delivery) *LocalScheduler {
	return &LocalScheduler{
		triggers: make(map[string]*trigger),
		delivery: delivery,
	}
}

func (ls *LocalScheduler) ScheduleRecurring(ctx context.Context, content Content, hour, minute int) (string, error) {
	id := uuid.NewString()
	ls.mu.Lock()
	ls.triggers[id] = &trigger{content: content, repeats: true, hour: hour, minute: minute}
	ls.mu.Unlock()
	return id, nil
}

func (ls *LocalScheduler) ScheduleAt(ctx context.Context, content Content, at time.Time) (string, error) {
	id := uuid.NewString()
	ls.mu.Lock()
	ls.triggers[id] = &trigger{content: content, at: at}
	ls.mu.Unlock()
	return id, nil
}

func (ls *LocalScheduler) Cancel(ctx context.Context, id string) error {
	ls.mu.Lock()
	delete(ls.triggers, id)
	ls.mu.Unlock()
	return nil
}

func (ls *LocalScheduler) ListActiveIDs(ctx context.Context) (map[string]struct{}, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ids := make(map[string]struct{}, len(ls.triggers))
	for id := range ls.triggers {
		ids[id] = struct{}{}
	}
	return ids, nil
}

// Run fires due triggers once a minute until ctx is cancelled. One-shot
// triggers are removed after firing, repeating ones stay registered.
func (ls *LocalScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			ls.fireDue(ctx, now)
		}
	}
}

func (ls *LocalScheduler) fireDue(ctx context.Context, now time.Time) {
	ls.mu.Lock()
	due := make([]Content, 0, 2)
	for id, t := range ls.triggers {
		switch {
		case t.repeats:
			if t.hour == now.Hour() && t.minute == now.Minute() {
				due = append(due, t.content)
			}
		case !t.at.After(now):
			due = append(due, t.content)
			delete(ls.triggers, id)
		}
	}
	ls.mu.Unlock()
	for _, c := range due {
		if err := ls.delivery.Deliver(ctx, c); err != nil {
			slog.Error("notification delivery failed",
				slog.String("reminder_id", c.ReminderID),
				slog.String("error", err.Error()))
		}
	}
}
