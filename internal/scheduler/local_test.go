package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureDelivery struct {
	mu        sync.Mutex
	delivered []Content
}

func (c *captureDelivery) Deliver(ctx context.Context, content Content) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delivered = append(c.delivered, content)
	return nil
}

func (c *captureDelivery) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.delivered)
}

func TestLocalSchedulerRegistrationAndListing(t *testing.T) {
	t.Parallel()
	ls := NewLocalScheduler(&captureDelivery{})
	ctx := context.Background()

	id1, err := ls.ScheduleRecurring(ctx, Content{ReminderID: "r1"}, 8, 0)
	require.NoError(t, err)
	id2, err := ls.ScheduleAt(ctx, Content{ReminderID: "r2"}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	live, err := ls.ListActiveIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, live, id1)
	assert.Contains(t, live, id2)

	require.NoError(t, ls.Cancel(ctx, id1))
	// canceling twice or canceling garbage is fine
	require.NoError(t, ls.Cancel(ctx, id1))
	require.NoError(t, ls.Cancel(ctx, "no-such-id"))

	live, err = ls.ListActiveIDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, live, id1)
	assert.Contains(t, live, id2)
}

func TestLocalSchedulerFiresDueOneShotOnce(t *testing.T) {
	t.Parallel()
	delivery := &captureDelivery{}
	ls := NewLocalScheduler(delivery)
	ctx := context.Background()
	now := time.Date(2025, time.January, 8, 8, 0, 0, 0, time.UTC)

	id, err := ls.ScheduleAt(ctx, Content{ReminderID: "r1"}, now.Add(-time.Minute))
	require.NoError(t, err)

	ls.fireDue(ctx, now)
	assert.Equal(t, 1, delivery.count())

	// one-shot is consumed: gone from the live set, never fires again
	live, err := ls.ListActiveIDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, live, id)
	ls.fireDue(ctx, now.Add(time.Minute))
	assert.Equal(t, 1, delivery.count())
}

func TestLocalSchedulerRecurringFiresOnMatchingMinute(t *testing.T) {
	t.Parallel()
	delivery := &captureDelivery{}
	ls := NewLocalScheduler(delivery)
	ctx := context.Background()

	id, err := ls.ScheduleRecurring(ctx, Content{ReminderID: "r1"}, 8, 30)
	require.NoError(t, err)

	day := time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC)
	ls.fireDue(ctx, day.Add(8*time.Hour+29*time.Minute))
	assert.Equal(t, 0, delivery.count())
	ls.fireDue(ctx, day.Add(8*time.Hour+30*time.Minute))
	assert.Equal(t, 1, delivery.count())
	// still registered for tomorrow
	ls.fireDue(ctx, day.AddDate(0, 0, 1).Add(8*time.Hour+30*time.Minute))
	assert.Equal(t, 2, delivery.count())

	live, err := ls.ListActiveIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, live, id)
}
