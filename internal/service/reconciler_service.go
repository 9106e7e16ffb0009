package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	"github.com/Shahd3/iCare/internal/repository"
	"github.com/Shahd3/iCare/internal/scheduler"
	"github.com/Shahd3/iCare/internal/timerule"
	"github.com/Shahd3/iCare/pkg/entity"
	"github.com/Shahd3/iCare/pkg/metrics"
)

// ReconcilerService keeps the scheduler's live trigger set consistent
// with the reminders in the store. The scheduler can silently drop
// entries at any time; each pass re-derives and re-registers whatever
// drifted. Passes are idempotent, so running them repeatedly is the
// recovery mechanism, not a hazard.
type ReconcilerService struct {
	repo    repository.RemindersRepositoryI
	sched   scheduler.SchedulerI
	horizon int
	clock   func() time.Time

	// one in-flight resync per reminder id, system-wide
	resyncLocks sync.Map
}

func NewReconcilerService(repo repository.RemindersRepositoryI, sched scheduler.SchedulerI, horizon int) *ReconcilerService {
	return NewReconcilerServiceWithClock(repo, sched, horizon, time.Now)
}

func NewReconcilerServiceWithClock(repo repository.RemindersRepositoryI, sched scheduler.SchedulerI, horizon int, clock func() time.Time) *ReconcilerService {
	if repo == nil || sched == nil {
		log.Fatal("on reconciler service provided nil collaborators")
	}
	if horizon < 1 {
		horizon = 4
	}
	return &ReconcilerService{
		repo:    repo,
		sched:   sched,
		horizon: horizon,
		clock:   clock,
	}
}

// Reconcile runs one full pass. A reminder whose refs are all live is
// left untouched; anything else (never scheduled, partially live, fully
// gone) gets a full re-derivation. Partial patching is deliberately
// avoided: a half-registered state is worse than one redundant resync.
func (rs *ReconcilerService) Reconcile(ctx context.Context) (bool, error) {
	started := time.Now()
	storeMu.Lock()
	defer storeMu.Unlock()
	// the live snapshot is taken under the store lock: an overlapping pass
	// diffing against a pre-resync snapshot would redo finished work
	live, err := rs.sched.ListActiveIDs(ctx)
	if err != nil {
		return false, errors.Join(errorvalues.ErrSchedulerUnavailable, err)
	}
	reminders, err := rs.repo.Load(ctx)
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}

	changed := false
	for _, reminder := range reminders {
		if fullyLive(reminder, live) {
			continue
		}
		if rs.resync(ctx, reminder) {
			changed = true
			metrics.IncrementHealedReminders()
		}
	}

	if changed {
		if err := rs.repo.Save(ctx, reminders); err != nil {
			return false, errors.New("repository error: " + err.Error())
		}
	}
	metrics.ObserveReconcilePass(changed, time.Since(started))
	return changed, nil
}

// fullyLive reports whether the reminder needs no resync: it has refs,
// every one of them is present in the scheduler's live set, and they
// were derived with the offset currently in effect.
func fullyLive(r *entity.Reminder, live map[string]struct{}) bool {
	if len(r.ScheduleRefs) == 0 {
		return false
	}
	if r.ScheduledOffsetMin != r.CurrentOffsetMin {
		return false
	}
	for _, ref := range r.ScheduleRefs {
		if _, ok := live[ref]; !ok {
			return false
		}
	}
	return true
}

// resync cancels the recorded refs best-effort, registers a fresh trigger
// set and swaps the refs in. Returns false when the reminder was left
// untouched (bad time string, or registration failed and the next pass
// should retry).
func (rs *ReconcilerService) resync(ctx context.Context, reminder *entity.Reminder) bool {
	mu, _ := rs.resyncLocks.LoadOrStore(reminder.ID, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()
	defer lock.Unlock()

	logger := slog.Default().With(slog.String("reminder_id", reminder.ID.String()))

	triggers, err := timerule.Derive(reminder.Recurrence, reminder.Days, reminder.Time, reminder.CurrentOffsetMin, rs.clock(), rs.horizon)
	if err != nil {
		logger.Error("skipping reminder: deriving triggers failed", slog.String("error", err.Error()))
		return false
	}

	for _, ref := range reminder.ScheduleRefs {
		if err := rs.sched.Cancel(ctx, ref); err != nil {
			// stale ids are harmless, the scheduler is authoritative on liveness
			logger.Warn("canceling stale schedule failed", slog.String("ref", ref), slog.String("error", err.Error()))
		}
	}

	content := notificationContent(reminder)
	refs := make([]string, 0, len(triggers))
	for _, t := range triggers {
		var id string
		if t.Repeats {
			id, err = rs.sched.ScheduleRecurring(ctx, content, t.Hour, t.Minute)
		} else {
			id, err = rs.sched.ScheduleAt(ctx, content, t.At)
		}
		if err != nil {
			logger.Error("registering trigger failed, leaving refs for next pass", slog.String("error", err.Error()))
			// triggers registered so far this pass are recorded nowhere, so
			// no later pass could sweep them; cancel them now or they fire
			// as duplicates forever
			for _, partial := range refs {
				if cErr := rs.sched.Cancel(ctx, partial); cErr != nil {
					logger.Warn("canceling partially registered trigger failed", slog.String("ref", partial), slog.String("error", cErr.Error()))
				}
			}
			return false
		}
		refs = append(refs, id)
	}

	reminder.ScheduleRefs = refs
	reminder.ScheduledOffsetMin = reminder.CurrentOffsetMin
	reminder.UpdatedAt = rs.clock()
	logger.Info("reminder resynced", slog.Int("triggers", len(refs)))
	return true
}

func notificationContent(r *entity.Reminder) scheduler.Content {
	body := "It's medication time."
	if r.Dosage != "" {
		body = r.Dosage + ". Tap when taken."
	}
	return scheduler.Content{
		Title:      "Time for " + r.MedName,
		Body:       body,
		ReminderID: r.ID.String(),
	}
}

// Run blocks and reconciles on interval + immediately on start. It exits
// when ctx is cancelled.
func (rs *ReconcilerService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	rs.tick(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("reconciler shutting down")
			return
		case <-ticker.C:
			rs.tick(ctx)
		}
	}
}

func (rs *ReconcilerService) tick(ctx context.Context) {
	changed, err := rs.Reconcile(ctx)
	if err != nil {
		// self-healing: the next tick retries, no backoff needed here
		slog.Error("reconcile pass failed", slog.String("error", err.Error()))
		return
	}
	if changed {
		slog.Info("reconcile pass healed schedules")
	}
}
