package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Shahd3/iCare/internal/bandit"
	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	"github.com/Shahd3/iCare/internal/repository"
	"github.com/Shahd3/iCare/pkg/entity"
	"github.com/Shahd3/iCare/pkg/metrics"
)

const dayKeyLayout = "2006-01-02"

type AdherenceService struct {
	repo   repository.RemindersRepositoryI
	policy *bandit.Policy
	clock  func() time.Time
}

func NewAdherenceService(repo repository.RemindersRepositoryI, policy *bandit.Policy) *AdherenceService {
	return NewAdherenceServiceWithClock(repo, policy, time.Now)
}

func NewAdherenceServiceWithClock(repo repository.RemindersRepositoryI, policy *bandit.Policy, clock func() time.Time) *AdherenceService {
	if repo == nil || policy == nil {
		log.Fatal("on adherence service provided nil collaborators")
	}
	return &AdherenceService{
		repo:   repo,
		policy: policy,
		clock:  clock,
	}
}

// RecordTaken registers a "taken" tap for today. A second tap on the same
// day removes the record again (undo for an accidental tap) and skips the
// learning step. A fresh record runs the offset policy synchronously so
// the reward and the next offset land in the same persisted write.
func (as *AdherenceService) RecordTaken(ctx context.Context, idOrName string) (*TakenResult, error) {
	storeMu.Lock()
	defer storeMu.Unlock()
	reminders, err := as.repo.Load(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	reminder := findReminder(reminders, idOrName)
	if reminder == nil {
		return nil, errorvalues.ErrReminderNotFound
	}

	now := as.clock()
	today := now.Format(dayKeyLayout)
	if idx := reminder.RecordForDate(today); idx != -1 {
		reminder.History = append(reminder.History[:idx], reminder.History[idx+1:]...)
		reminder.UpdatedAt = now
		if err := as.repo.Save(ctx, reminders); err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		metrics.IncrementTakenEvents("toggled_off")
		return &TakenResult{ToggledOff: true}, nil
	}

	record := entity.AdherenceRecord{
		Date:      today,
		TS:        now,
		Scheduled: reminder.Time,
		Offset:    reminder.CurrentOffsetMin,
		Reward:    nil,
	}
	outcome, err := as.policy.ApplyTaken(reminder, now)
	if err != nil {
		return nil, errors.New("offset policy error: " + err.Error())
	}
	reward := outcome.Reward
	record.Scheduled = outcome.SuggestedTime
	record.Offset = outcome.OffsetMin
	record.Reward = &reward
	reminder.History = append(reminder.History, record)
	reminder.UpdatedAt = now

	if err := as.repo.Save(ctx, reminders); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	metrics.IncrementTakenEvents("recorded")
	return &TakenResult{
		Record:        &record,
		Reward:        outcome.Reward,
		SuggestedTime: outcome.SuggestedTime,
		OffsetMin:     outcome.OffsetMin,
	}, nil
}

// findReminder matches by id first and falls back to the med name. The
// fallback is a compatibility shim for records created before ids were
// assigned at creation time.
func findReminder(reminders []*entity.Reminder, idOrName string) *entity.Reminder {
	for _, r := range reminders {
		if r.ID.String() == idOrName {
			return r
		}
	}
	for _, r := range reminders {
		if r.MedName == idOrName {
			return r
		}
	}
	return nil
}
