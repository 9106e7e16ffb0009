package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	"github.com/Shahd3/iCare/internal/repository"
	"github.com/Shahd3/iCare/internal/scheduler"
	"github.com/Shahd3/iCare/pkg/entity"
)

// storeMu serializes every read-modify-write of the reminders key across
// all writers (CRUD, adherence tracker, reconciler). The list is small
// and writes are infrequent, so one lock is enough.
var storeMu sync.Mutex

type RemindersService struct {
	repo  repository.RemindersRepositoryI
	sched scheduler.SchedulerI
}

func NewRemindersService(repo repository.RemindersRepositoryI, sched scheduler.SchedulerI) *RemindersService {
	if repo == nil || sched == nil {
		log.Fatal("on reminders service provided nil collaborators")
	}
	return &RemindersService{
		repo:  repo,
		sched: sched,
	}
}

func (rs *RemindersService) Create(ctx context.Context, req *CreateReminderRequest) (*entity.Reminder, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	if req.Recurrence == entity.RecurrenceWeekly && len(req.Days) == 0 {
		return nil, errorvalues.ErrNoDaysSelected
	}

	storeMu.Lock()
	defer storeMu.Unlock()
	reminders, err := rs.repo.Load(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	for _, r := range reminders {
		if r.MedName == req.MedName {
			return nil, errorvalues.ErrReminderExists
		}
	}
	now := time.Now()
	reminder := &entity.Reminder{
		ID:         uuid.New(),
		MedName:    req.MedName,
		Dosage:     req.Dosage,
		Time:       req.Time,
		Recurrence: req.Recurrence,
		Days:       req.Days,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	reminders = append(reminders, reminder)
	if err := rs.repo.Save(ctx, reminders); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return reminder, nil
}

func (rs *RemindersService) List(ctx context.Context) ([]*entity.Reminder, error) {
	reminders, err := rs.repo.Load(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return reminders, nil
}

// Delete honors the CRUD boundary contract: every schedule ref is handed
// to Cancel before the reminder leaves the store. Cancel failures are
// swallowed, a stale id simply has no effect on the live scheduler.
func (rs *RemindersService) Delete(ctx context.Context, id uuid.UUID) error {
	storeMu.Lock()
	defer storeMu.Unlock()
	reminders, err := rs.repo.Load(ctx)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	idx := -1
	for i, r := range reminders {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errorvalues.ErrReminderNotFound
	}
	for _, ref := range reminders[idx].ScheduleRefs {
		if err := rs.sched.Cancel(ctx, ref); err != nil {
			slog.Warn("canceling schedule on delete failed",
				slog.String("reminder_id", id.String()),
				slog.String("ref", ref),
				slog.String("error", err.Error()))
		}
	}
	reminders = append(reminders[:idx], reminders[idx+1:]...)
	if err := rs.repo.Save(ctx, reminders); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
