package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	repomocks "github.com/Shahd3/iCare/internal/repository/mocks"
	schedmocks "github.com/Shahd3/iCare/internal/scheduler/mocks"
	"github.com/Shahd3/iCare/internal/service"
	"github.com/Shahd3/iCare/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestCreateReminder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockRemindersRepositoryI(ctrl)
	sched := schedmocks.NewMockSchedulerI(ctrl)
	serv := service.NewRemindersService(repo, sched)
	ctx := context.Background()

	testCases := []struct {
		Desc         string
		Req          service.CreateReminderRequest
		Error        error
		WantErr      bool
		MockPrepFunc func()
	}{
		{
			Desc: "success daily",
			Req: service.CreateReminderRequest{
				MedName:    "aspirin",
				Dosage:     "100mg",
				Time:       "08:00 AM",
				Recurrence: entity.RecurrenceDaily,
			},
			MockPrepFunc: func() {
				repo.EXPECT().Load(gomock.Any()).Return([]*entity.Reminder{}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc: "success weekly",
			Req: service.CreateReminderRequest{
				MedName:    "insulin",
				Time:       "9:30 PM",
				Recurrence: entity.RecurrenceWeekly,
				Days:       []string{"Mon", "Thu"},
			},
			MockPrepFunc: func() {
				repo.EXPECT().Load(gomock.Any()).Return([]*entity.Reminder{}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc: "duplicate med name",
			Req: service.CreateReminderRequest{
				MedName:    "aspirin",
				Time:       "08:00 AM",
				Recurrence: entity.RecurrenceDaily,
			},
			Error: errorvalues.ErrReminderExists,
			MockPrepFunc: func() {
				repo.EXPECT().Load(gomock.Any()).Return([]*entity.Reminder{
					{ID: uuid.New(), MedName: "aspirin"},
				}, nil)
			},
		},
		{
			Desc: "weekly without days",
			Req: service.CreateReminderRequest{
				MedName:    "insulin",
				Time:       "08:00 AM",
				Recurrence: entity.RecurrenceWeekly,
			},
			Error:        errorvalues.ErrNoDaysSelected,
			MockPrepFunc: func() {},
		},
		{
			Desc: "invalid time string",
			Req: service.CreateReminderRequest{
				MedName:    "aspirin",
				Time:       "around breakfast",
				Recurrence: entity.RecurrenceDaily,
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
		{
			Desc: "invalid weekday",
			Req: service.CreateReminderRequest{
				MedName:    "aspirin",
				Time:       "08:00 AM",
				Recurrence: entity.RecurrenceWeekly,
				Days:       []string{"Someday"},
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
		{
			Desc: "invalid recurrence",
			Req: service.CreateReminderRequest{
				MedName:    "aspirin",
				Time:       "08:00 AM",
				Recurrence: "hourly",
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			reminder, err := serv.Create(ctx, &tc.Req)
			switch {
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
			case tc.WantErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, reminder.ID)
				assert.Empty(t, reminder.ScheduleRefs)
			}
		})
	}
}

func TestDeleteReminderCancelsRefsFirst(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockRemindersRepositoryI(ctrl)
	sched := schedmocks.NewMockSchedulerI(ctrl)
	serv := service.NewRemindersService(repo, sched)

	reminder := weeklyReminder("ref-1", "ref-2")
	repo.EXPECT().Load(gomock.Any()).Return([]*entity.Reminder{reminder}, nil)
	sched.EXPECT().Cancel(gomock.Any(), "ref-1").Return(nil)
	sched.EXPECT().Cancel(gomock.Any(), "ref-2").Return(nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Len(0)).Return(nil)

	err := serv.Delete(context.Background(), reminder.ID)
	assert.NoError(t, err)
}

func TestDeleteReminderNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockRemindersRepositoryI(ctrl)
	sched := schedmocks.NewMockSchedulerI(ctrl)
	serv := service.NewRemindersService(repo, sched)

	repo.EXPECT().Load(gomock.Any()).Return([]*entity.Reminder{}, nil)

	err := serv.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrReminderNotFound)
}

func TestListReminders(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockRemindersRepositoryI(ctrl)
	sched := schedmocks.NewMockSchedulerI(ctrl)
	serv := service.NewRemindersService(repo, sched)

	stored := []*entity.Reminder{dailyReminder(), weeklyReminder()}
	repo.EXPECT().Load(gomock.Any()).Return(stored, nil)

	reminders, err := serv.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, reminders)
}
