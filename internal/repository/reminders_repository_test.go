package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	"github.com/Shahd3/iCare/internal/repository"
	"github.com/Shahd3/iCare/pkg/entity"
)

var (
	loadQuery = regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1;`)
	saveQuery = regexp.QuoteMeta(`INSERT INTO kv_store (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`)
)

func TestLoadReminders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	stored := []*entity.Reminder{
		{ID: uuid.New(), MedName: "aspirin", Time: "08:00 AM", Recurrence: entity.RecurrenceDaily},
		{ID: uuid.New(), MedName: "insulin", Time: "9:30 PM", Recurrence: entity.RecurrenceWeekly, Days: []string{"Mon"}},
	}
	blob, err := sonic.Marshal(stored)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(loadQuery).
			WithArgs("reminders").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(blob))
		reminders, err := repo.Load(ctx)
		assert.NoError(t, err)
		require.Len(t, reminders, 2)
		assert.Equal(t, stored[0].ID, reminders[0].ID)
		assert.Equal(t, "insulin", reminders[1].MedName)
	})
	t.Run("absent key means empty list", func(t *testing.T) {
		mock.ExpectQuery(loadQuery).
			WithArgs("reminders").
			WillReturnError(pgx.ErrNoRows)
		reminders, err := repo.Load(ctx)
		assert.NoError(t, err)
		assert.Empty(t, reminders)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(loadQuery).
			WithArgs("reminders").
			WillReturnError(errors.New("db error"))
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
	})
	t.Run("corrupted blob", func(t *testing.T) {
		mock.ExpectQuery(loadQuery).
			WithArgs("reminders").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte("{not json")))
		_, err := repo.Load(ctx)
		assert.Error(t, err)
	})
}

func TestSaveReminders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	reminders := []*entity.Reminder{
		{ID: uuid.New(), MedName: "aspirin", Time: "08:00 AM", Recurrence: entity.RecurrenceDaily},
	}
	blob, err := sonic.Marshal(reminders)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(saveQuery).
			WithArgs("reminders", blob).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Save(ctx, reminders)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(saveQuery).
			WithArgs("reminders", blob).
			WillReturnError(errors.New("db error"))
		err := repo.Save(ctx, reminders)
		assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
	})
}
