package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	"github.com/Shahd3/iCare/pkg/cleanup"
	"github.com/Shahd3/iCare/pkg/entity"
)

const remindersKey = "reminders"

// RemindersRepository persists the reminder list as one JSONB document in
// a kv_store table, matching the single-key layout the mobile client used.
type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepo(cfg DBConfig) *RemindersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for remindersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for remindersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RemindersRepository{
		conn: pool,
	}
}

func NewRemindersRepoWithConn(conn PgConnection) *RemindersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for remindersRepo: " + err.Error())
	}
	return &RemindersRepository{
		conn: conn,
	}
}

func (repo *RemindersRepository) Load(ctx context.Context) ([]*entity.Reminder, error) {
	row := repo.conn.QueryRow(
		ctx,
		`SELECT value FROM kv_store WHERE key = $1;`,
		remindersKey,
	)
	var blob []byte
	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*entity.Reminder{}, nil
		}
		return nil, errors.Join(errorvalues.ErrStoreUnavailable, err)
	}
	var reminders []*entity.Reminder
	if err := sonic.Unmarshal(blob, &reminders); err != nil {
		return nil, errors.New("parsing reminders blob error: " + err.Error())
	}
	return reminders, nil
}

func (repo *RemindersRepository) Save(ctx context.Context, reminders []*entity.Reminder) error {
	blob, err := sonic.Marshal(reminders)
	if err != nil {
		return errors.New("serializing reminders error: " + err.Error())
	}
	_, err = repo.conn.Exec(
		ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`,
		remindersKey,
		blob,
	)
	if err != nil {
		return errors.Join(errorvalues.ErrStoreUnavailable, err)
	}
	return nil
}
