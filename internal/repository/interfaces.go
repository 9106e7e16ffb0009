package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Shahd3/iCare/pkg/entity"
)

// RemindersRepositoryI is the key-value store boundary: one logical key
// holding the ordered reminder list as a single JSON document. The store
// has no scheduling knowledge; intent lives here, live trigger state
// lives in the scheduler.
type RemindersRepositoryI interface {
	// Loads the full reminder list. Absent key means an empty list
	Load(ctx context.Context) ([]*entity.Reminder, error)
	// Replaces the full reminder list in one write
	Save(ctx context.Context, reminders []*entity.Reminder) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
