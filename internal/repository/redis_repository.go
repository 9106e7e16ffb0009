package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	errorvalues "github.com/Shahd3/iCare/internal/error_values"
	"github.com/Shahd3/iCare/pkg/cleanup"
	"github.com/Shahd3/iCare/pkg/entity"
)

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
}

// RedisRemindersRepository is the alternative store backend: the same
// single-key JSON blob, kept in Redis instead of Postgres.
type RedisRemindersRepository struct {
	client *redis.Client
}

func NewRedisRemindersRepo(cfg RedisCfg) *RedisRemindersRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for remindersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisRemindersRepository{
		client: client,
	}
}

func NewRedisRemindersRepoWithClient(client *redis.Client) *RedisRemindersRepository {
	return &RedisRemindersRepository{
		client: client,
	}
}

func (repo *RedisRemindersRepository) Load(ctx context.Context) ([]*entity.Reminder, error) {
	blob, err := repo.client.Get(ctx, remindersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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

func (repo *RedisRemindersRepository) Save(ctx context.Context, reminders []*entity.Reminder) error {
	blob, err := sonic.Marshal(reminders)
	if err != nil {
		return errors.New("serializing reminders error: " + err.Error())
	}
	if err := repo.client.Set(ctx, remindersKey, blob, 0).Err(); err != nil {
		return errors.Join(errorvalues.ErrStoreUnavailable, err)
	}
	return nil
}
