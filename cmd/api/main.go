// @title iCare reminders API
// @description Medication reminder scheduling, adherence tracking and adaptive offsets
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shahd3/iCare/internal/api"
	"github.com/Shahd3/iCare/internal/bandit"
	"github.com/Shahd3/iCare/internal/pharmacy"
	"github.com/Shahd3/iCare/internal/repository"
	"github.com/Shahd3/iCare/internal/scheduler"
	"github.com/Shahd3/iCare/internal/service"
	"github.com/Shahd3/iCare/pkg/cleanup"
	"github.com/Shahd3/iCare/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := newRepo(cfg)
	sched := scheduler.NewLocalScheduler(newDelivery(cfg))
	go sched.Run(ctx)

	seed := cfg.GetInt("BANDIT_SEED", int(time.Now().UnixNano()))
	horizon := cfg.GetInt("WEEKLY_HORIZON", 4)
	intervalMin := cfg.GetInt("RECONCILE_INTERVAL_MIN", 15)

	reconciler := service.NewReconcilerService(repo, sched, horizon)
	go reconciler.Run(ctx, time.Duration(intervalMin)*time.Minute)

	serv := api.New(&api.ServicesList{
		RemindersService:  service.NewRemindersService(repo, sched),
		AdherenceService:  service.NewAdherenceService(repo, bandit.New(int64(seed))),
		ReconcilerService: reconciler,
		PharmacyFinder:    pharmacy.NewClient(),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

func newRepo(cfg *config.Config) repository.RemindersRepositoryI {
	if cfg.GetString("STORE_BACKEND") == "redis" {
		return repository.NewRedisRemindersRepo(repository.RedisCfg{
			Addr:     cfg.GetString("REDIS_ADDR"),
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB", 0),
		})
	}
	return repository.NewRemindersRepo(&repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	})
}

func newDelivery(cfg *config.Config) scheduler.Delivery {
	url := cfg.GetString("AMQP_URL")
	if url == "" {
		return scheduler.LogDelivery{}
	}
	delivery, err := scheduler.NewAMQPDelivery(url)
	if err != nil {
		log.Fatal("connecting notification broker error: " + err.Error())
	}
	return delivery
}
