package queue

import (
	"encoding/json"
	"time"

	"stillform-backend/internal/config"
	"stillform-backend/internal/shared"
	"stillform-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redis config.RedisConfig, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redis.Host, Password: redis.Password, DB: redis.DB},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerPurgeCatalogCacheJob()
}

// ================================================
// JOB: Purge cached catalog search pages (hourly by default)
// ================================================
func (s *Scheduler) registerPurgeCatalogCacheJob() error {
	payload, err := json.Marshal(shared.PurgeCatalogCachePayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePurgeCatalogCache, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.PurgeCacheCron,
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PurgeCatalogCache job", err)
		return err
	}

	logger.Info("✓ Registered PurgeCatalogCache", map[string]interface{}{"cron": s.jobConfig.PurgeCacheCron})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
