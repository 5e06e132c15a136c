package main

import (
	"log"

	"stillform-backend/internal/config"
	"stillform-backend/internal/infrastructure/queue"
)

// asynqScheduler wraps queue.Scheduler with logging
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler registers the cron jobs and starts the scheduler
func setupScheduler(redis config.RedisConfig, jobConfig config.JobConfig) *asynqScheduler {
	scheduler := queue.NewScheduler(redis, jobConfig)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] ✓ Stopped")
}
