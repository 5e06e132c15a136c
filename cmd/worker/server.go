package main

import (
	"context"
	"log"

	"stillform-backend/internal/config"
	"stillform-backend/internal/shared"

	"github.com/hibiken/asynq"
)

// asynqServer wraps asynq.Server with logging
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer creates the server, registers handlers and starts consuming
func setupAsynqServer(redis config.RedisConfig, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redis.Host, Password: redis.Password, DB: redis.DB},
		asynq.Config{
			Queues: map[string]int{
				shared.QueueCritical: 6,
				shared.QueueDefault:  3,
				shared.QueueLow:      1,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				log.Printf("[Asynq] ❌ Task failed - Type: %s, Retry: %d/%d, Error: %v", task.Type(), retried, maxRetry, err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown stops fetching new tasks and waits for active ones
// up to asynq's ShutdownTimeout
func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.Server.Shutdown()
	log.Println("[Worker] ✓ Gracefully stopped")
}
