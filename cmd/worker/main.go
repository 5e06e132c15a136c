package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"stillform-backend/pkg/container"
	"stillform-backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using system environment variables")
	}

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("[Container] Failed to initialize: %v", err)
	}
	defer c.Cleanup()

	logger.Init(c.Config.App.Environment)

	if !c.Config.Redis.Enabled {
		log.Fatal("[Config] REDIS_ENABLED=false - the worker needs Redis")
	}
	log.Printf("[Config] Redis: %s, store: %s", c.Config.Redis.Host, c.Config.Store.Driver)

	handlers := initializeHandlers(c)

	// Health checks run before anything starts consuming
	if err := startServices(c.Config.Redis); err != nil {
		log.Fatalf("[Startup] Health check failed: %v", err)
	}

	srv := setupAsynqServer(c.Config.Redis, handlers)
	scheduler := setupScheduler(c.Config.Redis, c.Config.Job)

	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[Shutdown] Gracefully stopping...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Println("[Shutdown] ✓ Stopped")
}
