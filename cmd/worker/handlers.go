package main

import (
	"github.com/hibiken/asynq"

	physicalizationJob "stillform-backend/internal/domains/physicalization/job"
	uploadJob "stillform-backend/internal/domains/upload/job"
	workJob "stillform-backend/internal/domains/work/job"
	"stillform-backend/internal/shared"
	"stillform-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	physicalizationRequested *physicalizationJob.RequestedHandler
	deleteObject             *uploadJob.DeleteObjectHandler
	purgeCache               *workJob.PurgeCacheHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		physicalizationRequested: physicalizationJob.NewRequestedHandler(),
		deleteObject:             uploadJob.NewDeleteObjectHandler(c.UploadService),
		purgeCache:               workJob.NewPurgeCacheHandler(c.Cache),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypePhysicalizationRequested, h.physicalizationRequested.ProcessTask)

	// Maintenance tasks
	mux.HandleFunc(shared.TypeDeleteStorageObject, h.deleteObject.ProcessTask)
	mux.HandleFunc(shared.TypePurgeCatalogCache, h.purgeCache.ProcessTask)
}
