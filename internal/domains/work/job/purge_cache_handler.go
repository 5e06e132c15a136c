package job

import (
	"context"
	"encoding/json"
	"fmt"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared"
	"stillform-backend/pkg/cache"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PurgeCacheHandler drops cached catalog search pages
type PurgeCacheHandler struct {
	cache cache.Cache
}

func NewPurgeCacheHandler(c cache.Cache) *PurgeCacheHandler {
	return &PurgeCacheHandler{cache: c}
}

func (h *PurgeCacheHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.PurgeCatalogCachePayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal PurgeCatalogCache payload")
			return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
		}
	}

	pattern := payload.Pattern
	if pattern == "" {
		pattern = model.SearchCachePattern
	}

	if err := h.cache.DeletePattern(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("Failed to purge catalog cache")
		return fmt.Errorf("purge cache: %w", err)
	}

	log.Info().Str("pattern", pattern).Msg("Catalog cache purged")
	return nil
}
