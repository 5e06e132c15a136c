package job

import (
	"context"
	"encoding/json"
	"fmt"

	"stillform-backend/internal/domains/upload/service"
	"stillform-backend/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// DeleteObjectHandler retries removal of uploads orphaned by a failed publish
type DeleteObjectHandler struct {
	uploads service.ServiceInterface
}

func NewDeleteObjectHandler(uploads service.ServiceInterface) *DeleteObjectHandler {
	return &DeleteObjectHandler{uploads: uploads}
}

func (h *DeleteObjectHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.DeleteStorageObjectPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal DeleteStorageObject payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	if payload.Key == "" {
		return fmt.Errorf("empty object key: %w", asynq.SkipRetry)
	}

	if err := h.uploads.Delete(ctx, payload.Key); err != nil {
		log.Error().
			Err(err).
			Str("key", payload.Key).
			Msg("Failed to delete orphaned object")
		return fmt.Errorf("delete object: %w", err)
	}

	log.Info().
		Str("key", payload.Key).
		Str("reason", payload.Reason).
		Msg("Orphaned object deleted")
	return nil
}
