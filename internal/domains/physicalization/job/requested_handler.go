package job

import (
	"context"
	"encoding/json"
	"fmt"

	"stillform-backend/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// RequestedHandler records accepted physicalization requests for the fulfilment team
type RequestedHandler struct{}

func NewRequestedHandler() *RequestedHandler {
	return &RequestedHandler{}
}

func (h *RequestedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.PhysicalizationRequestedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal PhysicalizationRequested payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	event := log.Info().
		Str("work_id", payload.WorkID).
		Str("wallet", payload.WalletAddress).
		Time("requested_at", payload.RequestedAt)
	if payload.ShippingInfo != nil {
		event = event.Str("carrier", payload.ShippingInfo.Carrier)
	}
	event.Msg("Physicalization request received")

	return nil
}
