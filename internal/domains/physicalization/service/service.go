package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"stillform-backend/internal/domains/physicalization/model"
	"stillform-backend/internal/domains/physicalization/repository"
	workModel "stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/infrastructure/queue"
	"stillform-backend/internal/shared"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// ServiceInterface - physicalization requests and their progress
type ServiceInterface interface {
	Request(ctx context.Context, wallet string, req model.RequestPhysicalizationRequest) (*model.RequestResponse, error)
	GetByID(ctx context.Context, id string) (*model.View, error)
	ListForOwner(ctx context.Context, wallet string) ([]model.View, error)
}

// WorkReader is the slice of the work repository this service needs
type WorkReader interface {
	GetByID(ctx context.Context, id string) (*workModel.Work, error)
}

type Service struct {
	repo  repository.RepositoryInterface
	works WorkReader
	queue queue.Enqueuer
	now   func() time.Time
}

func NewService(repo repository.RepositoryInterface, works WorkReader, q queue.Enqueuer) ServiceInterface {
	return &Service{
		repo:  repo,
		works: works,
		queue: q,
		now:   time.Now,
	}
}

// Request accepts a physicalization request for a work.
// The work is not modified; fulfilment happens out of band via the worker.
func (s *Service) Request(ctx context.Context, wallet string, req model.RequestPhysicalizationRequest) (*model.RequestResponse, error) {
	req.WorkID = strings.TrimSpace(req.WorkID)
	if req.WorkID == "" {
		return nil, model.ToAppError(model.ErrWorkIDRequired)
	}
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFrom("VALIDATION_ERROR", "Validation Error", err)
	}

	work, err := s.works.GetByID(ctx, req.WorkID)
	if err != nil {
		return nil, workModel.ToAppError(err)
	}

	logger.Info("physicalization requested", map[string]interface{}{
		"work_id": work.ID,
		"wallet":  wallet,
	})

	payload := shared.PhysicalizationRequestedPayload{
		WorkID:        work.ID,
		WalletAddress: wallet,
		ShippingInfo:  req.ShippingInfo,
		RequestedAt:   s.now().UTC(),
	}
	// notification only; the request itself already succeeded
	if err := s.queue.Enqueue(ctx, shared.TypePhysicalizationRequested, payload,
		asynq.Queue(shared.QueueDefault), asynq.MaxRetry(3)); err != nil {
		logger.Error("failed to enqueue physicalization notification", err)
	}

	return &model.RequestResponse{Message: "Physicalization request successful"}, nil
}

// GetByID returns the request with its work and derived timeline
func (s *Service) GetByID(ctx context.Context, id string) (*model.View, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, model.ToAppError(err)
	}

	view := s.view(ctx, *p)
	view.Timeline = p.Timeline()
	return &view, nil
}

func (s *Service) ListForOwner(ctx context.Context, wallet string) ([]model.View, error) {
	items, err := s.repo.ListByOwner(ctx, wallet)
	if err != nil {
		return nil, apperror.Internal("Failed to load physicalizations", err)
	}

	views := make([]model.View, 0, len(items))
	for _, p := range items {
		views = append(views, s.view(ctx, p))
	}
	return views, nil
}

// view embeds the work; a work that no longer exists is left out
func (s *Service) view(ctx context.Context, p model.Physicalization) model.View {
	view := model.View{Physicalization: p}

	work, err := s.works.GetByID(ctx, p.WorkID)
	if err != nil {
		if !errors.Is(err, workModel.ErrWorkNotFound) {
			logger.Error("failed to load work for physicalization", err)
		}
		return view
	}
	view.Work = work
	return view
}
