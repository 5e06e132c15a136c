package service

import (
	"context"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/internal/shared/utils"
	"stillform-backend/pkg/logger"
)

// ListWork - draft|unlisted|listed → listed, updating the chosen edition's price.
// A work with no edition left in supply cannot be listed.
func (s *WorkService) ListWork(ctx context.Context, req model.ListWorkRequest) (*model.ListingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFrom("VALIDATION_ERROR", "Validation Error", err)
	}

	work, err := s.repo.GetByID(ctx, req.WorkID)
	if err != nil {
		return nil, model.ToAppError(err)
	}

	if !work.HasSupply() {
		return nil, model.ToAppError(model.ErrNoSupply)
	}

	work.Status = model.StatusListed
	// an unknown edition leaves every edition untouched
	for i := range work.Editions {
		if work.Editions[i].EditionID == *req.EditionID {
			work.Editions[i].Price = req.Price
			work.Editions[i].Currency = req.Currency
			break
		}
	}

	if err := s.repo.Upsert(ctx, work); err != nil {
		return nil, apperror.Internal("Failed to create listing", err)
	}
	s.InvalidateCache(ctx, work.Slug)

	logger.Info("work listed", map[string]interface{}{
		"work_id":    work.ID,
		"edition_id": *req.EditionID,
		"price":      req.Price.String(),
		"currency":   req.Currency,
	})

	return &model.ListingResponse{
		ListingID:   utils.NewID("list"),
		Status:      model.StatusListed,
		UpdatedWork: work,
	}, nil
}

// UnlistWork - listed|unlisted → unlisted. Drafts cannot be unlisted.
func (s *WorkService) UnlistWork(ctx context.Context, workID string) (*model.UnlistResponse, error) {
	work, err := s.repo.GetByID(ctx, workID)
	if err != nil {
		return nil, model.ToAppError(err)
	}

	if work.Status == model.StatusDraft {
		return nil, model.ToAppError(model.ErrInvalidTransition)
	}

	work.Status = model.StatusUnlisted
	if err := s.repo.Upsert(ctx, work); err != nil {
		return nil, apperror.Internal("Failed to unlist work", err)
	}
	s.InvalidateCache(ctx, work.Slug)

	logger.Info("work unlisted", map[string]interface{}{"work_id": work.ID})

	return &model.UnlistResponse{
		Status:      model.StatusUnlisted,
		UpdatedWork: work,
	}, nil
}
