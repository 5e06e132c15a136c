package service

import (
	"context"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/internal/shared/utils"
	"stillform-backend/pkg/logger"
)

// CreateWork validates the draft and stores it with status draft
func (s *WorkService) CreateWork(ctx context.Context, draft model.Draft) (*model.CreateWorkResponse, error) {
	if err := model.ValidateDraft(draft); err != nil {
		return nil, err
	}

	work := model.BuildWork(draft, utils.NewID("work"), s.now())

	switch d := draft.(type) {
	case model.StandardDraft:
		logger.Info("received new standard work", map[string]interface{}{
			"work_id":  work.ID,
			"title":    d.Title,
			"editions": len(d.Editions),
		})
	case model.BlindboxDraft:
		logger.Info("received new blindbox work", map[string]interface{}{
			"work_id":  work.ID,
			"title":    d.Title,
			"editions": len(d.Editions),
			"styles":   len(d.BlindboxStyles),
		})
	}

	if err := s.repo.Upsert(ctx, &work); err != nil {
		return nil, apperror.Internal("Failed to create work", err)
	}

	return &model.CreateWorkResponse{
		ID:     work.ID,
		Slug:   work.Slug,
		Status: work.Status,
		Draft:  draft,
	}, nil
}
