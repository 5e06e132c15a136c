package service

import (
	"context"
	"time"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/domains/work/repository"
	"stillform-backend/internal/shared/query"
	"stillform-backend/pkg/cache"
	"stillform-backend/pkg/logger"
)

type WorkService struct {
	repo     repository.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(repo repository.RepositoryInterface, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	if c == nil {
		c = cache.NewNoop()
	}
	return &WorkService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Search - storefront query: hidden predicate, text, filters, sort, page
func (s *WorkService) Search(ctx context.Context, q model.SearchQuery) (*query.Page[model.Work], error) {
	params, err := parseSearch(q)
	if err != nil {
		return nil, err
	}

	cacheKey := params.cacheKey()
	var cached query.Page[model.Work]
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("work search cache read failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}
	if found {
		return &cached, nil
	}

	works, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	page := query.Run(works, params.request())

	if err := s.cache.Set(ctx, cacheKey, page, s.cacheTTL); err != nil {
		logger.Warn("work search cache write failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}

	return &page, nil
}

// GetBySlug - detail view, any status
func (s *WorkService) GetBySlug(ctx context.Context, slug string) (*model.Work, error) {
	cacheKey := model.SlugCacheKey(slug)

	var cached model.Work
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warn("work detail cache read failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}
	if found {
		return &cached, nil
	}

	work, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, model.ToAppError(err)
	}

	if err := s.cache.Set(ctx, cacheKey, work, s.cacheTTL); err != nil {
		logger.Warn("work detail cache write failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}
	return work, nil
}

func (s *WorkService) GetByID(ctx context.Context, id string) (*model.Work, error) {
	work, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, model.ToAppError(err)
	}
	return work, nil
}

func (s *WorkService) InvalidateCache(ctx context.Context, slug string) {
	if slug != "" {
		if err := s.cache.Delete(ctx, model.SlugCacheKey(slug)); err != nil {
			logger.Error("failed to drop work detail cache", err)
		}
	}
	if err := s.cache.DeletePattern(ctx, model.SearchCachePattern); err != nil {
		logger.Error("failed to drop search cache", err)
	}
}
