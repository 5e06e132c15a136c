package repository

import (
	"context"
	"errors"
	"fmt"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/infrastructure/docstore"
)

type Repository struct {
	store docstore.Store[model.Work]
}

func NewRepository(store docstore.Store[model.Work]) RepositoryInterface {
	return &Repository{store: store}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*model.Work, error) {
	work, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrWorkNotFound
		}
		return nil, fmt.Errorf("get work %s: %w", id, err)
	}
	return &work, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*model.Work, error) {
	works, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	for i := range works {
		if works[i].Slug == slug {
			return &works[i], nil
		}
	}
	return nil, model.ErrWorkNotFound
}

func (r *Repository) List(ctx context.Context) ([]model.Work, error) {
	works, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return works, nil
}

func (r *Repository) Upsert(ctx context.Context, work *model.Work) error {
	if err := r.store.Upsert(ctx, *work); err != nil {
		return fmt.Errorf("upsert work %s: %w", work.ID, err)
	}
	return nil
}
