package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stillform-backend/internal/domains/physicalization/model"
	"stillform-backend/internal/infrastructure/docstore"
)

// RepositoryInterface - access to physicalization requests
type RepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Physicalization, error)
	// FindByOrderID returns nil without error when the order has no request
	FindByOrderID(ctx context.Context, orderID string) (*model.Physicalization, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Physicalization, error)
	Upsert(ctx context.Context, p *model.Physicalization) error
}

type Repository struct {
	store docstore.Store[model.Physicalization]
}

func NewRepository(store docstore.Store[model.Physicalization]) RepositoryInterface {
	return &Repository{store: store}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*model.Physicalization, error) {
	p, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrPhysicalizationNotFound
		}
		return nil, fmt.Errorf("get physicalization %s: %w", id, err)
	}
	return &p, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*model.Physicalization, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list physicalizations: %w", err)
	}
	for i := range all {
		if all[i].OrderID == orderID {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]model.Physicalization, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list physicalizations: %w", err)
	}

	out := make([]model.Physicalization, 0, len(all))
	for _, p := range all {
		if strings.EqualFold(p.OwnerAddress, owner) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Repository) Upsert(ctx context.Context, p *model.Physicalization) error {
	if err := r.store.Upsert(ctx, *p); err != nil {
		return fmt.Errorf("upsert physicalization %s: %w", p.PhysicalizationID, err)
	}
	return nil
}
