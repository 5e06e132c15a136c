package repository

import (
	"context"
	"fmt"
	"strings"

	"stillform-backend/internal/domains/collection/model"
	"stillform-backend/internal/infrastructure/docstore"
)

// RepositoryInterface - access to wallet holdings
type RepositoryInterface interface {
	// ListByOwner returns the wallet's items in store order
	ListByOwner(ctx context.Context, owner string) ([]model.CollectionItem, error)
}

type Repository struct {
	store docstore.Store[model.CollectionItem]
}

func NewRepository(store docstore.Store[model.CollectionItem]) RepositoryInterface {
	return &Repository{store: store}
}

func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]model.CollectionItem, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collection items: %w", err)
	}

	out := make([]model.CollectionItem, 0, len(all))
	for _, item := range all {
		if strings.EqualFold(item.OwnerAddress, owner) {
			out = append(out, item)
		}
	}
	return out, nil
}
