package repository

import (
	"context"

	"stillform-backend/internal/domains/work/model"
)

// RepositoryInterface - access to the catalog store
type RepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Work, error)
	GetBySlug(ctx context.Context, slug string) (*model.Work, error)
	// List returns every work in store order
	List(ctx context.Context) ([]model.Work, error)
	Upsert(ctx context.Context, work *model.Work) error
}
