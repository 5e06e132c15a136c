package service

import (
	"context"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/query"

	"github.com/xuri/excelize/v2"
)

// ServiceInterface - catalog reads and work mutations
type ServiceInterface interface {
	Search(ctx context.Context, q model.SearchQuery) (*query.Page[model.Work], error)
	GetBySlug(ctx context.Context, slug string) (*model.Work, error)
	GetByID(ctx context.Context, id string) (*model.Work, error)

	ListWork(ctx context.Context, req model.ListWorkRequest) (*model.ListingResponse, error)
	UnlistWork(ctx context.Context, workID string) (*model.UnlistResponse, error)
	CreateWork(ctx context.Context, draft model.Draft) (*model.CreateWorkResponse, error)

	ExportToExcel(ctx context.Context, q model.SearchQuery) (*excelize.File, int, error)

	// InvalidateCache drops cached search pages and, when slug is set, that work's detail
	InvalidateCache(ctx context.Context, slug string)
}
