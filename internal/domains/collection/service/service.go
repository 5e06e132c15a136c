package service

import (
	"context"
	"errors"
	"strings"

	"stillform-backend/internal/domains/collection/model"
	"stillform-backend/internal/domains/collection/repository"
	workModel "stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/internal/shared/query"
	"stillform-backend/pkg/logger"
)

var (
	collectionSortFields  = []string{"price", "purchaseDate"}
	defaultCollectionSort = query.Sort{Field: "purchaseDate", Direction: query.Desc}
)

// ServiceInterface - the caller's collection view
type ServiceInterface interface {
	Search(ctx context.Context, wallet string, q model.SearchQuery) (*query.Page[model.Item], error)
}

// WorkReader is the slice of the work repository this service needs
type WorkReader interface {
	GetByID(ctx context.Context, id string) (*workModel.Work, error)
}

type Service struct {
	repo  repository.RepositoryInterface
	works WorkReader
}

func NewService(repo repository.RepositoryInterface, works WorkReader) ServiceInterface {
	return &Service{repo: repo, works: works}
}

// Search runs the collection query over the wallet's items joined with their works.
// Collections show every status; there is no hidden predicate.
func (s *Service) Search(ctx context.Context, wallet string, q model.SearchQuery) (*query.Page[model.Item], error) {
	filters, err := model.ParseFilters(q.Filters)
	if err != nil {
		return nil, err
	}

	owned, err := s.repo.ListByOwner(ctx, wallet)
	if err != nil {
		return nil, apperror.Internal("Failed to load collection", err)
	}

	items := make([]model.Item, 0, len(owned))
	for _, c := range owned {
		work, err := s.works.GetByID(ctx, c.WorkID)
		if err != nil {
			if !errors.Is(err, workModel.ErrWorkNotFound) {
				return nil, apperror.Internal("Failed to load collection", err)
			}
			logger.Warn("collection item references a missing work", map[string]interface{}{
				"token_id": c.TokenID,
				"work_id":  c.WorkID,
			})
			continue
		}
		items = append(items, model.Item{CollectionItem: c, Work: *work})
	}

	page, pageSize := query.NormalizePaging(
		query.ParseInt(q.Page, query.DefaultPage),
		query.ParseInt(q.PageSize, query.DefaultPageSize),
	)
	sort := query.ParseSort(q.Sort, collectionSortFields, defaultCollectionSort)

	result := query.Run(items, query.Request[model.Item]{
		Filters:  predicates(strings.TrimSpace(q.Query), filters),
		Compare:  comparator(sort.Field),
		Desc:     sort.Direction == query.Desc,
		Page:     page,
		PageSize: pageSize,
	})
	return &result, nil
}

func predicates(text string, f model.SearchFilters) []query.Predicate[model.Item] {
	preds := []query.Predicate[model.Item]{
		query.AnyOf(f.Status, func(i model.Item) model.Status { return i.Status }),
		query.AnyOf(f.Chains, func(i model.Item) workModel.ChainType { return i.Work.Chain.Type }),
	}
	if text != "" {
		preds = append(preds, func(i model.Item) bool { return i.Work.MatchesText(text) })
	}
	return preds
}

func comparator(field string) query.Comparator[model.Item] {
	if field == "price" {
		return func(a, b model.Item) int { return a.Work.DisplayPrice().Cmp(b.Work.DisplayPrice()) }
	}
	return func(a, b model.Item) int { return a.PurchaseDate.Compare(b.PurchaseDate) }
}
