package service

import (
	"cmp"
	"strconv"
	"strings"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/query"
)

// Sortable fields of the storefront
var workSortFields = []string{"price", "favorites", "sales", "createdAt"}

var defaultWorkSort = query.Sort{Field: "createdAt", Direction: query.Desc}

type searchParams struct {
	text     string
	filters  model.SearchFilters
	rawFilt  string
	sort     query.Sort
	page     int
	pageSize int
}

// parseSearch validates the raw query string. The status param is accepted
// for compatibility but the storefront always shows listed works with supply.
func parseSearch(q model.SearchQuery) (searchParams, error) {
	filters, err := model.ParseFilters(q.Filters)
	if err != nil {
		return searchParams{}, err
	}

	page, pageSize := query.NormalizePaging(
		query.ParseInt(q.Page, query.DefaultPage),
		query.ParseInt(q.PageSize, query.DefaultPageSize),
	)

	return searchParams{
		text:     strings.ToLower(strings.TrimSpace(q.Query)),
		filters:  filters,
		rawFilt:  strings.TrimSpace(q.Filters),
		sort:     query.ParseSort(q.Sort, workSortFields, defaultWorkSort),
		page:     page,
		pageSize: pageSize,
	}, nil
}

func (p searchParams) cacheKey() string {
	return model.SearchCacheKey(p.text, p.rawFilt, p.sort.String(), strconv.Itoa(p.page), strconv.Itoa(p.pageSize))
}

func (p searchParams) request() query.Request[model.Work] {
	return query.Request[model.Work]{
		Filters:  Predicates(p.text, p.filters),
		Compare:  workComparator(p.sort.Field),
		Desc:     p.sort.Direction == query.Desc,
		Page:     p.page,
		PageSize: p.pageSize,
	}
}

// Predicates builds the storefront filter chain. The visibility predicate
// always comes first.
func Predicates(text string, f model.SearchFilters) []query.Predicate[model.Work] {
	preds := []query.Predicate[model.Work]{
		model.Work.Visible,
	}

	if text != "" {
		preds = append(preds, func(w model.Work) bool { return w.MatchesText(text) })
	}
	if f.Price != nil {
		preds = append(preds, func(w model.Work) bool { return f.Price.Contains(w.DisplayPrice()) })
	}

	preds = append(preds,
		query.AnyOf(f.Chains, func(w model.Work) model.ChainType { return w.Chain.Type }),
		query.AnyOf(f.Types, func(w model.Work) model.WorkType { return w.Type }),
	)

	if len(f.Media) > 0 {
		media := query.AnyOf(f.Media, func(w model.Work) model.MediaKind {
			kind, _ := w.PrimaryMedia()
			return kind
		})
		preds = append(preds, media)
	}
	if len(f.Creators) > 0 {
		preds = append(preds, func(w model.Work) bool {
			for _, c := range f.Creators {
				if w.MatchesCreator(c) {
					return true
				}
			}
			return false
		})
	}
	if len(f.Physical) > 0 {
		preds = append(preds, func(w model.Work) bool { return w.OffersPhysical(f.Physical) })
	}

	return preds
}

func workComparator(field string) query.Comparator[model.Work] {
	switch field {
	case "price":
		return func(a, b model.Work) int { return a.DisplayPrice().Cmp(b.DisplayPrice()) }
	case "favorites":
		return func(a, b model.Work) int { return cmp.Compare(a.Stats.Favorites, b.Stats.Favorites) }
	case "sales":
		return func(a, b model.Work) int { return cmp.Compare(a.Stats.Sales, b.Stats.Sales) }
	default:
		return func(a, b model.Work) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}
