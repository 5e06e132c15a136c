// Package query filters, sorts and paginates an in-memory slice.
// It is generic over the item type and shared by the storefront and
// collection views.
package query

import (
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Direction of a sort
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Predicate reports whether an item is kept
type Predicate[T any] func(item T) bool

// Comparator orders two items ascending (negative, zero, positive)
type Comparator[T any] func(a, b T) int

// Sort is a parsed "field:dir" expression
type Sort struct {
	Field     string
	Direction Direction
}

func (s Sort) String() string {
	return s.Field + ":" + string(s.Direction)
}

// Request describes one search over a slice
type Request[T any] struct {
	Filters  []Predicate[T]
	Compare  Comparator[T]
	Desc     bool
	Page     int
	PageSize int
}

// Page is one page of results. Total counts matches before slicing.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Run applies filters (AND), sorts stably and slices the requested page.
// The input slice is never modified.
func Run[T any](items []T, req Request[T]) Page[T] {
	matched := Filter(items, req.Filters...)
	SortItems(matched, req.Compare, req.Desc)
	return Paginate(matched, req.Page, req.PageSize)
}

// SortItems sorts in place, stable. Descending reverses the comparator so
// ties keep their original order in both directions.
func SortItems[T any](items []T, compare Comparator[T], desc bool) {
	if compare == nil {
		return
	}
	cmp := compare
	if desc {
		cmp = func(a, b T) int { return compare(b, a) }
	}
	slices.SortStableFunc(items, cmp)
}

// Filter keeps items that satisfy every predicate
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Paginate slices [start, start+pageSize). An out-of-range page yields no items.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	page, pageSize = NormalizePaging(page, pageSize)

	result := Page[T]{
		Items:    []T{},
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return result
	}
	end := min(start+pageSize, len(items))
	result.Items = items[start:end]
	return result
}

// NormalizePaging replaces values below 1 with the defaults and caps pageSize
func NormalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// ParseInt parses a query param, returning fallback when empty or not a number
func ParseInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

// ParseSort parses "field:dir". Unknown fields fall back to def.
// Any direction other than "asc" sorts descending.
func ParseSort(raw string, allowed []string, def Sort) Sort {
	field, dir, _ := strings.Cut(strings.TrimSpace(raw), ":")
	if field == "" || !slices.Contains(allowed, field) {
		return def
	}

	s := Sort{Field: field, Direction: Desc}
	if strings.EqualFold(strings.TrimSpace(dir), string(Asc)) {
		s.Direction = Asc
	}
	return s
}

// ContainsFold is a case-insensitive substring test
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// AnyOf builds an OR predicate over allowed values. An empty set means no constraint.
func AnyOf[T any, V comparable](allowed []V, key func(T) V) Predicate[T] {
	if len(allowed) == 0 {
		return nil
	}
	return func(item T) bool {
		return slices.Contains(allowed, key(item))
	}
}
