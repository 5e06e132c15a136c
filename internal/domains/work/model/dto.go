package model

import (
	"encoding/json"
	"strings"

	"stillform-backend/internal/shared/apperror"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ============ SEARCH ============

// SearchQuery is the raw query string of GET /works
type SearchQuery struct {
	Status   string `form:"status"`
	Query    string `form:"query"`
	Filters  string `form:"filters"`
	Sort     string `form:"sort"`
	Page     string `form:"page"`
	PageSize string `form:"pageSize"`
}

// PriceRange bounds are inclusive. A nil Max (JSON null) is unbounded.
type PriceRange struct {
	Min *decimal.Decimal `json:"min"`
	Max *decimal.Decimal `json:"max"`
}

func (p *PriceRange) Contains(price decimal.Decimal) bool {
	if p == nil {
		return true
	}
	if p.Min != nil && price.LessThan(*p.Min) {
		return false
	}
	if p.Max != nil && price.GreaterThan(*p.Max) {
		return false
	}
	return true
}

// SearchFilters - AND across categories, OR within one
type SearchFilters struct {
	Price    *PriceRange `json:"price"`
	Chains   []ChainType `json:"chains"`
	Types    []WorkType  `json:"types"`
	Media    []MediaKind `json:"media"`
	Creators []string    `json:"creators"`
	Physical []string    `json:"physical"`
}

func (f SearchFilters) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Chains, validation.Each(validation.In(ChainTypes...))),
		validation.Field(&f.Types, validation.Each(validation.In(WorkTypes...))),
		validation.Field(&f.Media, validation.Each(validation.In(MediaKinds...))),
	)
}

// ParseFilters decodes the filters JSON. Empty input means no constraint.
func ParseFilters(raw string) (SearchFilters, error) {
	var f SearchFilters
	if strings.TrimSpace(raw) == "" {
		return f, nil
	}

	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return f, apperror.ValidationFrom("INVALID_FILTERS", "Invalid filters format", err)
	}
	if err := f.Validate(); err != nil {
		return f, apperror.ValidationFrom("INVALID_FILTERS", "Invalid filters format", err)
	}
	return f, nil
}

// ============ LISTINGS ============

type ListWorkRequest struct {
	WorkID    string          `json:"workId"`
	EditionID *int            `json:"editionId"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
}

func (r ListWorkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WorkID, validation.Required),
		validation.Field(&r.EditionID, validation.NotNil),
		validation.Field(&r.Price, validation.By(positiveDecimal)),
		validation.Field(&r.Currency, validation.Required),
	)
}

type ListingResponse struct {
	ListingID   string `json:"listingId"`
	Status      Status `json:"status"`
	UpdatedWork *Work  `json:"updatedWork"`
}

type UnlistResponse struct {
	Status      Status `json:"status"`
	UpdatedWork *Work  `json:"updatedWork"`
}
