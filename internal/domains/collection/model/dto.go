package model

import (
	"encoding/json"
	"strings"

	workModel "stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/apperror"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SearchQuery - GET /me/collections
type SearchQuery struct {
	Query    string `form:"query"`
	Filters  string `form:"filters"`
	Sort     string `form:"sort"`
	Page     string `form:"page"`
	PageSize string `form:"pageSize"`
}

type SearchFilters struct {
	Status []Status              `json:"status"`
	Chains []workModel.ChainType `json:"chains"`
}

func (f SearchFilters) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Status, validation.Each(validation.In(Statuses...))),
		validation.Field(&f.Chains, validation.Each(validation.In(workModel.ChainTypes...))),
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
