package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/query"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Catalog"

// ExportToExcel writes every work matching the search (no paging) to a workbook
func (s *WorkService) ExportToExcel(ctx context.Context, q model.SearchQuery) (*excelize.File, int, error) {
	params, err := parseSearch(q)
	if err != nil {
		return nil, 0, err
	}

	works, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	req := params.request()
	matched := query.Filter(works, req.Filters...)
	query.SortItems(matched, req.Compare, req.Desc)

	f, err := buildCatalogFile(matched)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build excel file: %w", err)
	}
	return f, len(matched), nil
}

func buildCatalogFile(works []model.Work) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []string{
		"ID", "Slug", "Title", "Type", "Status", "Chain", "Creator", "Creator Address",
		"Price", "Currency", "Supply", "Favorites", "Sales", "Tags", "Physical Options", "Created At",
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0EBF5"}, Pattern: 1},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(exportSheet, "A1", lastCell, headerStyle)
	}

	for i, w := range works {
		row := i + 2
		currency := ""
		supply := 0
		for _, e := range w.Editions {
			supply += e.Supply
		}
		if len(w.Editions) > 0 {
			currency = w.Editions[0].Currency
		}
		price, _ := w.DisplayPrice().Float64()

		values := []interface{}{
			w.ID, w.Slug, w.Title, string(w.Type), string(w.Status), string(w.Chain.Type),
			w.Creator.DisplayName, w.Creator.Address,
			price, currency, supply, w.Stats.Favorites, w.Stats.Sales,
			strings.Join(w.Tags, ", "), strings.Join(w.PhysicalOptions, ", "), w.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	return f, nil
}
