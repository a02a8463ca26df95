package es

import (
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/company-query-builder/internal/apperr"
	"github.com/DjordjeVuckovic/company-query-builder/internal/config"
	"github.com/DjordjeVuckovic/company-query-builder/internal/params"
	"github.com/DjordjeVuckovic/company-query-builder/pkg/pagination"
)

// Assembler turns normalized parameters into a company search document.
// It keeps no state between calls.
type Assembler struct {
	sectorField string
}

func NewAssembler(cfg config.Config) *Assembler {
	return &Assembler{sectorField: cfg.SectorField}
}

type filterStep struct {
	name  string
	build func(*params.Parameters) ([]Clause, error)
}

func (a *Assembler) steps() []filterStep {
	return []filterStep{
		{"ecommerce_filters", ecommerceFilters},
		{"exclude_tps_filters", excludeTPSFilters},
		{"cash_filters", financialFilters("cash", func(p *params.Parameters) *params.Range { return p.Cash })},
		{"revenue_filters", financialFilters("revenue", func(p *params.Parameters) *params.Range { return p.Revenue })},
		{"sector_filters", a.sectorFilters},
		{"cids_filters", cidsFilters},
		{"trading_activity_filters", tradingActivityFilters},
	}
}

// Build assembles the document. Either a complete document or an
// *apperr.QueryBuildError is returned, never both.
func (a *Assembler) Build(p *params.Parameters, w pagination.Window) (*Document, error) {
	if p == nil {
		return nil, apperr.NewQueryBuild("query_builder", ErrNilParams)
	}

	filters := []Clause{term(StatusField, StatusActive)}
	for _, step := range a.steps() {
		clauses, err := step.build(p)
		if err != nil {
			return nil, apperr.NewQueryBuild(step.name, err)
		}
		filters = append(filters, clauses...)
	}

	doc := &Document{
		Query: FilteredQuery{Filtered: Filtered{Filter: AndFilter{And: filters}}},
		Size:  w.PageSize,
		From:  w.PageOffset,
	}
	if len(p.Fields) > 0 {
		doc.Fields = slices.Clone(p.Fields)
	}

	return doc, nil
}

func ecommerceFilters(p *params.Parameters) ([]Clause, error) {
	if p.Ecommerce == nil || !*p.Ecommerce {
		return nil, nil
	}
	return []Clause{term(EcommerceField, true)}, nil
}

func excludeTPSFilters(p *params.Parameters) ([]Clause, error) {
	if p.ExcludeTPS == nil || !*p.ExcludeTPS {
		return nil, nil
	}
	return []Clause{missing(TPSField)}, nil
}

func financialFilters(field string, get func(*params.Parameters) *params.Range) func(*params.Parameters) ([]Clause, error) {
	return func(p *params.Parameters) ([]Clause, error) {
		r := get(p)
		if r == nil {
			return nil, nil
		}
		clauses, err := financialFiltersRange(field, r.Gte, r.Lte)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return clauses, nil
	}
}

func (a *Assembler) sectorFilters(p *params.Parameters) ([]Clause, error) {
	if len(p.Sectors) == 0 {
		return nil, nil
	}
	return []Clause{exactMatches(a.sectorField, p.Sectors)}, nil
}

func cidsFilters(p *params.Parameters) ([]Clause, error) {
	if len(p.CIDs) == 0 {
		return nil, nil
	}
	return []Clause{exactMatches(CIDField, p.CIDs)}, nil
}

// tradingActivityFilters matches companies with an import or an export event
// inside the date range.
func tradingActivityFilters(p *params.Parameters) ([]Clause, error) {
	ta := p.TradingActivity
	if ta == nil {
		return nil, nil
	}
	if ta.Gte == nil && ta.Lte == nil {
		return nil, ErrEmptyRange
	}

	return []Clause{
		OrClause{Or: []Clause{
			childDocFilter(ImportEventsType, ImportDateField, ta.Gte, ta.Lte),
			childDocFilter(ExportEventsType, ExportDateField, ta.Gte, ta.Lte),
		}},
	}, nil
}
