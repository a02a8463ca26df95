package es

import (
	"errors"
	"slices"
)

const (
	FinancialFiltersPath = "financial_filters"

	StatusField    = "status"
	StatusActive   = 1
	EcommerceField = "ecommerce.is_ecommerce"
	TPSField       = "tps"
	CIDField       = "cid"

	ImportEventsType = "import_events"
	ImportDateField  = "import_date"
	ExportEventsType = "export_events"
	ExportDateField  = "date"
)

var (
	ErrEmptyRange = errors.New("range has neither a lower nor an upper bound")
	ErrNilParams  = errors.New("parameters are nil")
)

func term(field string, value any) TermClause {
	return TermClause{Term: map[string]any{field: value}}
}

func exactMatches(field string, values []string) TermsClause {
	return TermsClause{Terms: map[string][]string{field: slices.Clone(values)}}
}

func missing(field string) MissingClause {
	return MissingClause{Missing: FieldRef{Field: field}}
}

// financialFiltersRange targets financial_filters.<field> inside the nested
// documents. A lower bound of zero is dropped so negative values still match;
// an upper bound of zero is kept. A range left without bounds adds no clause.
func financialFiltersRange(field string, gte, lte *int64) ([]Clause, error) {
	if gte == nil && lte == nil {
		return nil, ErrEmptyRange
	}

	var bounds NumericBounds
	if gte != nil && *gte != 0 {
		v := *gte
		bounds.Gte = &v
	}
	if lte != nil {
		v := *lte
		bounds.Lte = &v
	}
	if bounds.Gte == nil && bounds.Lte == nil {
		return nil, nil
	}

	return []Clause{
		NestedClause{
			Nested: NestedParams{
				Path: FinancialFiltersPath,
				Filter: BoolFilter{
					Bool: BoolParams{
						Must: []Clause{
							RangeClause{Range: map[string]any{FinancialFiltersPath + "." + field: bounds}},
						},
					},
				},
			},
		},
	}, nil
}

// childDocFilter matches parents having a child of docType dated within the bounds.
func childDocFilter(docType, dateField string, gte, lte *string) HasChildClause {
	return HasChildClause{
		HasChild: HasChildParams{
			Type: docType,
			Filter: AndFilter{
				And: []Clause{
					RangeClause{Range: map[string]any{dateField: DateBounds{Gte: gte, Lte: lte}}},
				},
			},
		},
	}
}
