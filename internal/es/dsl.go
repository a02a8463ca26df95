package es

// Clause is one filter condition inside the query document.
type Clause interface {
	isClause()
}

type TermClause struct {
	Term map[string]any `json:"term"`
}

func (TermClause) isClause() {}

type TermsClause struct {
	Terms map[string][]string `json:"terms"`
}

func (TermsClause) isClause() {}

type MissingClause struct {
	Missing FieldRef `json:"missing"`
}

func (MissingClause) isClause() {}

type FieldRef struct {
	Field string `json:"field"`
}

// RangeClause values are either NumericBounds or DateBounds.
type RangeClause struct {
	Range map[string]any `json:"range"`
}

func (RangeClause) isClause() {}

// NumericBounds omits absent bounds.
type NumericBounds struct {
	Gte *int64 `json:"gte,omitempty"`
	Lte *int64 `json:"lte,omitempty"`
}

// DateBounds always carries both keys; an absent bound is null.
type DateBounds struct {
	Gte *string `json:"gte"`
	Lte *string `json:"lte"`
}

type NestedClause struct {
	Nested NestedParams `json:"nested"`
}

func (NestedClause) isClause() {}

type NestedParams struct {
	Path   string     `json:"path"`
	Filter BoolFilter `json:"filter"`
}

type BoolFilter struct {
	Bool BoolParams `json:"bool"`
}

type BoolParams struct {
	Must []Clause `json:"must"`
}

type HasChildClause struct {
	HasChild HasChildParams `json:"has_child"`
}

func (HasChildClause) isClause() {}

type HasChildParams struct {
	Type   string    `json:"type"`
	Filter AndFilter `json:"filter"`
}

type OrClause struct {
	Or []Clause `json:"or"`
}

func (OrClause) isClause() {}

type AndFilter struct {
	And []Clause `json:"and"`
}

type FilteredQuery struct {
	Filtered Filtered `json:"filtered"`
}

type Filtered struct {
	Filter AndFilter `json:"filter"`
}

// Document is the complete search request body for the company index.
type Document struct {
	Query  FilteredQuery `json:"query"`
	Size   int           `json:"size"`
	From   int           `json:"from"`
	Fields []string      `json:"fields,omitempty"`
}

// Clauses returns the top level AND list.
func (d *Document) Clauses() []Clause {
	return d.Query.Filtered.Filter.And
}
