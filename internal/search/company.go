package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"

	"github.com/DjordjeVuckovic/company-query-builder/internal/apperr"
	"github.com/DjordjeVuckovic/company-query-builder/internal/config"
	"github.com/DjordjeVuckovic/company-query-builder/internal/es"
	"github.com/DjordjeVuckovic/company-query-builder/internal/params"
	"github.com/DjordjeVuckovic/company-query-builder/pkg/pagination"
)

const companyDocType = "company"

// CompanyQueryBuilder converts company search parameters into an Elasticsearch
// query document. It never executes the query.
type CompanyQueryBuilder struct {
	parser    *params.Parser
	assembler *es.Assembler
	limits    pagination.Limits
	logger    *slog.Logger
}

type Option func(*CompanyQueryBuilder)

// WithLogger routes the built query log to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *CompanyQueryBuilder) {
		b.logger = l
	}
}

func NewCompanyQueryBuilder(cfg config.Config, opts ...Option) *CompanyQueryBuilder {
	b := &CompanyQueryBuilder{
		parser:    params.NewParser(cfg),
		assembler: es.NewAssembler(cfg),
		limits:    cfg.Limits(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates raw, computes the page window and assembles the document.
func (b *CompanyQueryBuilder) Build(raw url.Values) (*es.Document, error) {
	p, err := b.parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	window := pagination.Calculate(pagination.Request{Limit: p.Limit, Offset: p.Offset}, b.limits)

	doc, err := b.assembler.Build(p, window)
	if err != nil {
		return nil, err
	}

	b.logQuery(doc)
	return doc, nil
}

// BuildFromURL accepts a request path with a query string, for example
// "/v1/company_query_builder?revenue=1-100".
func (b *CompanyQueryBuilder) BuildFromURL(rawURL string) (*es.Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, apperr.NewBadURL(rawURL, err)
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, apperr.NewBadURL(rawURL, err)
	}
	return b.Build(values)
}

func (b *CompanyQueryBuilder) logQuery(doc *es.Document) {
	if !b.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	query, err := json.Marshal(doc)
	if err != nil {
		b.logger.Warn("Failed to encode query for logging", "error", err)
		return
	}
	b.logger.Debug("Company query built", "doc_type", companyDocType, "query", string(query))
}
