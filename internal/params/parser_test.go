package params

import (
	"errors"
	"net/url"
	"testing"

	"github.com/DjordjeVuckovic/company-query-builder/internal/apperr"
	"github.com/DjordjeVuckovic/company-query-builder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return v
}

func boolPtr(v bool) *bool {
	return &v
}

func TestParser_Validate(t *testing.T) {
	p := NewParser(config.Default())

	t.Run("all recognized keys", func(t *testing.T) {
		raw := mustQuery(t, "revenue=1-2&cash=3-4&cid=1&sector_context=3&ecommerce=1&exclude_tps=1&aggregate=0&trading_activity=20150101-&limit=10&offset=5")
		assert.NoError(t, p.Validate(raw))
	})

	t.Run("unrecognized keys are listed", func(t *testing.T) {
		err := p.Validate(mustQuery(t, "revenue=1-2&zeta=1&alpha=2"))
		require.Error(t, err)

		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, apperr.KindUnrecognizedParameter, ve.Kind)
		assert.Equal(t, "alpha, zeta", ve.Key)
		assert.Equal(t, "Key Error: alpha, zeta", ve.Error())
	})

	t.Run("fields is not allowed by default", func(t *testing.T) {
		err := p.Validate(mustQuery(t, "fields=name"))
		require.Error(t, err)
	})

	t.Run("missing required key", func(t *testing.T) {
		cfg := config.Default()
		cfg.RequiredParams = []string{"cid", "revenue"}
		err := NewParser(cfg).Validate(mustQuery(t, "cid=1"))
		require.Error(t, err)

		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, apperr.KindMissingParameter, ve.Kind)
		assert.Equal(t, "revenue", ve.Key)
	})
}

func TestParser_Parse(t *testing.T) {
	p := NewParser(config.Default())

	tests := []struct {
		name  string
		query string
		want  Parameters
	}{
		{
			name:  "empty",
			query: "",
			want:  Parameters{},
		},
		{
			name:  "revenue range",
			query: "revenue=1-100",
			want:  Parameters{Revenue: &Range{Gte: i64(1), Lte: i64(100)}},
		},
		{
			name:  "cash lower only",
			query: "cash=1000-",
			want:  Parameters{Cash: &Range{Gte: i64(1000)}},
		},
		{
			name:  "repeated cids keep order",
			query: "cid=1&cid=2&cid=100",
			want:  Parameters{CIDs: []string{"1", "2", "100"}},
		},
		{
			name:  "empty cid entries are dropped",
			query: "cid=&cid=5&sector_context=",
			want:  Parameters{CIDs: []string{"5"}},
		},
		{
			name:  "sectors",
			query: "sector_context=3&sector_context=7",
			want:  Parameters{Sectors: []string{"3", "7"}},
		},
		{
			name:  "ecommerce true",
			query: "ecommerce=true",
			want:  Parameters{Ecommerce: boolPtr(true)},
		},
		{
			name:  "ecommerce false is dropped",
			query: "ecommerce=false",
			want:  Parameters{},
		},
		{
			name:  "exclude_tps false is dropped",
			query: "exclude_tps=0",
			want:  Parameters{},
		},
		{
			name:  "aggregate false is kept",
			query: "aggregate=false",
			want:  Parameters{Aggregate: boolPtr(false)},
		},
		{
			name:  "aggregate true",
			query: "aggregate=1",
			want:  Parameters{Aggregate: boolPtr(true)},
		},
		{
			name:  "trading activity",
			query: "trading_activity=20150101-20160101",
			want:  Parameters{TradingActivity: &DateRange{Gte: str("2015-01-01"), Lte: str("2016-01-01")}},
		},
		{
			name:  "trading activity without bounds is dropped",
			query: "trading_activity=-",
			want:  Parameters{},
		},
		{
			name:  "limit and offset",
			query: "limit=100&offset=20",
			want:  Parameters{Limit: intPtr(100), Offset: intPtr(20)},
		},
		{
			name:  "zero limit means default",
			query: "limit=0&offset=0",
			want:  Parameters{Offset: intPtr(0)},
		},
		{
			name:  "empty values are absent",
			query: "revenue=&ecommerce=&limit=",
			want:  Parameters{},
		},
		{
			name:  "last single value wins",
			query: "revenue=1-2&revenue=5-10",
			want:  Parameters{Revenue: &Range{Gte: i64(5), Lte: i64(10)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(mustQuery(t, tt.query))
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestParser_ParseFields(t *testing.T) {
	cfg := config.Default()
	cfg.AllowedParams = append(cfg.AllowedParams, KeyFields)

	got, err := NewParser(cfg).Parse(mustQuery(t, "fields=name&fields=cid"))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "cid"}, got.Fields)
}

func TestParser_ParseErrors(t *testing.T) {
	p := NewParser(config.Default())

	tests := []struct {
		query string
		key   string
		value string
	}{
		{"revenue=abc", "revenue", "abc"},
		{"cash=1000-1", "cash", "1000-1"},
		{"ecommerce=yes", "ecommerce", "yes"},
		{"exclude_tps=2", "exclude_tps", "2"},
		{"aggregate=maybe", "aggregate", "maybe"},
		{"trading_activity=2015-", "trading_activity", "2015"},
		{"limit=ten", "limit", "ten"},
		{"offset=-1", "offset", "-1"},
		{"limit=-5", "limit", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := p.Parse(mustQuery(t, tt.query))
			require.Error(t, err)
			assert.Nil(t, got)

			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, apperr.KindInvalidValue, ve.Kind)
			assert.Equal(t, tt.key, ve.Key)
			assert.Equal(t, tt.value, ve.Value)
		})
	}
}

func TestParser_DoesNotAliasInput(t *testing.T) {
	raw := mustQuery(t, "cid=1&cid=2")
	got, err := NewParser(config.Default()).Parse(raw)
	require.NoError(t, err)

	raw["cid"][0] = "changed"
	assert.Equal(t, []string{"1", "2"}, got.CIDs)
}

func intPtr(v int) *int {
	return &v
}
