package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500, cfg.ResultsLimitDefault)
	assert.Equal(t, 50, cfg.PageSizeDefault)
	assert.Len(t, cfg.AllowedParams, 10)
	assert.Empty(t, cfg.RequiredParams)
	assert.Equal(t, "sector.id", cfg.SectorField)
}

func TestDefault_DoesNotShareAllowList(t *testing.T) {
	cfg := Default()
	cfg.AllowedParams[0] = "mutated"

	assert.Equal(t, "revenue", CompanyFilters[0])
	assert.Equal(t, "revenue", Default().AllowedParams[0])
}

func TestLoad(t *testing.T) {
	t.Run("partial document keeps defaults", func(t *testing.T) {
		cfg, err := Load(strings.NewReader("page_size_default: 25\n"))
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.PageSizeDefault)
		assert.Equal(t, 500, cfg.ResultsLimitDefault)
		assert.Len(t, cfg.AllowedParams, 10)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := Load(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("overrides allow-list and required params", func(t *testing.T) {
		yaml := `
allowed_params: [revenue, cid, fields]
required_params: [cid]
`
		cfg, err := Load(strings.NewReader(yaml))
		require.NoError(t, err)
		assert.Equal(t, []string{"revenue", "cid", "fields"}, cfg.AllowedParams)
		assert.Equal(t, []string{"cid"}, cfg.RequiredParams)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(strings.NewReader("page_size_default: [nope"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode config")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(strings.NewReader("page_size_default: 600\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("results_limit_default: 1000\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.ResultsLimitDefault)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("QUERY_BUILDER_CONFIG", "")
		t.Setenv("RESULTS_LIMIT_DEFAULT", "")
		t.Setenv("PAGE_SIZE_DEFAULT", "")
		t.Setenv("SECTOR_ES_FIELD", "")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file then env overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "builder.yaml")
		require.NoError(t, os.WriteFile(path, []byte("results_limit_default: 1000\npage_size_default: 20\n"), 0o644))
		t.Setenv("QUERY_BUILDER_CONFIG", path)
		t.Setenv("RESULTS_LIMIT_DEFAULT", "")
		t.Setenv("PAGE_SIZE_DEFAULT", "100")
		t.Setenv("SECTOR_ES_FIELD", "sector.code")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.ResultsLimitDefault)
		assert.Equal(t, 100, cfg.PageSizeDefault)
		assert.Equal(t, "sector.code", cfg.SectorField)
	})

	t.Run("non numeric override", func(t *testing.T) {
		t.Setenv("QUERY_BUILDER_CONFIG", "")
		t.Setenv("RESULTS_LIMIT_DEFAULT", "lots")

		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RESULTS_LIMIT_DEFAULT")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero results limit", func(c *Config) { c.ResultsLimitDefault = 0 }, "results_limit_default"},
		{"negative page size", func(c *Config) { c.PageSizeDefault = -1 }, "page_size_default"},
		{"empty allow-list", func(c *Config) { c.AllowedParams = nil }, "allowed_params"},
		{"required not allowed", func(c *Config) { c.RequiredParams = []string{"name"} }, "\"name\""},
		{"empty sector field", func(c *Config) { c.SectorField = "" }, "sector_field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLimits(t *testing.T) {
	limits := Default().Limits()
	assert.Equal(t, 500, limits.ResultsLimit)
	assert.Equal(t, 50, limits.PageSize)
}
