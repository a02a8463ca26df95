package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/DjordjeVuckovic/company-query-builder/pkg/pagination"
	"gopkg.in/yaml.v3"
)

const (
	Version            = "2.19"
	DefaultSectorField = "sector.id"
)

// CompanyFilters is the set of query parameters the company endpoint accepts.
var CompanyFilters = []string{
	"revenue",
	"sector_context",
	"ecommerce",
	"limit",
	"offset",
	"cid",
	"exclude_tps",
	"cash",
	"aggregate",
	"trading_activity",
}

// Config holds everything the query builder needs. It is built once at
// startup and never mutated afterwards.
type Config struct {
	Version             string   `yaml:"version"`
	ResultsLimitDefault int      `yaml:"results_limit_default"`
	PageSizeDefault     int      `yaml:"page_size_default"`
	AllowedParams       []string `yaml:"allowed_params"`
	RequiredParams      []string `yaml:"required_params"`
	SectorField         string   `yaml:"sector_field"`
}

func Default() Config {
	return Config{
		Version:             Version,
		ResultsLimitDefault: pagination.ResultsLimitDefault,
		PageSizeDefault:     pagination.PageSizeDefault,
		AllowedParams:       slices.Clone(CompanyFilters),
		SectorField:         DefaultSectorField,
	}
}

// Load decodes YAML on top of the defaults. Keys missing from the document keep
// their default value.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// FromEnv starts from QUERY_BUILDER_CONFIG when set, then applies the
// individual environment overrides.
func FromEnv() (Config, error) {
	cfg := Default()
	if path := os.Getenv("QUERY_BUILDER_CONFIG"); path != "" {
		slog.Info("Loading query builder config", "path", path)
		loaded, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if err := intFromEnv("RESULTS_LIMIT_DEFAULT", &cfg.ResultsLimitDefault); err != nil {
		return Config{}, err
	}
	if err := intFromEnv("PAGE_SIZE_DEFAULT", &cfg.PageSizeDefault); err != nil {
		return Config{}, err
	}
	if field := os.Getenv("SECTOR_ES_FIELD"); field != "" {
		cfg.SectorField = field
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func intFromEnv(name string, dst *int) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = v
	return nil
}

func (c Config) Validate() error {
	if c.ResultsLimitDefault < 1 {
		return errors.New("results_limit_default must be positive")
	}
	if c.PageSizeDefault < 1 {
		return errors.New("page_size_default must be positive")
	}
	if c.PageSizeDefault > c.ResultsLimitDefault {
		return fmt.Errorf("page_size_default (%d) cannot exceed results_limit_default (%d)",
			c.PageSizeDefault, c.ResultsLimitDefault)
	}
	if len(c.AllowedParams) == 0 {
		return errors.New("allowed_params cannot be empty")
	}
	for _, r := range c.RequiredParams {
		if !slices.Contains(c.AllowedParams, r) {
			return fmt.Errorf("required param %q is not in allowed_params", r)
		}
	}
	if c.SectorField == "" {
		return errors.New("sector_field cannot be empty")
	}
	return nil
}

// Limits returns the pagination bounds derived from the config.
func (c Config) Limits() pagination.Limits {
	return pagination.Limits{
		ResultsLimit: c.ResultsLimitDefault,
		PageSize:     c.PageSizeDefault,
	}
}
