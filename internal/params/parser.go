package params

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/DjordjeVuckovic/company-query-builder/internal/apperr"
	"github.com/DjordjeVuckovic/company-query-builder/internal/config"
	"github.com/DjordjeVuckovic/company-query-builder/pkg/utils"
)

const (
	KeyRevenue         = "revenue"
	KeyCash            = "cash"
	KeyCID             = "cid"
	KeySectorContext   = "sector_context"
	KeyEcommerce       = "ecommerce"
	KeyExcludeTPS      = "exclude_tps"
	KeyAggregate       = "aggregate"
	KeyTradingActivity = "trading_activity"
	KeyLimit           = "limit"
	KeyOffset          = "offset"
	KeyFields          = "fields"
)

// Parser turns raw query-string values into Parameters.
// It holds only configuration and is safe for concurrent use.
type Parser struct {
	allowed  []string
	required []string
}

func NewParser(cfg config.Config) *Parser {
	return &Parser{
		allowed:  slices.Clone(cfg.AllowedParams),
		required: slices.Clone(cfg.RequiredParams),
	}
}

// Validate rejects keys outside the allow-list and reports missing required keys.
func (p *Parser) Validate(raw url.Values) error {
	var unknown []string
	for key := range raw {
		if !slices.Contains(p.allowed, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return apperr.NewUnrecognized(unknown...)
	}

	var missing []string
	for _, key := range p.required {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return apperr.NewMissing(missing...)
	}

	return nil
}

// Parse validates raw and returns the normalized parameters.
func (p *Parser) Parse(raw url.Values) (*Parameters, error) {
	if err := p.Validate(raw); err != nil {
		return nil, err
	}

	var (
		out Parameters
		err error
	)

	if out.Cash, err = parseRangeArg(raw, KeyCash); err != nil {
		return nil, err
	}
	if out.Revenue, err = parseRangeArg(raw, KeyRevenue); err != nil {
		return nil, err
	}

	out.CIDs = listArg(raw, KeyCID)
	out.Sectors = listArg(raw, KeySectorContext)
	out.Fields = listArg(raw, KeyFields)

	if out.TradingActivity, err = parseDateRangeArg(raw, KeyTradingActivity); err != nil {
		return nil, err
	}

	if out.ExcludeTPS, err = parseBooleanArg(raw, KeyExcludeTPS, false); err != nil {
		return nil, err
	}
	if out.Ecommerce, err = parseBooleanArg(raw, KeyEcommerce, false); err != nil {
		return nil, err
	}
	if out.Aggregate, err = parseBooleanArg(raw, KeyAggregate, true); err != nil {
		return nil, err
	}

	if out.Limit, err = parseIntArg(raw, KeyLimit); err != nil {
		return nil, err
	}
	// a zero limit has always meant "use the default"
	if out.Limit != nil && *out.Limit == 0 {
		out.Limit = nil
	}
	if out.Offset, err = parseIntArg(raw, KeyOffset); err != nil {
		return nil, err
	}

	return &out, nil
}

// single returns the last value supplied for key. Empty values count as absent.
func single(raw url.Values, key string) (string, bool) {
	values := raw[key]
	if len(values) == 0 {
		return "", false
	}
	v := values[len(values)-1]
	return v, v != ""
}

// listArg returns every non-empty value of key in order, or nil.
func listArg(raw url.Values, key string) []string {
	return utils.RemoveEmptyStrings(raw[key])
}

func parseRangeArg(raw url.Values, key string) (*Range, error) {
	v, ok := single(raw, key)
	if !ok {
		return nil, nil
	}
	r, err := ParseRange(key, v)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func parseDateRangeArg(raw url.Values, key string) (*DateRange, error) {
	v, ok := single(raw, key)
	if !ok {
		return nil, nil
	}
	r, err := ParseDateRange(key, v)
	if err != nil {
		return nil, err
	}
	if r.Gte == nil && r.Lte == nil {
		return nil, nil
	}
	return &r, nil
}

// parseBooleanArg keeps the value when it is true, or when includeIfFalse is
// set and the key carried a parseable value.
func parseBooleanArg(raw url.Values, key string, includeIfFalse bool) (*bool, error) {
	v, ok := single(raw, key)
	if !ok {
		return nil, nil
	}
	b, err := ParseBoolean(key, v)
	if err != nil {
		return nil, err
	}
	if !b && !includeIfFalse {
		return nil, nil
	}
	return &b, nil
}

func parseIntArg(raw url.Values, key string) (*int, error) {
	v, ok := single(raw, key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperr.NewValue(key, v, "expected an integer")
	}
	if n < 0 {
		return nil, apperr.NewValue(key, v, "must not be negative")
	}
	return &n, nil
}
