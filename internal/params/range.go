package params

import (
	"regexp"
	"strconv"

	"github.com/DjordjeVuckovic/company-query-builder/internal/apperr"
)

// rangePattern matches "n-N" where either side may be missing and both may be negative.
var rangePattern = regexp.MustCompile(`^(-?[0-9]+)?-(-?[0-9]+)?$`)

// ParseRange parses a numeric range such as "100-2000", "-500", "10-" or "-20--5".
// A missing side yields a nil bound, never zero.
func ParseRange(key, value string) (Range, error) {
	m := rangePattern.FindStringSubmatch(value)
	if m == nil {
		return Range{}, apperr.NewValue(key, value, "expected a range like 10-100")
	}
	if m[1] == "" && m[2] == "" {
		return Range{}, apperr.NewValue(key, value, "at least one bound is required")
	}

	var r Range
	if m[1] != "" {
		lower, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Range{}, apperr.NewValueWrap(key, value, "invalid lower bound", err)
		}
		r.Gte = &lower
	}
	if m[2] != "" {
		upper, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return Range{}, apperr.NewValueWrap(key, value, "invalid upper bound", err)
		}
		r.Lte = &upper
	}

	if r.Gte != nil && r.Lte != nil && *r.Gte > *r.Lte {
		return Range{}, apperr.NewValue(key, value, "lower bound is greater than upper bound")
	}

	return r, nil
}
