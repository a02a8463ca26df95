package params

import (
	"strings"
	"time"

	"github.com/DjordjeVuckovic/company-query-builder/internal/apperr"
)

const (
	urlDateLayout = "20060102"
	isoDateLayout = "2006-01-02"
)

// ParseDateRange parses "YYYYMMDD-YYYYMMDD" where either side may be empty.
// Present sides are rendered as YYYY-MM-DD.
func ParseDateRange(key, value string) (DateRange, error) {
	from, to, ok := strings.Cut(value, "-")
	if !ok || strings.Contains(to, "-") {
		return DateRange{}, apperr.NewValue(key, value, "expected a date range like 20150101-20160101")
	}

	var r DateRange
	if from != "" {
		d, err := parseDate(key, from)
		if err != nil {
			return DateRange{}, err
		}
		r.Gte = &d
	}
	if to != "" {
		d, err := parseDate(key, to)
		if err != nil {
			return DateRange{}, err
		}
		r.Lte = &d
	}

	if r.Gte != nil && r.Lte != nil && *r.Gte > *r.Lte {
		return DateRange{}, apperr.NewValue(key, value, "start date is after end date")
	}

	return r, nil
}

// parseDate reports errors against the offending side, not the whole range.
func parseDate(key, side string) (string, error) {
	if len(side) != len(urlDateLayout) {
		return "", apperr.NewValue(key, side, "expected an 8 digit YYYYMMDD date")
	}
	for _, c := range side {
		if c < '0' || c > '9' {
			return "", apperr.NewValue(key, side, "expected an 8 digit YYYYMMDD date")
		}
	}
	t, err := time.Parse(urlDateLayout, side)
	if err != nil {
		return "", apperr.NewValueWrap(key, side, "not a calendar date", err)
	}
	return t.Format(isoDateLayout), nil
}
