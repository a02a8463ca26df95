package params

import (
	"strings"

	"github.com/DjordjeVuckovic/company-query-builder/internal/apperr"
)

// ParseBoolean accepts "0", "1" and anything starting with "true" or "false",
// case-insensitively. The prefix match is intentionally loose: "trueish" is true.
func ParseBoolean(key, value string) (bool, error) {
	switch value {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}

	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "true"):
		return true, nil
	case strings.HasPrefix(lower, "false"):
		return false, nil
	}

	return false, apperr.NewValue(key, value, "expected true, false, 0 or 1")
}
