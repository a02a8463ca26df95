package params

import (
	"errors"
	"strconv"
	"testing"

	"github.com/DjordjeVuckovic/company-query-builder/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 {
	return &v
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		value string
		want  Range
	}{
		{"10000-100000", Range{Gte: i64(10000), Lte: i64(100000)}},
		{"0-100000", Range{Gte: i64(0), Lte: i64(100000)}},
		{"0-0", Range{Gte: i64(0), Lte: i64(0)}},
		{"1-", Range{Gte: i64(1)}},
		{"-100", Range{Lte: i64(100)}},
		{"-50-10", Range{Gte: i64(-50), Lte: i64(10)}},
		{"-50--10", Range{Gte: i64(-50), Lte: i64(-10)}},
		{"--10", Range{Lte: i64(-10)}},
		{"-5-", Range{Gte: i64(-5)}},
		{"7-7", Range{Gte: i64(7), Lte: i64(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseRange("revenue", tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange_Errors(t *testing.T) {
	values := []string{
		"1",
		"abc",
		"1000-1",
		"abc-abc",
		"10-abc",
		"abc-10",
		"-",
		"",
		"1-2-3",
		"1 - 2",
		"99999999999999999999-",
		"-1-5-",
	}

	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			_, err := ParseRange("revenue", value)
			require.Error(t, err)

			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, apperr.KindInvalidValue, ve.Kind)
			assert.Equal(t, "revenue", ve.Key)
			assert.Equal(t, value, ve.Value)
		})
	}
}

func TestParseRange_RoundTripsBounds(t *testing.T) {
	for a := int64(-3); a <= 3; a++ {
		for b := a; b <= 3; b++ {
			value := formatRange(&a, &b)
			got, err := ParseRange("cash", value)
			require.NoError(t, err, value)
			assert.Equal(t, a, *got.Gte, value)
			assert.Equal(t, b, *got.Lte, value)
		}
	}
}

func formatRange(a, b *int64) string {
	s := ""
	if a != nil {
		s += strconv.FormatInt(*a, 10)
	}
	s += "-"
	if b != nil {
		s += strconv.FormatInt(*b, 10)
	}
	return s
}
