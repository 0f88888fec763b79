package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		limit string
		rate  float64
	}{
		{"5-S", 5},
		{"60-M", 1},
		{"3600-H", 1},
		{"86400-D", 1},
	}

	for _, tt := range tests {
		rate, err := ParseLimit(tt.limit)
		require.NoError(t, err, tt.limit)
		assert.InDelta(t, tt.rate, rate.Rate, 1e-9, tt.limit)
	}
}

// The dashed form is what every route registers; it must parse as-is.
func TestParseLimitAcceptsRouteLimits(t *testing.T) {
	tests := []struct {
		limit string
		rate  float64
	}{
		{"10000-H", 10000.0 / 3600.0},
		{"60-M", 1},
		{"10-M", 10.0 / 60.0},
	}

	for _, tt := range tests {
		rate, err := ParseLimit(tt.limit)
		require.NoError(t, err, tt.limit)
		assert.InDelta(t, tt.rate, rate.Rate, 1e-9, tt.limit)
	}
}

func TestParseLimitRejectsBadFormats(t *testing.T) {
	for _, limit := range []string{"", "10", "10-X", "abc-H", "10-M-extra"} {
		_, err := ParseLimit(limit)
		assert.Error(t, err, limit)
	}
}
