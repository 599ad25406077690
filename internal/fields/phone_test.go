package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		country string
		want    string
	}{
		{"belgian local with trunk zero", "0470123456", "BE", "+32470123456"},
		{"already prefixed passes through", "+1234567890", "US", "+1234567890"},
		{"double zero becomes plus", "00447911123456", "UK", "+447911123456"},
		{"separators stripped", "+32 470 12 34 56", "BE", "+32470123456"},
		{"dots and dashes", "0470.12-34.56", "BE", "+32470123456"},
		{"unknown country falls back", "0470123456", "ZZ", "+32470123456"},
		{"no trunk zero still prefixed", "470123456", "BE", "+32470123456"},
		{"plus not at start is dropped", "047+0123456", "BE", "+32470123456"},
		{"empty input", "", "BE", ""},
		{"no digits", "call me", "BE", ""},
		{"lone zero", "0", "BE", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw, tt.country))
		})
	}
}
