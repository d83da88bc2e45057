package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want Range
	}{
		{"7", Range{Min: 7, Max: 7}},
		{"7-10", Range{Min: 7, Max: 10}},
		{"9+", Range{Min: 9, Max: 9, Open: true}},
		{"3 to 4", Range{Min: 3, Max: 4}},
		{"5 days", Range{Min: 5, Max: 5}},
		{" 2 - 3 people", Range{Min: 2, Max: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange_Errors(t *testing.T) {
	_, err := ParseRange("a week")
	assert.ErrorIs(t, err, ErrRangeNoNumber)

	_, err = ParseRange("0")
	assert.ErrorIs(t, err, ErrRangeNotPositive)

	_, err = ParseRange("10-7")
	assert.ErrorIs(t, err, ErrRangeInverted)
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "7", Range{Min: 7, Max: 7}.String())
	assert.Equal(t, "7-10", Range{Min: 7, Max: 10}.String())
	assert.Equal(t, "9+", Range{Min: 9, Max: 9, Open: true}.String())
}

func TestLowerBound(t *testing.T) {
	assert.Equal(t, 7, LowerBound("7-10", 5))
	assert.Equal(t, 5, LowerBound("", 5))
	assert.Equal(t, 1, LowerBound("unknown", 1))
}
