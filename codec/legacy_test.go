package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []float64
	}{
		{"HeaderDiscarded", "1.0 2.0 0.5 0.1 0.2 0.3", []float64{
			float64(float32(0.1)), float64(float32(0.2)), float64(float32(0.3)),
		}},
		{"HeaderOnly", "10 20 0.9", []float64{}},
		{"MixedWhitespace", " 1\t2\n3   4.5\t\t-6 ", []float64{4.5, -6}},
		{"Exponent", "0 0 0 1e-3 2E2", []float64{float64(float32(1e-3)), 200}},
		{"TypeSuffix", "0 0 0 1.5f 2d 0.25F -1D 1e1f", []float64{1.5, 2, 0.25, -1, 10}},
		{"HexFloat", "0 0 0 0x1p-2", []float64{0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLegacy(tt.input, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseLegacyMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"TwoTokens", "1.0 2.0"},
		{"NotANumber", "1 2 3 0.5 abc"},
		{"NaN", "1 2 3 NaN"},
		{"Inf", "1 2 3 +Inf"},
		{"Float32Overflow", "1 2 3 1e39"},
		{"LowerInf", "1 2 3 inf"},
		{"Infinity", "1 2 3 infinity"},
		{"DigitSeparator", "1 2 3 0x1_0p0"},
		{"DecimalSeparator", "1 2 3 1_000"},
		{"SuffixOnly", "1 2 3 f"},
		{"DoubleSuffix", "1 2 3 1.5fd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLegacy(tt.input, 3)
			assert.ErrorIs(t, err, ErrMalformedEncoding)
			assert.Nil(t, got)
		})
	}
}

func TestParseLegacyHeaderIgnoresContent(t *testing.T) {
	// header tokens are positional only and never parsed
	got, err := ParseLegacy("x y response 1.5", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, got)
}
