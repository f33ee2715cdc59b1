package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFloat64s(t *testing.T) {
	t.Run("Layout", func(t *testing.T) {
		b := EncodeFloat64s([]float64{1.0, -2.5})
		require.Len(t, b, 16)
		// 1.0 = 0x3FF0000000000000, -2.5 = 0xC004000000000000
		assert.Equal(t, []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}, b[:8])
		assert.Equal(t, []byte{0xC0, 0x04, 0, 0, 0, 0, 0, 0}, b[8:])
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, EncodeFloat64s(nil))
		assert.Equal(t, 0, EncodedLen(0))
	})

	t.Run("Append", func(t *testing.T) {
		dst := []byte{0xAA}
		dst = AppendFloat64s(dst, []float64{0})
		assert.Len(t, dst, 9)
		assert.Equal(t, byte(0xAA), dst[0])
	})
}

func TestDecodeFloat64s(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"Empty", []float64{}},
		{"Single", []float64{42}},
		{"Mixed", []float64{0.25, -0.75, 1.5}},
		{"Extremes", []float64{math.MaxFloat64, math.SmallestNonzeroFloat64, -0.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFloat64s(EncodeFloat64s(tt.values))
			require.NoError(t, err)
			require.Len(t, got, len(tt.values))
			for i := range tt.values {
				assert.Equal(t, math.Float64bits(tt.values[i]), math.Float64bits(got[i]))
			}
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		for _, n := range []int{1, 7, 9, 23} {
			_, err := DecodeFloat64s(make([]byte, n))
			assert.ErrorIs(t, err, ErrMalformedEncoding, "len=%d", n)
		}
	})

	t.Run("NoAlias", func(t *testing.T) {
		buf := EncodeFloat64s([]float64{1})
		got, err := DecodeFloat64s(buf)
		require.NoError(t, err)
		buf[0] = 0
		assert.Equal(t, 1.0, got[0])
	})
}

func TestDecodeFloat64sRange(t *testing.T) {
	buf := append([]byte{0xDE, 0xAD, 0xBE}, EncodeFloat64s([]float64{1, 2, 3, 4})...)

	t.Run("MatchesSlice", func(t *testing.T) {
		for offset := 3; offset <= len(buf); offset += 8 {
			for length := 0; offset+length <= len(buf); length += 8 {
				want, err := DecodeFloat64s(buf[offset : offset+length])
				require.NoError(t, err)
				got, err := DecodeFloat64sRange(buf, offset, length)
				require.NoError(t, err)
				assert.Equal(t, want, got, "offset=%d length=%d", offset, length)
			}
		}
	})

	t.Run("Middle", func(t *testing.T) {
		got, err := DecodeFloat64sRange(buf, 3+8, 16)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 3}, got)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		cases := []struct{ offset, length int }{
			{-1, 8},
			{0, -8},
			{len(buf) + 1, 0},
			{3, 40},
			{len(buf) - 7, 8},
			{8, math.MaxInt},
		}
		for _, c := range cases {
			_, err := DecodeFloat64sRange(buf, c.offset, c.length)
			assert.ErrorIs(t, err, ErrOutOfRange, "offset=%d length=%d", c.offset, c.length)
			assert.NotErrorIs(t, err, ErrMalformedEncoding)
		}
	})

	t.Run("Misaligned", func(t *testing.T) {
		_, err := DecodeFloat64sRange(buf, 3, 12)
		assert.ErrorIs(t, err, ErrMalformedEncoding)
		assert.ErrorIs(t, err, ErrOutOfRange)

		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.True(t, re.Misaligned)
		assert.Equal(t, 3, re.Offset)
		assert.Equal(t, 12, re.Length)
		assert.Equal(t, len(buf), re.BufSize)
	})
}
