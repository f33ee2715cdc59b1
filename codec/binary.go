package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Float64Size is the encoded width of one descriptor component.
const Float64Size = 8

// EncodedLen returns the number of bytes EncodeFloat64s produces for n components.
func EncodedLen(n int) int { return n * Float64Size }

// AppendFloat64s appends the big-endian encoding of values to dst.
func AppendFloat64s(dst []byte, values []float64) []byte {
	for _, v := range values {
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(v))
	}
	return dst
}

// EncodeFloat64s returns the big-endian encoding of values.
// The result is exactly EncodedLen(len(values)) bytes.
func EncodeFloat64s(values []float64) []byte {
	return AppendFloat64s(make([]byte, 0, EncodedLen(len(values))), values)
}

// DecodeFloat64s decodes consecutive 8-byte big-endian doubles from buf.
// The returned slice never aliases buf.
func DecodeFloat64s(buf []byte) ([]float64, error) {
	if len(buf)%Float64Size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrMalformedEncoding, len(buf), Float64Size)
	}
	values := make([]float64, len(buf)/Float64Size)
	for i := range values {
		values[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[i*Float64Size:]))
	}
	return values, nil
}

// DecodeFloat64sRange decodes buf[offset:offset+length].
//
// A range outside buf fails with a *RangeError matching ErrOutOfRange. A
// length that is not a multiple of Float64Size fails with a *RangeError
// matching both ErrOutOfRange and ErrMalformedEncoding.
func DecodeFloat64sRange(buf []byte, offset, length int) ([]float64, error) {
	if offset < 0 || length < 0 || offset > len(buf) || length > len(buf)-offset {
		return nil, &RangeError{Offset: offset, Length: length, BufSize: len(buf)}
	}
	if length%Float64Size != 0 {
		return nil, &RangeError{Offset: offset, Length: length, BufSize: len(buf), Misaligned: true}
	}
	return DecodeFloat64s(buf[offset : offset+length])
}
