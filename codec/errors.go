package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when a descriptor family has no forward
	// conversion for the requested representation.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrMalformedEncoding is returned when a byte or text buffer does not
	// parse into a valid descriptor.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrOutOfRange is returned when a requested sub-range does not fit the
	// buffer it addresses.
	ErrOutOfRange = errors.New("range out of bounds")
)

// RangeError describes an invalid sub-range request.
//
// It matches ErrOutOfRange via errors.Is. When the range is in bounds but
// its length is not a whole number of components it also matches
// ErrMalformedEncoding.
type RangeError struct {
	Offset  int
	Length  int
	BufSize int
	// Misaligned is set when Length is not a multiple of the component width.
	Misaligned bool
}

func (e *RangeError) Error() string {
	if e.Misaligned {
		return fmt.Sprintf("range [%d:%d) of %d bytes: length %d is not a multiple of %d",
			e.Offset, e.Offset+e.Length, e.BufSize, e.Length, Float64Size)
	}
	return fmt.Sprintf("range [%d:%d) exceeds buffer of %d bytes", e.Offset, e.Offset+e.Length, e.BufSize)
}

// Is reports whether target is one of the sentinels this error stands for.
func (e *RangeError) Is(target error) bool {
	switch target {
	case ErrOutOfRange:
		return true
	case ErrMalformedEncoding:
		return e.Misaligned
	default:
		return false
	}
}
