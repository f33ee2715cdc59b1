package surfgo

import (
	"fmt"

	"github.com/hupe1980/surfgo/codec"
	"github.com/hupe1980/surfgo/feature"
)

var (
	// ErrUnsupported is returned when a family has no forward conversion for
	// a representation.
	ErrUnsupported = codec.ErrUnsupported

	// ErrMalformedEncoding is returned when a buffer does not decode.
	ErrMalformedEncoding = codec.ErrMalformedEncoding

	// ErrOutOfRange is returned when a sub-range exceeds its buffer.
	ErrOutOfRange = codec.ErrOutOfRange
)

// NotComparable is the distance sentinel for incompatible features.
const NotComparable = feature.NotComparable

// LoadError reports which blob of a batch failed to load.
//
// The original underlying error can be accessed via errors.Unwrap.
type LoadError struct {
	Index int
	cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load blob %d: %v", e.Index, e.cause)
}

func (e *LoadError) Unwrap() error { return e.cause }
