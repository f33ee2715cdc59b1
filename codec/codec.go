// Package codec centralizes descriptor encoding.
//
// It owns the fixed binary layout for float64 descriptors (8 bytes per
// component, big-endian IEEE-754, no header), the read-only legacy text
// layout, and the optional byte envelopes stored blobs may be wrapped in.
//
// Envelope selection is a breaking-change boundary: blobs written with one
// envelope codec only decode with the same codec.
package codec

import "fmt"

// Codec wraps and unwraps an encoded descriptor payload.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(payload []byte) ([]byte, error)
	Unmarshal(data []byte) ([]byte, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "raw", "":
		return Raw{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return Zstd{}, true
	default:
		return nil, false
	}
}

// Names lists the stable names of the built-in codecs.
func Names() []string {
	return []string{"raw", "lz4", "zstd"}
}

// Default is the envelope used when none is configured. It leaves the
// binary descriptor layout untouched.
var Default Codec = Raw{}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, payload []byte) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(payload)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Raw is the identity envelope.
type Raw struct{}

// Marshal returns payload unchanged.
func (Raw) Marshal(payload []byte) ([]byte, error) { return payload, nil }

// Unmarshal returns data unchanged.
func (Raw) Unmarshal(data []byte) ([]byte, error) { return data, nil }

// Name returns the unique name of the codec ("raw").
func (Raw) Name() string { return "raw" }
