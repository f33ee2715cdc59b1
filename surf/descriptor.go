package surf

import (
	"fmt"
	"image"
	"slices"

	"github.com/hupe1980/surfgo/codec"
	"github.com/hupe1980/surfgo/distance"
	"github.com/hupe1980/surfgo/feature"
)

const (
	// Tag is the SURF family tag.
	Tag feature.Tag = "SURF"

	// FieldName is the document field SURF descriptors are stored under.
	FieldName = "su_hi"

	// legacy header: x, y, response
	textHeaderTokens = 3
)

// Descriptor is an immutable SURF descriptor.
type Descriptor struct {
	values []float64
}

var _ feature.Feature = (*Descriptor)(nil)

// FromRaw builds a descriptor from raw detector output, widening each
// component to float64. Any dimensionality is accepted.
func FromRaw(raw []float32) *Descriptor {
	values := make([]float64, len(raw))
	for i, v := range raw {
		values[i] = float64(v)
	}
	return &Descriptor{values: values}
}

// FromValues builds a descriptor from a copy of values.
func FromValues(values []float64) *Descriptor {
	return &Descriptor{values: slices.Clone(values)}
}

// FromBytes decodes the binary representation.
func FromBytes(buf []byte) (*Descriptor, error) {
	values, err := codec.DecodeFloat64s(buf)
	if err != nil {
		return nil, fmt.Errorf("surf: %w", err)
	}
	return &Descriptor{values: values}, nil
}

// FromBytesRange decodes the binary representation stored in
// buf[offset:offset+length].
func FromBytesRange(buf []byte, offset, length int) (*Descriptor, error) {
	values, err := codec.DecodeFloat64sRange(buf, offset, length)
	if err != nil {
		return nil, fmt.Errorf("surf: %w", err)
	}
	return &Descriptor{values: values}, nil
}

// FromText decodes the legacy text representation.
func FromText(s string) (*Descriptor, error) {
	values, err := codec.ParseLegacy(s, textHeaderTokens)
	if err != nil {
		return nil, fmt.Errorf("surf: %w", err)
	}
	return &Descriptor{values: values}, nil
}

// Tag implements feature.Feature.
func (d *Descriptor) Tag() feature.Tag { return Tag }

// FeatureName implements feature.Feature.
func (d *Descriptor) FeatureName() string { return string(Tag) }

// FieldName implements feature.Feature.
func (d *Descriptor) FieldName() string { return FieldName }

// Extract implements feature.Feature. SURF descriptors come from FromRaw.
func (d *Descriptor) Extract(image.Image) error { return nil }

// Len returns the number of components.
func (d *Descriptor) Len() int { return len(d.values) }

// At returns component i.
func (d *Descriptor) At(i int) float64 { return d.values[i] }

// Values returns a copy of the components.
func (d *Descriptor) Values() []float64 { return slices.Clone(d.values) }

// Equal reports whether d and other have identical components.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return slices.Equal(d.values, other.values)
}

// Distance returns the Euclidean distance to other.
//
// Returns feature.NotComparable when other is not a SURF feature or has a
// different number of components, and when either descriptor is nil.
func (d *Descriptor) Distance(other feature.Feature) float64 {
	if d == nil || other == nil || other.Tag() != Tag {
		return feature.NotComparable
	}
	if o, ok := other.(*Descriptor); ok {
		if o == nil {
			return feature.NotComparable
		}
		return distance.L2(d.values, o.values)
	}
	return distance.L2(d.values, other.Values())
}

// Bytes returns the binary representation.
func (d *Descriptor) Bytes() []byte { return codec.EncodeFloat64s(d.values) }

// AppendBinary appends the binary representation to dst.
func (d *Descriptor) AppendBinary(dst []byte) ([]byte, error) {
	return codec.AppendFloat64s(dst, d.values), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d *Descriptor) MarshalBinary() ([]byte, error) { return d.Bytes(), nil }

// Text always fails: SURF has no legacy text writer.
func (d *Descriptor) Text() (string, error) {
	return "", fmt.Errorf("surf: text encoding: %w", codec.ErrUnsupported)
}

// MarshalText implements encoding.TextMarshaler and always fails.
func (d *Descriptor) MarshalText() ([]byte, error) {
	_, err := d.Text()
	return nil, err
}

// String implements fmt.Stringer for debugging.
func (d *Descriptor) String() string {
	return fmt.Sprintf("SURF(%d)%v", len(d.values), d.values)
}
