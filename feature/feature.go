package feature

import (
	"image"

	"github.com/hupe1980/surfgo/distance"
)

// NotComparable is the distance returned for features that cannot be
// compared. Callers must treat any negative distance as incomparable.
const NotComparable = distance.NotComparable

// Tag identifies a descriptor family. It doubles as the family's feature name.
type Tag string

// String returns the tag as a feature name.
func (t Tag) String() string { return string(t) }

// Feature is a single visual feature of some descriptor family.
// Implementations must be immutable and safe for concurrent use.
type Feature interface {
	// Tag returns the family tag. It is the same for every instance of a family.
	Tag() Tag

	// FeatureName returns the human-readable family name, e.g. "SURF".
	FeatureName() string

	// FieldName returns the storage field this family is written under.
	FieldName() string

	// Extract analyses img. Families built from detector output treat this
	// as a no-op.
	Extract(img image.Image) error

	// Distance returns the dissimilarity to other, or NotComparable.
	Distance(other Feature) float64

	// Values returns a copy of the descriptor components.
	Values() []float64

	// MarshalBinary returns the compact binary representation.
	MarshalBinary() ([]byte, error)

	// Text returns the legacy text representation. Families without a
	// text writer return an error matching codec.ErrUnsupported.
	Text() (string, error)
}

// Family describes a descriptor family and how to decode it.
type Family struct {
	// Tag is the family tag and feature name.
	Tag Tag
	// Field is the storage field name.
	Field string

	DecodeBytes      func(buf []byte) (Feature, error)
	DecodeBytesRange func(buf []byte, offset, length int) (Feature, error)
	DecodeText       func(s string) (Feature, error)
}

// Comparable reports whether a and b belong to the same family.
func Comparable(a, b Feature) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Tag() == b.Tag()
}
