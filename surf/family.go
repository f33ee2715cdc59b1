package surf

import "github.com/hupe1980/surfgo/feature"

// Family returns the SURF family definition. Each call returns a fresh
// copy, so callers may not alter the decoders other packages see.
func Family() feature.Family {
	return feature.Family{
		Tag:              Tag,
		Field:            FieldName,
		DecodeBytes:      decodeBytes,
		DecodeBytesRange: decodeBytesRange,
		DecodeText:       decodeText,
	}
}

// Register adds the SURF family to r.
func Register(r *feature.Registry) error {
	return r.Register(Family())
}

// the decoders return an untyped nil on failure, never a nil *Descriptor

func decodeBytes(buf []byte) (feature.Feature, error) {
	d, err := FromBytes(buf)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func decodeBytesRange(buf []byte, offset, length int) (feature.Feature, error) {
	d, err := FromBytesRange(buf, offset, length)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func decodeText(s string) (feature.Feature, error) {
	d, err := FromText(s)
	if err != nil {
		return nil, err
	}
	return d, nil
}
