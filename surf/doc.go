// Package surf implements the SURF local descriptor family.
//
// A Descriptor is built from the float32 components an external SURF
// detector reports for one interest point. It is never produced by this
// package from an image; Extract is a no-op.
//
// # Representations
//
//   - Raw detector output: FromRaw
//   - Binary: MarshalBinary / FromBytes / FromBytesRange, 8 bytes per
//     component, big-endian IEEE-754, no header
//   - Legacy text: FromText only, "<x> <y> <response> <c0> <c1> ..." with the
//     three header tokens discarded. There is no text writer; Text and
//     MarshalText return codec.ErrUnsupported.
//
// # Distance
//
// Distance is Euclidean. Features of another family, and SURF descriptors of
// a different length, are feature.NotComparable.
package surf
