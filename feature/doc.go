// Package feature defines the capability surface shared by every
// descriptor family.
//
// A generic indexing or ranking component works with Feature values and
// Family definitions only; it never needs the concrete descriptor type.
//
// # Identification
//
// Every family carries a constant Tag (its feature name, e.g. "SURF") and a
// constant storage field name. Distance between features of different
// families is NotComparable.
//
// # Decoding
//
// Decoding never mutates an existing Feature. A Family supplies
// constructors that return fresh values:
//
//	f, err := fam.DecodeBytes(blob)
//	if err != nil {
//	    return err
//	}
//	d := query.Distance(f)
package feature
