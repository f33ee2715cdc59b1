// Package distance provides descriptor distance calculations.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance (default for SURF)
//   - MetricSquaredL2: Squared Euclidean distance
//
// # Mismatched Lengths
//
// Vectors of different lengths are never truncated to a common prefix.
// Every function returns NotComparable (-1) instead, the same sentinel used
// for descriptors of different families.
//
// # Usage
//
//	d := distance.L2(a, b)
//	if !distance.Comparable(d) {
//	    // skip candidate
//	}
package distance
