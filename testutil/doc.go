// Package testutil provides testing utilities for surfgo.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible raw detector output and legacy text records.
//
// # Random Descriptors
//
//	rng := testutil.NewRNG(seed)
//	raw := rng.RawDescriptor(64)          // unit-length float32 components
//	batch := rng.RawDescriptors(100, 128) // single backing array
//
// # Legacy Records
//
//	line := rng.LegacyRecord(64) // "<x> <y> <response> <c0> ... <c63>"
package testutil
