// Package surfgo provides the SURF descriptor codec and distance metric used
// by a content-based image retrieval pipeline.
//
// The descriptor itself lives in package surf; the capability surface shared
// by all descriptor families lives in package feature. This package adds the
// plumbing an index reader needs on its load path: a concurrent Loader that
// unwraps stored blobs, decodes them through a feature.Family, and reports
// what happened through a Logger and a MetricsCollector.
//
// # Quick Start
//
//	d := surf.FromRaw(detectorOutput)      // []float32 from a SURF detector
//	blob := d.Bytes()                      // 8 bytes per component, big-endian
//
//	loader, err := surfgo.NewLoader(surf.Family(), surfgo.WithCodec(codec.Zstd{}))
//	if err != nil { ... }
//	stored, _ := codec.Zstd{}.Marshal(blob)
//	features, err := loader.LoadAll(ctx, [][]byte{stored})
//
//	dist := d.Distance(features[0])        // negative means not comparable
//
// # Errors
//
// Decoding failures match ErrMalformedEncoding or ErrOutOfRange; text
// encoding of SURF matches ErrUnsupported. Distance never fails: it returns
// NotComparable (-1) for descriptors of another family or length.
package surfgo
