package surfgo

import (
	"runtime"

	"github.com/hupe1980/surfgo/codec"
)

type options struct {
	codec            codec.Codec
	logger           *Logger
	metricsCollector MetricsCollector
	concurrency      int
	skipMalformed    bool
}

func defaultOptions() options {
	return options{
		codec:            codec.Default,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		concurrency:      runtime.GOMAXPROCS(0),
	}
}

// Option configures a Loader.
type Option func(*options)

// WithCodec configures the envelope codec stored blobs are wrapped in.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring loads.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &surfgo.BasicMetricsCollector{}
//	loader, _ := surfgo.NewLoader(surf.Family(), surfgo.WithMetricsCollector(metrics))
//	// ... load blobs ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithConcurrency bounds the number of blobs LoadAll decodes in parallel.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}

// WithSkipMalformed makes LoadAll log and skip blobs that fail with
// ErrMalformedEncoding or ErrOutOfRange instead of aborting the batch.
// Skipped blobs are left as nil entries in the result.
func WithSkipMalformed(skip bool) Option {
	return func(o *options) {
		o.skipMalformed = skip
	}
}
