package surfgo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/surfgo/codec"
	"github.com/hupe1980/surfgo/feature"
)

// Loader decodes stored descriptor blobs of one family.
// It is safe for concurrent use.
type Loader struct {
	family feature.Family
	opts   options
	logger *Logger
}

// NewLoader creates a Loader for family.
func NewLoader(family feature.Family, optFns ...Option) (*Loader, error) {
	if family.Tag == "" || family.DecodeBytes == nil {
		return nil, fmt.Errorf("%w: loader needs a tag and a byte decoder", feature.ErrInvalidFamily)
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Loader{
		family: family,
		opts:   opts,
		logger: opts.logger.WithFamily(family.Tag.String()).WithCodec(opts.codec.Name()),
	}, nil
}

// Family returns the family this loader decodes.
func (l *Loader) Family() feature.Family { return l.family }

// Load unwraps and decodes a single blob.
func (l *Loader) Load(ctx context.Context, blob []byte) (feature.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	f, err := l.decode(blob)
	l.opts.metricsCollector.RecordDecode(time.Since(start), err)
	return f, err
}

func (l *Loader) decode(blob []byte) (feature.Feature, error) {
	payload, err := l.opts.codec.Unmarshal(blob)
	if err != nil {
		return nil, fmt.Errorf("%s envelope: %w", l.opts.codec.Name(), err)
	}
	return l.family.DecodeBytes(payload)
}

// LoadAll decodes blobs concurrently and returns the features in input order.
//
// The first failure aborts the batch and is returned as a *LoadError, unless
// WithSkipMalformed is set and the failure is a malformed or out-of-range
// encoding; such blobs are logged and left as nil entries.
func (l *Loader) LoadAll(ctx context.Context, blobs [][]byte) ([]feature.Feature, error) {
	start := time.Now()
	out := make([]feature.Feature, len(blobs))

	var skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.concurrency)

	for i, blob := range blobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			f, err := l.Load(gctx, blob)
			if err != nil {
				if isContextErr(err) {
					return err
				}
				if l.opts.skipMalformed && isMalformed(err) {
					l.logger.LogSkip(gctx, i, err)
					skipped.Add(1)
					return nil
				}
				l.logger.LogDecode(gctx, i, len(blob), err)
				return &LoadError{Index: i, cause: err}
			}
			out[i] = f
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// a cancellation that raced the last blob still fails the batch
		err = ctx.Err()
	}

	failed := int(skipped.Load())
	if err != nil {
		failed++
	}
	l.opts.metricsCollector.RecordBatch(len(blobs), failed, time.Since(start))
	l.logger.LogBatch(ctx, len(blobs), int(skipped.Load()), err)

	if err != nil {
		return nil, err
	}
	return out, nil
}

func isMalformed(err error) bool {
	return errors.Is(err, codec.ErrMalformedEncoding) || errors.Is(err, codec.ErrOutOfRange)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
