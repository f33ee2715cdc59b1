package surfgo

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/surfgo/codec"
	"github.com/hupe1980/surfgo/feature"
	"github.com/hupe1980/surfgo/surf"
	"github.com/hupe1980/surfgo/testutil"
)

func sealAll(t *testing.T, c codec.Codec, descs []*surf.Descriptor) [][]byte {
	t.Helper()
	blobs := make([][]byte, len(descs))
	for i, d := range descs {
		b, err := c.Marshal(d.Bytes())
		require.NoError(t, err)
		blobs[i] = b
	}
	return blobs
}

func randomDescriptors(seed int64, n int) []*surf.Descriptor {
	rng := testutil.NewRNG(seed)
	descs := make([]*surf.Descriptor, n)
	for i, raw := range rng.RawDescriptors(n, testutil.SURF64) {
		descs[i] = surf.FromRaw(raw)
	}
	return descs
}

func TestNewLoader(t *testing.T) {
	_, err := NewLoader(feature.Family{})
	assert.ErrorIs(t, err, feature.ErrInvalidFamily)

	l, err := NewLoader(surf.Family(), WithCodec(nil), WithLogger(nil), WithMetricsCollector(nil), WithConcurrency(0))
	require.NoError(t, err)
	assert.Equal(t, surf.Tag, l.Family().Tag)
}

func TestLoaderLoad(t *testing.T) {
	d := surf.FromRaw([]float32{0.25, -0.75, 1.5})

	for _, c := range []codec.Codec{codec.Raw{}, codec.LZ4{}, codec.Zstd{}} {
		t.Run(c.Name(), func(t *testing.T) {
			l, err := NewLoader(surf.Family(), WithCodec(c))
			require.NoError(t, err)

			f, err := l.Load(context.Background(), codec.MustMarshal(c, d.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, 0.0, d.Distance(f))
		})
	}

	t.Run("Canceled", func(t *testing.T) {
		l, err := NewLoader(surf.Family())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = l.Load(ctx, d.Bytes())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("BadEnvelope", func(t *testing.T) {
		l, err := NewLoader(surf.Family(), WithCodec(codec.Zstd{}))
		require.NoError(t, err)

		_, err = l.Load(context.Background(), []byte{1, 2})
		assert.ErrorIs(t, err, ErrMalformedEncoding)
	})
}

func TestLoaderLoadAll(t *testing.T) {
	descs := randomDescriptors(4711, 64)

	for _, c := range []codec.Codec{codec.Raw{}, codec.LZ4{}, codec.Zstd{}} {
		t.Run(c.Name(), func(t *testing.T) {
			metrics := &BasicMetricsCollector{}
			l, err := NewLoader(surf.Family(),
				WithCodec(c),
				WithConcurrency(4),
				WithMetricsCollector(metrics),
			)
			require.NoError(t, err)

			got, err := l.LoadAll(context.Background(), sealAll(t, c, descs))
			require.NoError(t, err)
			require.Len(t, got, len(descs))
			for i := range descs {
				assert.Equal(t, 0.0, descs[i].Distance(got[i]), "index %d", i)
			}

			stats := metrics.GetStats()
			assert.Equal(t, int64(len(descs)), stats.DecodeCount)
			assert.Equal(t, int64(0), stats.DecodeErrors)
			assert.Equal(t, int64(1), stats.BatchCount)
			assert.Equal(t, int64(len(descs)), stats.BatchItems)
			assert.Equal(t, int64(0), stats.BatchFailed)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		l, err := NewLoader(surf.Family())
		require.NoError(t, err)
		got, err := l.LoadAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoaderLoadAllAborts(t *testing.T) {
	blobs := sealAll(t, codec.Raw{}, randomDescriptors(1, 8))
	blobs[5] = blobs[5][:13]

	l, err := NewLoader(surf.Family(), WithConcurrency(1))
	require.NoError(t, err)

	got, err := l.LoadAll(context.Background(), blobs)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 5, le.Index)
	assert.Contains(t, le.Error(), "load blob 5")
}

func TestLoaderLoadAllSkipMalformed(t *testing.T) {
	descs := randomDescriptors(2, 6)
	blobs := sealAll(t, codec.Raw{}, descs)
	blobs[1] = []byte{1, 2, 3}
	blobs[4] = append(blobs[4], 0xFF)

	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	l, err := NewLoader(surf.Family(),
		WithSkipMalformed(true),
		WithLogger(logger),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)

	got, err := l.LoadAll(context.Background(), blobs)
	require.NoError(t, err)
	require.Len(t, got, len(descs))

	for i, f := range got {
		if i == 1 || i == 4 {
			assert.Nil(t, f, "index %d", i)
			continue
		}
		assert.Equal(t, 0.0, descs[i].Distance(f), "index %d", i)
	}

	assert.Contains(t, buf.String(), "skipping malformed blob")
	assert.Contains(t, buf.String(), "family=SURF")
	assert.Contains(t, buf.String(), "skipped=2")
	assert.Equal(t, int64(2), metrics.GetStats().BatchFailed)
	assert.Equal(t, int64(2), metrics.GetStats().DecodeErrors)
}

func TestLoaderLoadAllCanceled(t *testing.T) {
	blobs := sealAll(t, codec.Raw{}, randomDescriptors(3, 16))

	l, err := NewLoader(surf.Family(), WithSkipMalformed(true))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := l.LoadAll(ctx, blobs)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoaderForeignFamily(t *testing.T) {
	d := surf.FromRaw([]float32{1, 2, 3})

	// a family whose decoder rejects everything it is handed
	rejecting := feature.Family{
		Tag:   "CEDD",
		Field: "cedd",
		DecodeBytes: func([]byte) (feature.Feature, error) {
			return nil, errors.New("cedd: not implemented")
		},
	}

	l, err := NewLoader(rejecting, WithSkipMalformed(true))
	require.NoError(t, err)

	_, err = l.LoadAll(context.Background(), [][]byte{d.Bytes()})
	var le *LoadError
	require.True(t, errors.As(err, &le), "non-encoding errors are never skipped")
	assert.Equal(t, 0, le.Index)
}
