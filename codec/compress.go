package codec

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// envelope header: [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 means the payload is stored uncompressed.
const envelopeHeaderSize = 8

// payloads that compress worse than this ratio are stored uncompressed
const minCompressionRatio = 0.9

// MaxEnvelopePayload is the largest payload an envelope may carry. Headers
// declaring more are rejected before any buffer is allocated.
const MaxEnvelopePayload = 16 << 20

// an LZ4 block expands at most 255x its compressed size
const lz4MaxExpansion = 255

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxEnvelopePayload))
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// LZ4 wraps payloads in an LZ4 block envelope.
// Fast; suited to hot index segments.
type LZ4 struct{}

// Marshal compresses payload.
func (LZ4) Marshal(payload []byte) ([]byte, error) {
	return seal(payload, func(data []byte) ([]byte, error) {
		compressed := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, compressed, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil // incompressible
		}
		return compressed[:n], nil
	})
}

// Unmarshal decompresses an envelope produced by Marshal.
func (LZ4) Unmarshal(data []byte) ([]byte, error) {
	return open(data, func(compressed []byte, size uint64) ([]byte, error) {
		if size > lz4MaxExpansion*uint64(len(compressed))+16 {
			return nil, fmt.Errorf("declared %d bytes exceeds lz4 expansion limit for %d compressed bytes", size, len(compressed))
		}
		dst := make([]byte, size)
		n, err := lz4.UncompressBlock(compressed, dst)
		if err != nil {
			return nil, err
		}
		return dst[:n], nil
	})
}

// Name returns the unique name of the codec ("lz4").
func (LZ4) Name() string { return "lz4" }

// Zstd wraps payloads in a zstd envelope.
// Better ratio than LZ4; suited to cold storage.
type Zstd struct{}

// Marshal compresses payload.
func (Zstd) Marshal(payload []byte) ([]byte, error) {
	return seal(payload, func(data []byte) ([]byte, error) {
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, err
		}
		defer putZstdEncoder(enc)
		return enc.EncodeAll(data, nil), nil
	})
}

// Unmarshal decompresses an envelope produced by Marshal.
func (Zstd) Unmarshal(data []byte) ([]byte, error) {
	return open(data, func(compressed []byte, size uint64) ([]byte, error) {
		var h zstd.Header
		if err := h.Decode(compressed); err != nil {
			return nil, err
		}
		if h.HasFCS && h.FrameContentSize != size {
			return nil, fmt.Errorf("frame declares %d bytes, envelope %d", h.FrameContentSize, size)
		}

		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)
		// the decoder sizes its output from the frame and caps it at MaxEnvelopePayload
		return dec.DecodeAll(compressed, nil)
	})
}

// Name returns the unique name of the codec ("zstd").
func (Zstd) Name() string { return "zstd" }

func seal(payload []byte, compress func([]byte) ([]byte, error)) ([]byte, error) {
	if len(payload) > MaxEnvelopePayload {
		return nil, fmt.Errorf("payload of %d bytes exceeds envelope limit of %d", len(payload), MaxEnvelopePayload)
	}

	var compressed []byte
	if len(payload) > 0 {
		var err error
		if compressed, err = compress(payload); err != nil {
			return nil, err
		}
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(payload))*minCompressionRatio {
		out := make([]byte, envelopeHeaderSize+len(payload))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(payload)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[envelopeHeaderSize:], payload)
		return out, nil
	}

	out := make([]byte, envelopeHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(payload)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[envelopeHeaderSize:], compressed)
	return out, nil
}

func open(data []byte, decompress func(compressed []byte, size uint64) ([]byte, error)) ([]byte, error) {
	if len(data) < envelopeHeaderSize {
		return nil, fmt.Errorf("%w: envelope of %d bytes is shorter than its header", ErrMalformedEncoding, len(data))
	}

	uncompressedSize := uint64(binary.LittleEndian.Uint32(data[0:]))
	compressedSize := uint64(binary.LittleEndian.Uint32(data[4:]))
	body := data[envelopeHeaderSize:]

	if uncompressedSize > MaxEnvelopePayload {
		return nil, fmt.Errorf("%w: envelope declares %d bytes, limit is %d", ErrMalformedEncoding, uncompressedSize, MaxEnvelopePayload)
	}

	if compressedSize == 0 {
		if uint64(len(body)) != uncompressedSize {
			return nil, fmt.Errorf("%w: stored envelope declares %d bytes, has %d", ErrMalformedEncoding, uncompressedSize, len(body))
		}
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	}

	if uint64(len(body)) != compressedSize {
		return nil, fmt.Errorf("%w: compressed envelope declares %d bytes, has %d", ErrMalformedEncoding, compressedSize, len(body))
	}

	out, err := decompress(body, uncompressedSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEncoding, err)
	}
	if uint64(len(out)) != uncompressedSize {
		return nil, fmt.Errorf("%w: decompressed size mismatch: want %d, got %d", ErrMalformedEncoding, uncompressedSize, len(out))
	}
	return out, nil
}
