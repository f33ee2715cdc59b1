package testutil

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// SURF descriptor dimensionalities reported by common detectors.
const (
	SURF64  = 64
	SURF128 = 128
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// RawDescriptor generates one L2-normalized float32 vector, the shape a SURF
// detector reports per interest point.
func (r *RNG) RawDescriptor(dimensions int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float32, dimensions)
	r.fillUnitLocked(vec)
	return vec
}

// RawDescriptors generates num normalized vectors sharing one backing array.
func (r *RNG) RawDescriptors(num, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)
	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		r.fillUnitLocked(vec)
		vectors[i] = vec
	}
	return vectors
}

// fillUnitLocked fills vec from a Gaussian and normalizes it (caller must hold lock).
func (r *RNG) fillUnitLocked(vec []float32) {
	var norm float64
	for j := range vec {
		v := r.rand.NormFloat64()
		vec[j] = float32(v)
		norm += v * v
	}
	if norm == 0 {
		return
	}
	inv := 1 / math.Sqrt(norm)
	for j := range vec {
		vec[j] = float32(float64(vec[j]) * inv)
	}
}

// LegacyRecord generates one legacy text record with a random interest point
// header followed by dimensions components.
func (r *RNG) LegacyRecord(dimensions int) string {
	raw := r.RawDescriptor(dimensions)

	r.mu.Lock()
	x := r.rand.Float32() * 640
	y := r.rand.Float32() * 480
	response := r.rand.Float32() * 1000
	r.mu.Unlock()

	return FormatLegacy(x, y, response, raw)
}

// FormatLegacy renders a legacy text record.
func FormatLegacy(x, y, response float32, components []float32) string {
	var sb strings.Builder
	sb.WriteString(formatFloat32(x))
	sb.WriteByte(' ')
	sb.WriteString(formatFloat32(y))
	sb.WriteByte(' ')
	sb.WriteString(formatFloat32(response))
	for _, c := range components {
		sb.WriteByte(' ')
		sb.WriteString(formatFloat32(c))
	}
	return sb.String()
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
