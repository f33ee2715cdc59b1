package distance

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
)

// NotComparable is returned instead of a distance when two vectors cannot be
// compared. Any negative result means "not comparable".
const NotComparable = -1.0

// L2 calculates the Euclidean distance between two vectors.
// Returns NotComparable if the vectors differ in length.
func L2(a, b []float64) float64 {
	if len(a) != len(b) {
		return NotComparable
	}
	if len(a) == 0 {
		return 0
	}
	return vek.Distance(a, b)
}

// SquaredL2 calculates the squared Euclidean distance between two vectors.
// Returns NotComparable if the vectors differ in length.
func SquaredL2(a, b []float64) float64 {
	if len(a) != len(b) {
		return NotComparable
	}
	if len(a) == 0 {
		return 0
	}
	diff := vek.Sub(a, b)
	return vek.Dot(diff, diff)
}

// Comparable reports whether d is a real distance rather than NotComparable.
func Comparable(d float64) bool {
	return d >= 0 && !math.IsNaN(d)
}

// Metric represents the distance metric used for descriptor comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return L2, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// RuntimeInfo describes the kernels selected for this process.
type RuntimeInfo struct {
	Accelerated bool
	Features    []string
}

// Info reports whether SIMD acceleration is active.
func Info() RuntimeInfo {
	info := vek.Info()
	return RuntimeInfo{
		Accelerated: info.Acceleration,
		Features:    info.CPUFeatures,
	}
}
