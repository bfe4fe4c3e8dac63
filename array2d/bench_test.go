package array2d_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vec2d/array2d"
)

// newBenchArray builds an n-row array with predictable values.
func newBenchArray(b *testing.B, n int) array2d.Array {
	b.Helper()
	buf := make([]float64, 2*n)
	for i := range buf {
		buf[i] = float64(i%97) * 0.5 // fill with varied but deterministic values
	}
	a, err := array2d.Wrap(buf)
	if err != nil {
		b.Fatalf("wrap: %v", err)
	}

	return a
}

// BenchmarkNorm_Kernel measures the unrolled strided kernel.
func BenchmarkNorm_Kernel(b *testing.B) {
	a := newBenchArray(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Norm()
	}
}

// BenchmarkNorm_GenericHypot is the baseline a generic per-row reduction
// would pay: At bounds checks plus math.Hypot's overflow-safe slow path.
func BenchmarkNorm_GenericHypot(b *testing.B) {
	a := newBenchArray(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := make([]float64, a.Rows())
		for r := 0; r < a.Rows(); r++ {
			x, y, _ := a.At(r)
			out[r] = math.Hypot(x, y)
		}
	}
}

// BenchmarkAdd_EqualShape measures the flat gonum fast path.
func BenchmarkAdd_EqualShape(b *testing.B) {
	a := newBenchArray(b, 100_000)
	c := newBenchArray(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Add(c); err != nil {
			b.Fatalf("add: %v", err)
		}
	}
}

// BenchmarkAdd_Broadcast measures the 1↔N fallback loop.
func BenchmarkAdd_Broadcast(b *testing.B) {
	a := newBenchArray(b, 100_000)
	one := newBenchArray(b, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Add(one); err != nil {
			b.Fatalf("add: %v", err)
		}
	}
}
