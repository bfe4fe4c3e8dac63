package coordinate_test

import (
	"testing"

	"github.com/katalvlaran/vec2d/coordinate"
)

// newBenchTrack builds an n-row coordinate array wandering around a base.
func newBenchTrack(b *testing.B, n int) coordinate.Coordinate {
	b.Helper()
	lat := make([]float64, n)
	lon := make([]float64, n)
	for i := 0; i < n; i++ {
		lat[i] = 32 + float64(i%100)*1e-4
		lon[i] = 34 + float64(i%73)*1e-4
	}
	c, err := coordinate.New(lat, lon, coordinate.WithDegrees())
	if err != nil {
		b.Fatalf("new: %v", err)
	}

	return c
}

// BenchmarkGeoDist_ManyToMany measures the paired single-pass path.
func BenchmarkGeoDist_ManyToMany(b *testing.B) {
	t1 := newBenchTrack(b, 100_000)
	t2 := newBenchTrack(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := t1.GeoDist(t2); err != nil {
			b.Fatalf("geodist: %v", err)
		}
	}
}

// BenchmarkGeoDist_OneToMany measures the broadcast path.
func BenchmarkGeoDist_OneToMany(b *testing.B) {
	center := newBenchTrack(b, 1)
	track := newBenchTrack(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := center.GeoDist(track); err != nil {
			b.Fatalf("geodist: %v", err)
		}
	}
}

// BenchmarkGeoDistAndBearing measures the fused pass against two separate ones.
func BenchmarkGeoDistAndBearing(b *testing.B) {
	t1 := newBenchTrack(b, 100_000)
	t2 := newBenchTrack(b, 100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := t1.GeoDistAndBearing(t2); err != nil {
			b.Fatalf("geodistandbearing: %v", err)
		}
	}
}
