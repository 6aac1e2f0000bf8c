package contour_test

import (
	"math/rand"
	"testing"

	"github.com/jkrumbiegel/isoband/contour"
	"github.com/jkrumbiegel/isoband/grid"
)

// benchGrid builds a deterministic random n×n grid with values in [0, 1).
func benchGrid(n int) (x, y, z []float64) {
	rng := rand.New(rand.NewSource(42))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = float64(i)
	}
	z = make([]float64, n*n)
	for i := range z {
		z[i] = rng.Float64()
	}

	return x, y, z
}

// BenchmarkIsolines measures one three-level isoline computation on a
// 256×256 random grid.
// Complexity: O(nvalues·n²)
func BenchmarkIsolines(b *testing.B) {
	const n = 256
	x, y, z := benchGrid(n)
	levels := []float64{0.25, 0.5, 0.75}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := contour.Isolines(x, y, z, n, n, levels); err != nil {
			b.Fatalf("Isolines failed: %v", err)
		}
	}
}

// BenchmarkIsobands measures one two-band isoband computation on a
// 256×256 random grid.
// Complexity: O(nbands·n²)
func BenchmarkIsobands(b *testing.B) {
	const n = 256
	x, y, z := benchGrid(n)
	lo := []float64{0.2, 0.6}
	hi := []float64{0.4, 0.8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := contour.Isobands(x, y, z, n, n, lo, hi); err != nil {
			b.Fatalf("Isobands failed: %v", err)
		}
	}
}

// BenchmarkBanderReuse measures amortized engine reuse across bands,
// the pattern the drivers use internally.
func BenchmarkBanderReuse(b *testing.B) {
	const n = 256
	x, y, z := benchGrid(n)
	g, err := grid.NewContext(x, y, z, n, n)
	if err != nil {
		b.Fatalf("NewContext failed: %v", err)
	}
	eng := contour.NewBander(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.SetLevels(0.3, 0.7)
		if err := eng.Calculate(); err != nil {
			b.Fatalf("Calculate failed: %v", err)
		}
		_ = eng.Collect()
	}
}
