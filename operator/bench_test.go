package operator_test

import (
	"testing"

	"github.com/katalvlaran/nilhecke/odd"
	"github.com/katalvlaran/nilhecke/operator"
)

// benchmarkFamily applies one operator family to a single monomial of
// the given total degree.
func benchmarkFamily(b *testing.B, apply func(odd.Polynomial, int) (odd.Polynomial, error), n, degree int) {
	p := odd.FromMonomial(odd.New(1, []int{degree}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := apply(p, n); err != nil {
			b.Fatalf("operator failed: %v", err)
		}
	}
}

// BenchmarkSimple_Degree16 measures the simple family on a degree-16 seed.
func BenchmarkSimple_Degree16(b *testing.B) {
	benchmarkFamily(b, operator.Simple, 1, 16)
}

// BenchmarkBoundary_Degree16 measures the boundary family.
func BenchmarkBoundary_Degree16(b *testing.B) {
	benchmarkFamily(b, operator.Boundary, 1, 16)
}

// BenchmarkDifference_Degree16 measures the difference family.
func BenchmarkDifference_Degree16(b *testing.B) {
	benchmarkFamily(b, operator.Difference, 2, 16)
}
