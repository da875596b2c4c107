// Package matrix_test provides benchmarks for the Float kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
)

// Laplace expansion is factorial; keep the determinant family small.
var (
	benchSizes    = []int{16, 64, 128}
	benchDetSizes = []int{4, 6, 8}
)

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Float
	sinkF float64
	sinkB bool
)

// benchFloat returns an n×n Float with values in [-1, 1) and no zeros.
func benchFloat(b *testing.B, n int, seed int64) *matrix.Float {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
		if vals[i] == 0 {
			vals[i] = 0.5
		}
	}
	f, err := matrix.NewFloatFromValues(n, n, vals...)
	if err != nil {
		b.Fatal(err)
	}

	return f
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFloat(b, n, 1337)
			B := benchFloat(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFloat(b, n, 11)
			B := benchFloat(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Mul(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFloat(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.TransposedSide()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	b.ReportAllocs()
	A := benchFloat(b, 64, 9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = A.Hash() == 0
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDetSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFloat(b, n, 77)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Determinant()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDetSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFloat(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, ok, err := A.Inverse()
				if err != nil || !ok {
					b.Fatal(err, ok)
				}
				sinkM = m
			}
		})
	}
}
