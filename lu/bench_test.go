// Package lu_test: benchmarks contrasting the O(n³) factorization with the
// O(n²) re-solve, and the two factorization variants with each other.
package lu_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkF *lu.Factorization
	sinkM *matrix.Dense
	sinkV []float64
)

func BenchmarkFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomDiagDominant(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l, _, err := lu.Factorize(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = l
			}
		})
	}
}

func BenchmarkFactorizePivoted(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomDiagDominant(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := lu.FactorizePivoted(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

// BenchmarkFactorizationSolve measures the re-solve path alone — the payoff
// of keeping the Factorization around.
func BenchmarkFactorizationSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomDiagDominant(b, n, 7)
			rhs := randomVec(n, 11)
			f, err := lu.FactorizePivoted(a)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := f.Solve(rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomDiagDominant(b, n, 7)
			rhs := randomVec(n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := lu.Solve(a, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}
