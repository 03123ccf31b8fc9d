// Package matrix_test provides benchmarks for the CSC importer,
// using deterministic random sparsity patterns.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
)

// benchSizes are the square matrix sizes to benchmark (≈1% density).
var benchSizes = []int{256, 1024, 4096}

// sinks to defeat dead-code elimination
var (
	sinkCSC *matrix.CSC
	sinkV   []float64
	sinkF   float64
)

// randomCSC builds sorted CSC arrays for an n×n matrix with ~n/100 entries per column.
func randomCSC(n int, seed int64) (rowIdx, colPtr []int, values []float64) {
	rng := rand.New(rand.NewSource(seed))
	perCol := n / 100
	if perCol < 1 {
		perCol = 1
	}
	colPtr = make([]int, n+1)
	for c := 0; c < n; c++ {
		step := n / perCol
		for k := 0; k < perCol; k++ {
			rowIdx = append(rowIdx, k*step+rng.Intn(step))
			values = append(values, rng.Float64()*2-1)
		}
		colPtr[c+1] = len(values)
	}

	return rowIdx, colPtr, values
}

func BenchmarkNewCSC(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rowIdx, colPtr, values := randomCSC(n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.NewCSC(n, n, rowIdx, colPtr, values)
				if err != nil {
					b.Fatal(err)
				}
				sinkCSC = m
			}
		})
	}
}

func BenchmarkCSC_All(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rowIdx, colPtr, values := randomCSC(n, 4242)
			m, err := matrix.NewCSC(n, n, rowIdx, colPtr, values)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s float64
				for e := range m.All() {
					s += e.Value
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkCSC_MulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rowIdx, colPtr, values := randomCSC(n, 7)
			m, err := matrix.NewCSC(n, n, rowIdx, colPtr, values)
			if err != nil {
				b.Fatal(err)
			}
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i%7) - 3
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := m.MulVec(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}
