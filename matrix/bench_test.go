// Package matrix_test provides benchmarks for Dense access patterns,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalign/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 512, 1024}

// sink defeats dead-code elimination.
var sink int

// randomDense fills an n×n Dense with a fixed seed.
func randomDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := range row {
			row[j] = r.Intn(1000) - 500
		}
	}

	return m
}

// BenchmarkDense_At measures bounds-checked reads.
func BenchmarkDense_At(b *testing.B) {
	for _, n := range benchSizes {
		m := randomDense(b, n)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for k := 0; k < b.N; k++ {
				s := 0
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						v, _ := m.At(i, j)
						s += v
					}
				}
				sink = s
			}
		})
	}
}

// BenchmarkDense_Row measures the row-view path used by the fill loops.
func BenchmarkDense_Row(b *testing.B) {
	for _, n := range benchSizes {
		m := randomDense(b, n)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for k := 0; k < b.N; k++ {
				s := 0
				for i := 0; i < n; i++ {
					for _, v := range m.Row(i) {
						s += v
					}
				}
				sink = s
			}
		})
	}
}

func BenchmarkDense_Clone(b *testing.B) {
	m := randomDense(b, 512)
	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		sink = m.CloneDense().Rows()
	}
}
