package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvalign/align"
)

// randomDNA returns a deterministic pseudo-random nucleotide string.
func randomDNA(n int, seed int64) string {
	const alphabet = "ACGT"
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[r.Intn(len(alphabet))]
	}

	return string(buf)
}

// benchmarkCompute fills the matrices and traces the first alignment.
func benchmarkCompute(b *testing.B, a align.Algorithm, n, m int) {
	q, s := randomDNA(n, 1), randomDNA(m, 2)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		mdl, err := align.Compute(a, q, s)
		if err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
		if _, err = mdl.Align(); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

func BenchmarkNeedlemanWunsch_100(b *testing.B)  { benchmarkCompute(b, align.NeedlemanWunsch, 100, 100) }
func BenchmarkNeedlemanWunsch_1000(b *testing.B) { benchmarkCompute(b, align.NeedlemanWunsch, 1000, 1000) }
func BenchmarkSmithWaterman_1000(b *testing.B)   { benchmarkCompute(b, align.SmithWaterman, 1000, 1000) }
func BenchmarkWagnerFischer_1000(b *testing.B)   { benchmarkCompute(b, align.WagnerFischer, 1000, 1000) }

// BenchmarkTraceback_All measures enumeration over a matrix rich in ties.
func BenchmarkTraceback_All(b *testing.B) {
	mdl, err := align.Compute(align.WagnerFischer, "ATGTGTGTGTGTA", "ATA", align.WithAllAlignments(true))
	if err != nil {
		b.Fatalf("Compute failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mdl.Align(); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}
