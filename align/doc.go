// Package align computes optimal pairwise alignments of two symbol
// sequences and enumerates every co-optimal alignment on request.
//
// 🚀 What is pairwise alignment?
//
//	Two sequences (DNA, protein, plain text) are laid against each other,
//	inserting gaps ("-") so that similar symbols line up. A scoring policy
//	rewards matches and penalizes mismatches and gaps; dynamic programming
//	finds the best achievable score and a traceback matrix records every
//	move that reached it.
//
// ✨ Algorithms:
//   - NeedlemanWunsch — global alignment, maximizes similarity
//   - SmithWaterman   — local alignment, maximizes similarity, floors at 0
//   - WagnerFischer   — global edit distance, minimizes cost
//
// ✨ Key features:
//   - tie-aware traceback: a cell records every optimal predecessor
//   - lazy stack-based traceback (no recursion) yielding one or all
//     co-optimal alignments
//   - similarity, distance and their normalized forms derived from the
//     built matrices without recomputation
//   - SAM CIGAR rendering of each alignment
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvalign/align"
//
//	m, err := align.Compute(align.NeedlemanWunsch, "ACCG", "ACG",
//	  align.WithScoring(scoring.General{Identity: 2, Mismatch: 1, Gap: 1}),
//	  align.WithAllAlignments(true),
//	)
//	if err != nil {
//	  // handle scoring validation errors
//	}
//	alignments, err := m.Align() // ACCG/AC-G and ACCG/A-CG
//	sim := m.Similarity()
//
// Performance:
//
//   - Time:   O(N·M) to build; traceback is O(N+M) per alignment
//   - Memory: O(N·M) for the two matrices
//
// Enumerating all alignments on a tie-rich matrix is exponential in the
// number of ties; cap sequence length or stop iterating a Traceback early.
package align
