// SPDX-License-Identifier: MIT

package align

import (
	"fmt"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/scoring"
)

// recurrence is the per-algorithm part of the shared fill loop.
//
// Algorithm Outline (shared):
//  1. Let n = len(query), m = len(subject). Allocate (n+1)x(m+1) S and P.
//  2. Boundary: S[k][0] = S[0][k] = edge(k); P flags Up/Left when global.
//  3. For i = 1..n, j = 1..m:
//     diag = S[i-1][j-1] ± (match or mismatch)
//     up   = S[i-1][j] ± gap
//     left = S[i][j-1] ± gap
//     S[i][j], P[i][j] = choose(diag, up, left)
type recurrence interface {
	// edge returns the boundary value k steps away from the origin.
	edge(k int) int
	// global reports whether boundary cells carry Up/Left transitions.
	global() bool
	// diagonal returns the candidate arriving from (i-1, j-1).
	diagonal(prev int, same bool) int
	// gapped returns the candidate arriving from above or from the left.
	gapped(prev int) int
	// choose combines the three candidates into the cell value and flags.
	choose(diag, up, left int) (int, Pointer)
}

// needlemanWunsch maximizes; penalties are subtracted.
type needlemanWunsch struct{ identity, mismatch, gap int }

func (r needlemanWunsch) edge(k int) int { return -k * r.gap }
func (r needlemanWunsch) global() bool   { return true }

func (r needlemanWunsch) diagonal(prev int, same bool) int {
	if same {
		return prev + r.identity
	}

	return prev - r.mismatch
}

func (r needlemanWunsch) gapped(prev int) int { return prev - r.gap }

func (r needlemanWunsch) choose(diag, up, left int) (int, Pointer) {
	best := max(diag, up, left)

	return best, tied(best, diag, up, left)
}

// smithWaterman maximizes with a floor at 0; a 0 cell records no flags.
type smithWaterman struct{ needlemanWunsch }

func (r smithWaterman) edge(int) int { return 0 }
func (r smithWaterman) global() bool { return false }

func (r smithWaterman) choose(diag, up, left int) (int, Pointer) {
	best := max(0, diag, up, left)
	if best == 0 {
		return 0, None
	}

	return best, tied(best, diag, up, left)
}

// wagnerFischer minimizes; costs are added and a match is free.
type wagnerFischer struct{ substitution, gap int }

func (r wagnerFischer) edge(k int) int { return k * r.gap }
func (r wagnerFischer) global() bool   { return true }

func (r wagnerFischer) diagonal(prev int, same bool) int {
	if same {
		return prev
	}

	return prev + r.substitution
}

func (r wagnerFischer) gapped(prev int) int { return prev + r.gap }

func (r wagnerFischer) choose(diag, up, left int) (int, Pointer) {
	best := min(diag, up, left)

	return best, tied(best, diag, up, left)
}

// tied flags every candidate equal to best; ties accumulate independently.
func tied(best, diag, up, left int) Pointer {
	p := None
	if diag == best {
		p |= FromDiagonal
	}
	if up == best {
		p |= FromUp
	}
	if left == best {
		p |= FromLeft
	}

	return p
}

// recurrenceFor selects the policy of a for the validated scoring p.
func recurrenceFor(a Algorithm, p scoring.Policy) (recurrence, error) {
	switch a {
	case NeedlemanWunsch:
		return needlemanWunsch{p.MatchScore(), p.MismatchScore(), p.GapScore()}, nil
	case SmithWaterman:
		return smithWaterman{needlemanWunsch{p.MatchScore(), p.MismatchScore(), p.GapScore()}}, nil
	case WagnerFischer:
		return wagnerFischer{p.MismatchScore(), p.GapScore()}, nil
	}

	return nil, ErrUnknownAlgorithm
}

// Build fills the score and pointer matrices of d in one forward pass.
//
// Implementation:
//   - Stage 1: Validate d and p, select the recurrence of a.
//   - Stage 2: Allocate (n+1)×(m+1) score and pointer matrices and set the
//     boundary row and column.
//   - Stage 3: Fill row by row through Row views; every tied candidate sets
//     its flag. Local fills also track the best score and all its cells.
//
// Errors:
//   - ErrNilData: d is nil.
//   - ErrUnknownAlgorithm: a is outside the closed set.
//   - scoring.ErrNilPolicy, scoring.ErrNegativeScore: invalid p.
//
// Complexity: Time O(n·m), Memory O(n·m).
func Build(a Algorithm, d *Data, p scoring.Policy) (*Built, error) {
	if d == nil {
		return nil, fmt.Errorf("Build(%s): %w", a, ErrNilData)
	}
	if err := scoring.Validate(p); err != nil {
		return nil, fmt.Errorf("Build(%s): %w", a, err)
	}
	rec, err := recurrenceFor(a, p)
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", a, err)
	}

	rows, cols := len(d.query)+1, len(d.subject)+1
	score, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", a, err)
	}
	pointer, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", a, err)
	}
	b := &Built{
		data:    d,
		alg:     a,
		policy:  scoringSnapshot{p.MatchScore(), p.MismatchScore(), p.GapScore()},
		score:   score,
		pointer: pointer,
	}

	// Boundary row 0 and column 0.
	s0, p0 := score.Row(0), pointer.Row(0)
	for j := 1; j < cols; j++ {
		s0[j] = rec.edge(j)
		if rec.global() {
			p0[j] = int(FromLeft)
		}
	}
	for i := 1; i < rows; i++ {
		score.Row(i)[0] = rec.edge(i)
		if rec.global() {
			pointer.Row(i)[0] = int(FromUp)
		}
	}
	if rec.global() {
		p0[0] = int(FromLeft)
	}

	// Fill, tracking the local maximum and all its coordinates.
	local := a.Local()
	for i := 1; i < rows; i++ {
		prev, cur, ptr := score.Row(i-1), score.Row(i), pointer.Row(i)
		q := d.query[i-1]
		for j := 1; j < cols; j++ {
			diag := rec.diagonal(prev[j-1], q == d.subject[j-1])
			up := rec.gapped(prev[j])
			left := rec.gapped(cur[j-1])

			v, flags := rec.choose(diag, up, left)
			cur[j], ptr[j] = v, int(flags)

			if !local {
				continue
			}
			switch {
			case v > b.best:
				b.best = v
				b.ends = append(b.ends[:0], Coord{I: i, J: j})
			case v == b.best && v > 0:
				b.ends = append(b.ends, Coord{I: i, J: j})
			}
		}
	}

	return b, nil
}
