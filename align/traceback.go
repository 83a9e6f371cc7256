// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"slices"
)

// frame is one pending partial path: reversed accumulators and a cell.
type frame struct {
	q, s []rune
	i, j int
}

// Traceback lazily reconstructs alignments from a Built pointer matrix with
// an explicit depth-first stack.
//
// Description:
//
//	Each popped frame either terminates (global: i==0 && j==0; local:
//	score[i][j]==0) and yields an alignment, or pushes one frame per
//	recorded transition, tested in diagonal, up, left order. Because the
//	stack is LIFO, the transition pushed last is explored first.
//
//	In first-only mode just the first holding transition is pushed and the
//	stack is cleared after the first yield, so exactly one alignment is
//	produced. Which co-optimal alignment that is follows from the push/pop
//	order above; it is not a lexicographic tie-break.
//
// Usage mirrors bufio.Scanner:
//
//	tb := model.Traceback()
//	for tb.Next() {
//	  fmt.Println(tb.Alignment())
//	}
//	if err := tb.Err(); err != nil { ... }
//
// A Traceback is single-use; build a new one to iterate again.
type Traceback struct {
	built *Built
	all   bool
	stop  func(i, j int) bool
	stack []frame
	cur   Alignment
	err   error
}

// NewTraceback seeds a traceback over b. all selects enumeration of every
// co-optimal alignment.
//
// Implementation:
//   - Global: one frame at (|q|,|s|); terminate at (0,0).
//   - Local: one frame per coordinate of b.Ends(), pushed in fill order;
//     terminate at any cell whose score is 0. No ends means no alignments.
//
// Errors:
//   - none at construction; inconsistent cells surface later through Err
//     as ErrBrokenTraceback.
//
// Complexity: Time O(k) for k seeds; each Next costs O(|q|+|s|) per
// alignment produced, Space O(depth·(|q|+|s|)) for pending frames.
func NewTraceback(b *Built, all bool) *Traceback {
	t := &Traceback{built: b, all: all}
	if b.alg.Local() {
		t.stop = func(i, j int) bool { return b.score.Row(i)[j] == 0 }
		for _, c := range b.ends {
			t.stack = append(t.stack, frame{i: c.I, j: c.J})
		}
	} else {
		t.stop = func(i, j int) bool { return i == 0 && j == 0 }
		n, m := b.data.Len()
		t.stack = append(t.stack, frame{i: n, j: m})
	}

	return t
}

// Next advances to the next alignment. It returns false when the stack is
// exhausted or an inconsistent cell was met; check Err afterwards.
func (t *Traceback) Next() bool {
	if t.err != nil {
		return false
	}
	query, subject := t.built.data.query, t.built.data.subject
	for len(t.stack) > 0 {
		f := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]

		if t.stop(f.i, f.j) {
			slices.Reverse(f.q)
			slices.Reverse(f.s)
			t.cur = Alignment{Query: string(f.q), Subject: string(f.s)}
			if !t.all {
				t.stack = t.stack[:0]
			}
			return true
		}

		p := Pointer(t.built.pointer.Row(f.i)[f.j])
		moves := t.moves(p, f.i, f.j)
		if len(moves) == 0 {
			t.err = fmt.Errorf("Traceback(%d,%d) flags %q: %w", f.i, f.j, p, ErrBrokenTraceback)
			t.stack = nil
			return false
		}
		// A sole successor may extend the popped frame's buffers in place.
		share := len(moves) == 1
		for _, mv := range moves {
			qr, sr := GapSymbol, GapSymbol
			ni, nj := f.i, f.j
			switch mv {
			case FromDiagonal:
				qr, sr = query[f.i-1], subject[f.j-1]
				ni, nj = f.i-1, f.j-1
			case FromUp:
				qr = query[f.i-1]
				ni = f.i - 1
			case FromLeft:
				sr = subject[f.j-1]
				nj = f.j - 1
			}
			q, s := f.q, f.s
			if !share {
				q, s = slices.Clip(q), slices.Clip(s)
			}
			t.stack = append(t.stack, frame{q: append(q, qr), s: append(s, sr), i: ni, j: nj})
		}
	}

	return false
}

// moves returns the usable transitions of p at (i, j) in evaluation order.
// First-only mode keeps just the first one. Flags pointing outside the
// matrix are dropped, which surfaces as ErrBrokenTraceback when none remain.
func (t *Traceback) moves(p Pointer, i, j int) []Pointer {
	out := make([]Pointer, 0, 3)
	if p.Has(FromDiagonal) && i > 0 && j > 0 {
		out = append(out, FromDiagonal)
		if !t.all {
			return out
		}
	}
	if p.Has(FromUp) && i > 0 {
		out = append(out, FromUp)
		if !t.all {
			return out
		}
	}
	if p.Has(FromLeft) && j > 0 {
		out = append(out, FromLeft)
	}

	return out
}

// Alignment returns the alignment produced by the last successful Next.
func (t *Traceback) Alignment() Alignment { return t.cur }

// Err returns the internal-consistency fault that stopped iteration, if any.
func (t *Traceback) Err() error { return t.err }
