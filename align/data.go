// SPDX-License-Identifier: MIT

package align

import (
	"strings"

	"github.com/katalvlaran/lvalign/matrix"
)

// Data holds the case-normalized query and subject of one alignment.
// It is immutable and carries no matrices; Build turns it into a *Built.
type Data struct {
	query   []rune
	subject []rune
}

// NewData upper-cases both sequences so that every comparison is
// case-insensitive. Either sequence may be empty.
func NewData(query, subject string) *Data {
	return &Data{
		query:   []rune(strings.ToUpper(query)),
		subject: []rune(strings.ToUpper(subject)),
	}
}

// Query returns the normalized query.
func (d *Data) Query() string { return string(d.query) }

// Subject returns the normalized subject.
func (d *Data) Subject() string { return string(d.subject) }

// Len returns the query and subject lengths in symbols.
func (d *Data) Len() (query, subject int) { return len(d.query), len(d.subject) }

// Built is the read-only result of a matrix fill: the score matrix, the
// pointer matrix and, for local alignment, the best score and every
// coordinate attaining it. Only Build creates a Built.
type Built struct {
	data    *Data
	alg     Algorithm
	policy  scoringSnapshot
	score   *matrix.Dense // (|q|+1)×(|s|+1) accumulated scores/costs
	pointer *matrix.Dense // same shape, Pointer flags stored as int
	best    int           // local only: maximum score seen during fill
	ends    []Coord       // local only: coordinates holding best, fill order
}

// scoringSnapshot keeps the magnitudes needed after the fill.
type scoringSnapshot struct {
	match, mismatch, gap int
}

// Algorithm returns the recurrence used to fill the matrices.
func (b *Built) Algorithm() Algorithm { return b.alg }

// Data returns the sequences the matrices were built from.
func (b *Built) Data() *Data { return b.data }

// Score returns the score matrix cell (i, j).
func (b *Built) Score(i, j int) (int, error) { return b.score.At(i, j) }

// Pointer returns the traceback flags of cell (i, j).
func (b *Built) Pointer(i, j int) (Pointer, error) {
	v, err := b.pointer.At(i, j)
	if err != nil {
		return None, err
	}

	return Pointer(v), nil
}

// ScoreMatrix returns a copy of the score matrix.
func (b *Built) ScoreMatrix() *matrix.Dense { return b.score.CloneDense() }

// PointerMatrix returns a copy of the pointer matrix holding Pointer flags.
func (b *Built) PointerMatrix() *matrix.Dense { return b.pointer.CloneDense() }

// LegacyPointerMatrix returns the pointer matrix in additive code
// (match=2, up=3, left=4, transpose=8, ties summed).
func (b *Built) LegacyPointerMatrix() *matrix.Dense {
	out := b.pointer.CloneDense()
	for i := 0; i < out.Rows(); i++ {
		row := out.Row(i)
		for j, v := range row {
			row[j] = Pointer(v).Legacy()
		}
	}

	return out
}

// Terminal returns score[|q|][|s|], the global similarity or distance.
func (b *Built) Terminal() int {
	n, m := b.data.Len()

	return b.score.Row(n)[m]
}

// MaxScore returns the best local score; 0 for global algorithms or when
// no positive cell exists.
func (b *Built) MaxScore() int { return b.best }

// Ends returns a copy of the coordinates where MaxScore occurs, in fill
// (row-major) order. Empty for global algorithms.
func (b *Built) Ends() []Coord {
	out := make([]Coord, len(b.ends))
	copy(out, b.ends)

	return out
}
