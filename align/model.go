// SPDX-License-Identifier: MIT

package align

import "fmt"

// Model wraps built matrices with metric semantics.
//
// Every metric is a pure function of the built score matrix and the stored
// scoring magnitudes; nothing is recomputed after Compute.
//
//   - Similarity metric (NeedlemanWunsch, SmithWaterman): similarity is read
//     from the matrix (terminal cell, or the best local score) and
//     distance = max(|q|,|s|)·identity − |similarity|.
//   - Distance metric (WagnerFischer): distance is the terminal cell and
//     similarity = max(|q|,|s|) − distance, floored at 0.
//   - Both sequences empty: similarity 1, distance 0, normalized 1.0 / 0.0.
type Model struct {
	built    *Built
	metric   Metric
	identity int
	mismatch int
	gap      int
	all      bool
}

// Compute normalizes query and subject, fills the matrices of a and
// returns the facade.
//
// Implementation:
//   - Stage 1: Resolve options; unset scoring falls back to DefaultScoring(a).
//   - Stage 2: Build the score and pointer matrices once.
//   - Stage 3: Wrap them in a Model; no alignment is traced until Align.
//
// Errors:
//   - ErrUnknownAlgorithm, scoring.ErrNilPolicy, scoring.ErrNegativeScore,
//     wrapped with "Compute".
//
// Complexity: Time O(n·m), Memory O(n·m).
//
// Example:
//
//	m, err := Compute(NeedlemanWunsch, "ACTG", "ACT",
//	  WithScoring(scoring.General{Identity: 2, Mismatch: 1, Gap: 1}))
//	alns, err := m.Align() // ["ACTG\nACT-"]
func Compute(a Algorithm, query, subject string, opts ...Option) (*Model, error) {
	cfg := newConfig(a, opts...)
	b, err := Build(a, NewData(query, subject), cfg.policy)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	return NewModel(b, cfg.all), nil
}

// NewModel wraps an existing Built. all selects enumeration of every
// co-optimal alignment in Align.
func NewModel(b *Built, all bool) *Model {
	return &Model{
		built:    b,
		metric:   b.alg.Metric(),
		identity: b.policy.match,
		mismatch: b.policy.mismatch,
		gap:      b.policy.gap,
		all:      all,
	}
}

// AllAlignments returns a copy of m with the enumeration flag set to v.
// The copy shares the read-only matrices.
func (m *Model) AllAlignments(v bool) *Model {
	cp := *m
	cp.all = v

	return &cp
}

// Algorithm returns the algorithm that built the matrices.
func (m *Model) Algorithm() Algorithm { return m.built.alg }

// Metric returns the ground-truth metric of the score matrix.
func (m *Model) Metric() Metric { return m.metric }

// Built returns the underlying matrices.
func (m *Model) Built() *Built { return m.built }

// Query returns the normalized query.
func (m *Model) Query() string { return m.built.data.Query() }

// Subject returns the normalized subject.
func (m *Model) Subject() string { return m.built.data.Subject() }

// Scores returns the identity, mismatch and gap magnitudes the matrices
// were built with.
func (m *Model) Scores() (identity, mismatch, gap int) {
	return m.identity, m.mismatch, m.gap
}

// Traceback returns a fresh lazy traceback honouring the enumeration flag.
func (m *Model) Traceback() *Traceback { return NewTraceback(m.built, m.all) }

// Align collects the alignments of a fresh Traceback in production order.
// A local model without any positive cell yields no alignments.
func (m *Model) Align() ([]Alignment, error) {
	var out []Alignment
	tb := m.Traceback()
	for tb.Next() {
		out = append(out, tb.Alignment())
	}
	if err := tb.Err(); err != nil {
		return out, fmt.Errorf("Align(%s): %w", m.built.alg, err)
	}

	return out, nil
}

// lengths returns |q|, |s| and their maximum.
func (m *Model) lengths() (n, s, longest int) {
	n, s = m.built.data.Len()

	return n, s, max(n, s)
}

// Similarity returns the alignment similarity.
func (m *Model) Similarity() int {
	n, s, longest := m.lengths()
	if n == 0 && s == 0 {
		return 1
	}
	if m.metric == Distance {
		return max(0, longest-m.Distance())
	}
	if m.built.alg.Local() {
		return m.built.best
	}

	return m.built.Terminal()
}

// Distance returns the alignment distance.
func (m *Model) Distance() int {
	n, s, longest := m.lengths()
	if n == 0 && s == 0 {
		return 0
	}
	if m.metric == Distance {
		return m.built.Terminal()
	}
	if n == 0 || s == 0 {
		return longest * m.mismatch
	}

	return longest*m.identity - abs(m.Similarity())
}

// NormalizedSimilarity rescales similarity into [0,1] for well-formed
// scoring. Similarity metric: (sim + |min|) / (max + |min|) with
// max = longest·identity and min = longest·mismatch. Distance metric:
// 1 − NormalizedDistance.
func (m *Model) NormalizedSimilarity() float64 {
	n, s, longest := m.lengths()
	if n == 0 && s == 0 {
		return 1
	}
	if m.metric == Distance {
		return 1 - m.NormalizedDistance()
	}
	maxPossible := float64(longest * m.identity)
	minPossible := float64(longest * m.mismatch)
	scoreRange := maxPossible + minPossible
	if scoreRange == 0 {
		return 1
	}

	return (float64(m.Similarity()) + minPossible) / scoreRange
}

// NormalizedDistance rescales distance. Distance metric: distance / longest.
// Similarity metric: 1 − NormalizedSimilarity.
func (m *Model) NormalizedDistance() float64 {
	n, s, longest := m.lengths()
	if n == 0 && s == 0 {
		return 0
	}
	if m.metric == Similarity {
		return 1 - m.NormalizedSimilarity()
	}

	return float64(m.Distance()) / float64(longest)
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
