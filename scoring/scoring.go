// SPDX-License-Identifier: MIT

package scoring

import "fmt"

// Policy exposes the score magnitudes used by an alignment builder.
// Unused optional costs (extended gap, transpose) report 0.
type Policy interface {
	// MatchScore returns the reward (or cost) of aligning two equal symbols.
	MatchScore() int
	// MismatchScore returns the penalty of aligning two different symbols.
	MismatchScore() int
	// GapScore returns the penalty of aligning a symbol against a gap.
	GapScore() int
	// ExtendedGapScore returns the penalty of extending an open gap.
	ExtendedGapScore() int
	// TransposeScore returns the cost of swapping two adjacent symbols.
	TransposeScore() int
}

// Compile-time conformance.
var (
	_ Policy = General{}
	_ Policy = Levenshtein{}
	_ Policy = Transpose{}
	_ Policy = ExtendedGap{}
)

// General scores similarity: identity reward, mismatch and gap penalties.
type General struct {
	Identity int
	Mismatch int
	Gap      int
}

func (g General) MatchScore() int       { return g.Identity }
func (g General) MismatchScore() int    { return g.Mismatch }
func (g General) GapScore() int         { return g.Gap }
func (g General) ExtendedGapScore() int { return 0 }
func (g General) TransposeScore() int   { return 0 }

// Levenshtein scores edit distance. A match costs nothing.
type Levenshtein struct {
	Substitution int
	Gap          int
}

func (l Levenshtein) MatchScore() int       { return 0 }
func (l Levenshtein) MismatchScore() int    { return l.Substitution }
func (l Levenshtein) GapScore() int         { return l.Gap }
func (l Levenshtein) ExtendedGapScore() int { return 0 }
func (l Levenshtein) TransposeScore() int   { return 0 }

// Transpose is General scoring with an additional transpose cost.
type Transpose struct {
	Identity      int
	Mismatch      int
	Gap           int
	TransposeCost int
}

func (t Transpose) MatchScore() int       { return t.Identity }
func (t Transpose) MismatchScore() int    { return t.Mismatch }
func (t Transpose) GapScore() int         { return t.Gap }
func (t Transpose) ExtendedGapScore() int { return 0 }
func (t Transpose) TransposeScore() int   { return t.TransposeCost }

// ExtendedGap is General scoring with a separate gap-extension penalty.
type ExtendedGap struct {
	Identity  int
	Mismatch  int
	Gap       int
	Extension int
}

func (e ExtendedGap) MatchScore() int       { return e.Identity }
func (e ExtendedGap) MismatchScore() int    { return e.Mismatch }
func (e ExtendedGap) GapScore() int         { return e.Gap }
func (e ExtendedGap) ExtendedGapScore() int { return e.Extension }
func (e ExtendedGap) TransposeScore() int   { return 0 }

// DefaultNeedlemanWunsch returns identity=2, mismatch=1, gap=2.
func DefaultNeedlemanWunsch() General {
	return General{Identity: 2, Mismatch: 1, Gap: 2}
}

// DefaultSmithWaterman returns identity=2, mismatch=1, gap=2.
func DefaultSmithWaterman() General {
	return General{Identity: 2, Mismatch: 1, Gap: 2}
}

// DefaultWagnerFischer returns substitution=1, gap=1.
func DefaultWagnerFischer() Levenshtein {
	return Levenshtein{Substitution: 1, Gap: 1}
}

// Validate checks that p is non-nil and every magnitude is non-negative.
// Complexity: O(1).
func Validate(p Policy) error {
	if p == nil {
		return ErrNilPolicy
	}
	fields := [...]struct {
		name string
		v    int
	}{
		{"match", p.MatchScore()},
		{"mismatch", p.MismatchScore()},
		{"gap", p.GapScore()},
		{"extended gap", p.ExtendedGapScore()},
		{"transpose", p.TransposeScore()},
	}
	for _, f := range fields {
		if f.v < 0 {
			return fmt.Errorf("Validate(%s=%d): %w", f.name, f.v, ErrNegativeScore)
		}
	}

	return nil
}
