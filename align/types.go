// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the fixed recurrence policies.
type Algorithm int

const (
	// NeedlemanWunsch is global alignment maximizing similarity.
	NeedlemanWunsch Algorithm = iota
	// SmithWaterman is local alignment maximizing similarity with a 0 floor.
	SmithWaterman
	// WagnerFischer is global edit distance minimizing cost.
	WagnerFischer
)

var algorithmNames = [...]string{
	NeedlemanWunsch: "NeedlemanWunsch",
	SmithWaterman:   "SmithWaterman",
	WagnerFischer:   "WagnerFischer",
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Local reports whether a alignment may start and end inside the matrix.
func (a Algorithm) Local() bool { return a == SmithWaterman }

// Metric returns the metric kind natively produced by a.
func (a Algorithm) Metric() Metric {
	if a == WagnerFischer {
		return Distance
	}

	return Similarity
}

// ParseAlgorithm maps a short or full name (case-insensitive) to an Algorithm.
// Accepted: nw, needleman-wunsch, needlemanwunsch, sw, smith-waterman,
// smithwaterman, wf, wagner-fischer, wagnerfischer, levenshtein.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nw", "needleman-wunsch", "needlemanwunsch":
		return NeedlemanWunsch, nil
	case "sw", "smith-waterman", "smithwaterman":
		return SmithWaterman, nil
	case "wf", "wagner-fischer", "wagnerfischer", "levenshtein":
		return WagnerFischer, nil
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// Metric is the ground truth a score matrix holds.
type Metric int

const (
	// Similarity matrices hold scores where larger is better.
	Similarity Metric = iota
	// Distance matrices hold costs where smaller is better.
	Distance
)

// String returns "Similarity" or "Distance".
func (m Metric) String() string {
	if m == Distance {
		return "Distance"
	}

	return "Similarity"
}

// Coord is a (row, column) position in a score or pointer matrix.
// Row I indexes the query, column J the subject; 0 is the boundary.
type Coord struct {
	I, J int
}

// GapSymbol marks a position where one sequence has no symbol.
const GapSymbol = '-'
