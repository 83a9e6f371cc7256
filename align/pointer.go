// SPDX-License-Identifier: MIT

package align

import "strings"

// Pointer records which predecessor cells achieved a cell's optimal score.
// Flags are independent: a cell reached equally well from the diagonal and
// from above holds FromDiagonal|FromUp.
type Pointer uint8

// None marks a cell without a recorded transition (origin, or a local
// alignment cell whose best value is 0).
const None Pointer = 0

const (
	// FromDiagonal: both symbols consumed (match or mismatch).
	FromDiagonal Pointer = 1 << iota
	// FromUp: query symbol aligned against a gap.
	FromUp
	// FromLeft: gap aligned against a subject symbol.
	FromLeft
	// FromTranspose is reserved for transposition-aware recurrences.
	FromTranspose
)

// Additive codes for printed traceback matrices: each flag contributes its
// code and the sum is stored.
const (
	legacyMatch     = 2
	legacyUp        = 3
	legacyLeft      = 4
	legacyTranspose = 8
)

// Has reports whether every flag in q is set in p.
func (p Pointer) Has(q Pointer) bool { return q != None && p&q == q }

// Count returns the number of transitions recorded in p.
func (p Pointer) Count() int {
	n := 0
	for q := FromDiagonal; q <= FromTranspose; q <<= 1 {
		if p&q != 0 {
			n++
		}
	}

	return n
}

// Legacy returns the additive code of p (match=2, up=3, left=4, transpose=8).
func (p Pointer) Legacy() int {
	v := 0
	if p&FromDiagonal != 0 {
		v += legacyMatch
	}
	if p&FromUp != 0 {
		v += legacyUp
	}
	if p&FromLeft != 0 {
		v += legacyLeft
	}
	if p&FromTranspose != 0 {
		v += legacyTranspose
	}

	return v
}

// PointerFromLegacy decodes an additive code back into flags.
// ok is false when v is not the sum of any flag subset.
func PointerFromLegacy(v int) (p Pointer, ok bool) {
	// 16 subsets, all sums distinct.
	for q := None; q <= FromDiagonal|FromUp|FromLeft|FromTranspose; q++ {
		if q.Legacy() == v {
			return q, true
		}
	}

	return None, false
}

// String renders the flags as arrows in diagonal, up, left, transpose order.
func (p Pointer) String() string {
	if p == None {
		return "·"
	}
	var sb strings.Builder
	if p&FromDiagonal != 0 {
		sb.WriteString("↖")
	}
	if p&FromUp != 0 {
		sb.WriteString("↑")
	}
	if p&FromLeft != 0 {
		sb.WriteString("←")
	}
	if p&FromTranspose != 0 {
		sb.WriteString("⤡")
	}

	return sb.String()
}
