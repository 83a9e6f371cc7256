// SPDX-License-Identifier: MIT

package align

import (
	"unicode/utf8"

	"github.com/biogo/hts/sam"
)

// Alignment is one pair of equal-length gapped strings.
type Alignment struct {
	Query   string // query with GapSymbol inserted
	Subject string // subject with GapSymbol inserted
}

// String returns "query\nsubject".
func (a Alignment) String() string { return a.Query + "\n" + a.Subject }

// Len returns the number of alignment columns.
func (a Alignment) Len() int { return utf8.RuneCountInString(a.Query) }

// Identity returns the fraction of columns holding equal non-gap symbols.
// An empty alignment has identity 0.
func (a Alignment) Identity() float64 {
	q, s := []rune(a.Query), []rune(a.Subject)
	if len(q) == 0 {
		return 0
	}
	same := 0
	for k := range q {
		if k < len(s) && q[k] == s[k] && q[k] != GapSymbol {
			same++
		}
	}

	return float64(same) / float64(len(q))
}

// Cigar describes the alignment as SAM CIGAR operations with the query as
// the read and the subject as the reference: '=' equal, 'X' mismatch,
// 'I' query symbol against a gap, 'D' gap against a subject symbol.
func (a Alignment) Cigar() sam.Cigar {
	q, s := []rune(a.Query), []rune(a.Subject)
	var (
		cigar sam.Cigar
		last  sam.CigarOpType
		run   int
	)
	for k := 0; k < len(q) && k < len(s); k++ {
		var t sam.CigarOpType
		switch {
		case q[k] == GapSymbol:
			t = sam.CigarDeletion
		case s[k] == GapSymbol:
			t = sam.CigarInsertion
		case q[k] == s[k]:
			t = sam.CigarEqual
		default:
			t = sam.CigarMismatch
		}
		if run > 0 && t != last {
			cigar = append(cigar, sam.NewCigarOp(last, run))
			run = 0
		}
		last = t
		run++
	}
	if run > 0 {
		cigar = append(cigar, sam.NewCigarOp(last, run))
	}

	return cigar
}
