// Package scoring defines the interchangeable scoring policies consumed by
// the alignment builders in github.com/katalvlaran/lvalign/align.
//
// 🚀 What is a scoring policy?
//
//	A small value type exposing five magnitudes: match, mismatch, gap and
//	the optional extended-gap and transpose costs. Every magnitude is a
//	non-negative integer; builders decide the sign (Needleman-Wunsch and
//	Smith-Waterman subtract penalties, Wagner-Fischer adds costs).
//
// ✨ Variants:
//   - General     — identity reward, mismatch and gap penalties (NW, SW)
//   - Levenshtein — substitution + gap cost, match cost fixed at 0 (WF)
//   - Transpose   — General plus a transpose cost
//   - ExtendedGap — General plus a gap-extension cost
//
// ⚙️ Usage:
//
//	sc := scoring.General{Identity: 2, Mismatch: 1, Gap: 1}
//	if err := scoring.Validate(sc); err != nil {
//	  // handle ErrNegativeScore
//	}
//
// Policies carry no behaviour beyond their accessors and are safe to copy.
package scoring
