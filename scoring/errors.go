// SPDX-License-Identifier: MIT
// Package scoring: sentinel error set.
//
// Callers MUST branch with errors.Is; Validate wraps the sentinel with the
// offending field name.

package scoring

import "errors"

var (
	// ErrNilPolicy indicates that no scoring policy was supplied.
	ErrNilPolicy = errors.New("scoring: nil policy")

	// ErrNegativeScore indicates that a magnitude is below zero.
	// Signs are applied by the builders, policies store magnitudes only.
	ErrNegativeScore = errors.New("scoring: score magnitudes must be >= 0")
)
