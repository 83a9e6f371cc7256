// SPDX-License-Identifier: MIT
// Package align: sentinel error set.
//
// Callers MUST branch with errors.Is. Context (algorithm, coordinates) is
// attached with %w at the detection site.

package align

import "errors"

var (
	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed set
	// or an unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("align: unknown algorithm")

	// ErrNilData indicates that Build was called without sequence data.
	ErrNilData = errors.New("align: nil alignment data")

	// ErrBrokenTraceback indicates a traceback cell that is not a termination
	// point yet records no usable transition. It signals a defect in the
	// matrix fill, never bad input.
	ErrBrokenTraceback = errors.New("align: inconsistent traceback matrix")
)
