// Package matrix provides the dense signed-integer grid that stores
// dynamic-programming tables (score and traceback matrices) for the
// alignment builders.
//
// The matrix package provides:
//
//   - Dense: a row-major []int buffer with bounds-checked At/Set that
//     return errors instead of panicking.
//   - NewFilled for "R rows × C columns filled with V" construction, and
//     FromRows for literal fixtures in tests.
//   - Row views for hot loops that must avoid per-cell error checks.
//
// Dense tables are O(R·C) memory; callers aligning long sequences should
// size inputs accordingly.
package matrix
