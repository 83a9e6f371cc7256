// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer no-copy row views (Row) for DP fills that index every cell once.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); At/Set/Row: O(1); Clone/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int   // row and column counts (>0)
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewFilled(rows, cols, 0)
}

// NewFilled creates an r×c matrix with every cell set to v.
//
// Implementation:
//   - Stage 1: Validate the shape.
//   - Stage 2: Allocate one flat row-major buffer of r*c ints.
//   - Stage 3: Write v into every cell unless v is 0 (make already zeroed it).
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFilled(rows, cols, v int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills; only non-zero fills need a pass.
	buf := make([]int, rows*cols)
	if v != 0 {
		for k := range buf {
			buf[k] = v
		}
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a Dense from a literal 2D layout, copying the values.
// Intended for fixtures:
//
//	want, _ := matrix.FromRows([][]int{{0, -3, -6}, {-3, 1, -2}})
//
// Implementation:
//   - Stage 1: Take the column count from the first row.
//   - Stage 2: Append each row to the flat buffer, rejecting ragged rows.
//
// Errors:
//   - ErrInvalidDimensions if there are no rows or the first row is empty.
//   - ErrNonRectangular (wrapped with the row index) if a row length differs.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]int, 0, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows(row %d: len %d != %d): %w", i, len(row), c, ErrNonRectangular)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a no-copy view of row i; writes through the view mutate m.
// Returns nil when i is out of range.
// Complexity: O(1).
func (m *Dense) Row(i int) []int {
	if i < 0 || i >= m.r {
		return nil
	}
	// Cap the view so appends cannot spill into the next row.
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with the concrete return type.
func (m *Dense) CloneDense() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether other has the same shape and values as m.
// A nil other is never equal.
func (m *Dense) Equal(other Matrix) bool {
	if other == nil {
		return false
	}
	// Fast path: compare flat buffers directly.
	if d, ok := other.(*Dense); ok {
		if d == nil || d.r != m.r || d.c != m.c {
			return false
		}
		for k, v := range m.data {
			if d.data[k] != v {
				return false
			}
		}
		return true
	}
	if other.Rows() != m.r || other.Cols() != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
