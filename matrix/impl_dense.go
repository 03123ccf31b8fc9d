// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Serve as the materialization target of CSC.ToDense (display, comparison).
//
// A Dense is produced by ToDense and is read-only afterwards; the CSC it came
// from stays the single source of truth.
//
// Complexity quicksheet:
//   - newDense: O(r*c) zero-init; At: O(1); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// MaxDenseCells caps rows*cols for every dense materialization (ToDense,
// ToGonum) and the row count of MulVec results. 1<<28 float64 cells is 2 GiB.
const MaxDenseCells = 1 << 28

// ---------- error context tags ----------

const (
	ctxAt = "At" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// denseCells returns rows*cols, or ErrInvalidDimensions when a dimension is
// negative, either dimension or the product exceeds MaxDenseCells, or the
// product overflows int.
func denseCells(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if rows > MaxDenseCells || cols > MaxDenseCells {
		return 0, fmt.Errorf("%d x %d exceeds %d cells: %w", rows, cols, MaxDenseCells, ErrInvalidDimensions)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%d x %d overflows: %w", rows, cols, ErrInvalidDimensions)
	}
	if n := rows * cols; n > MaxDenseCells {
		return 0, fmt.Errorf("%d x %d exceeds %d cells: %w", rows, cols, MaxDenseCells, ErrInvalidDimensions)
	}

	return rows * cols, nil
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is allowed to mirror empty CSC shapes.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Reader       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// newDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: check the shape via denseCells (sign, overflow, cap).
//   - Stage 2: allocate the zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
func newDense(rows, cols int) (*Dense, error) {
	n, err := denseCells(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: make([]float64, n)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel instead.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// String renders rows as lines with comma-separated values (%g).
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
