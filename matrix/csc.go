// SPDX-License-Identifier: MIT

// Package matrix - CSC (compressed sparse column) storage.
//
// Purpose:
//   - Reconstruct a sparse matrix from the three parallel arrays a host
//     environment hands over (row indices, column pointers, values) plus
//     the (nrow, ncol) pair.
//   - Validate every layout invariant before any indexed read, so a corrupt
//     pointer array is reported instead of reading out of bounds.
//   - Own the buffers exclusively: inputs are copied, accessors hand out
//     copies, and there is no mutation API.
//
// Layout:
//   - For column c, storage positions colPtr[c] .. colPtr[c+1]-1 hold the
//     rows (rowIdx) and values of that column, in the caller's order.
//
// Complexity quicksheet:
//   - NewCSC: O(ncol + nnz); At: O(log k) sorted / O(k) unsorted;
//     All/Column: O(1) to create, O(nnz) to drain; ToDense: O(r*c + nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const ctxCSC = "CSC"

// CSC is an immutable compressed-sparse-column matrix of float64 values.
type CSC struct {
	nrow, ncol int       // logical shape (either may be 0)
	rowIdx     []int     // zero-based row per stored entry, len == nnz
	colPtr     []int     // len == ncol+1, colPtr[0]==0, colPtr[ncol]==nnz
	values     []float64 // value per stored entry, len == nnz
	sorted     bool      // rows strictly increasing in every column (enables binary search)
}

var (
	_ Reader       = (*CSC)(nil)
	_ fmt.Stringer = (*CSC)(nil)
)

// NewCSC builds a CSC matrix from its three defining arrays.
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: ValidateCSC (dimensions, pointer layout, nnz agreement,
//     row range, optional row order, numeric policy).
//   - Stage 3: copy the buffers so the matrix exclusively owns its storage.
//   - Stage 4: detect per-column row order once for At's fast path.
//
// Errors:
//   - ErrInvalidDimensions when nrow<0 or ncol<0.
//   - ErrInvalidFormat joined with ErrColPtrLength, ErrColPtrStart,
//     ErrColPtrNotMonotonic, ErrNNZMismatch or ErrRowsNotSorted.
//   - ErrOutOfRange when a row index is outside [0, nrow).
//   - ErrNaNInf when a value is non-finite under the default policy.
//
// No partial matrix is ever returned alongside an error.
func NewCSC(nrow, ncol int, rowIdx, colPtr []int, values []float64, opts ...Option) (*CSC, error) {
	o := gatherOptions(opts...)
	if err := ValidateCSC(nrow, ncol, rowIdx, colPtr, values, o); err != nil {
		return nil, fmt.Errorf("New%s(%d,%d): %w", ctxCSC, nrow, ncol, err)
	}

	m := &CSC{
		nrow:   nrow,
		ncol:   ncol,
		rowIdx: append(make([]int, 0, len(rowIdx)), rowIdx...),
		colPtr: append(make([]int, 0, len(colPtr)), colPtr...),
		values: append(make([]float64, 0, len(values)), values...),
	}
	m.sorted = ValidateRowsSorted(m.rowIdx, m.colPtr) == nil

	return m, nil
}

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.nrow }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.ncol }

// Shape packs Rows() and Cols() into a single call.
func (m *CSC) Shape() (rows, cols int) { return m.nrow, m.ncol }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *CSC) NNZ() int { return len(m.values) }

// Density returns NNZ / (Rows·Cols). A matrix with no cells has density 0.
func (m *CSC) Density() float64 {
	cells := float64(m.nrow) * float64(m.ncol)
	if cells == 0 {
		return 0
	}

	return float64(len(m.values)) / cells
}

// Sorted reports whether rows are strictly increasing inside every column.
func (m *CSC) Sorted() bool { return m.sorted }

// At returns the value at (row, col); cells without a stored entry read as 0.
// When a column stores the same row more than once the entries are summed,
// matching ToDense and MulVec.
// Errors: ErrOutOfRange for invalid coordinates.
func (m *CSC) At(row, col int) (float64, error) {
	if row < 0 || row >= m.nrow || col < 0 || col >= m.ncol {
		return 0, fmt.Errorf("%s.%s(%d,%d): %w", ctxCSC, ctxAt, row, col, ErrOutOfRange)
	}

	lo, hi := m.colPtr[col], m.colPtr[col+1]
	if m.sorted {
		k := lo + sort.SearchInts(m.rowIdx[lo:hi], row)
		if k < hi && m.rowIdx[k] == row {
			return m.values[k], nil
		}

		return 0, nil
	}
	var sum float64
	for k := lo; k < hi; k++ {
		if m.rowIdx[k] == row {
			sum += m.values[k]
		}
	}

	return sum, nil
}

// RowIndices returns a copy of the row-index array.
func (m *CSC) RowIndices() []int { return append([]int(nil), m.rowIdx...) }

// ColPointers returns a copy of the column-pointer array.
func (m *CSC) ColPointers() []int { return append([]int(nil), m.colPtr...) }

// Values returns a copy of the value array.
func (m *CSC) Values() []float64 { return append([]float64(nil), m.values...) }

// ColNNZ returns the number of stored entries in column j, or ErrOutOfRange.
func (m *CSC) ColNNZ(j int) (int, error) {
	if j < 0 || j >= m.ncol {
		return 0, fmt.Errorf("%s.ColNNZ(%d): %w", ctxCSC, j, ErrOutOfRange)
	}

	return m.colPtr[j+1] - m.colPtr[j], nil
}

// Equal reports whether a and b have the same shape and the same stored
// entries in the same storage order. Two nil matrices are equal.
// Values compare with ==, except that NaN equals NaN, so a matrix built
// with WithNoValidateNaNInf is Equal to itself.
func Equal(a, b *CSC) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nrow != b.nrow || a.ncol != b.ncol || len(a.values) != len(b.values) {
		return false
	}
	for c := range a.colPtr {
		if a.colPtr[c] != b.colPtr[c] {
			return false
		}
	}
	for k := range a.values {
		if a.rowIdx[k] != b.rowIdx[k] || !sameValue(a.values[k], b.values[k]) {
			return false
		}
	}

	return true
}

func sameValue(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

// String renders a summary header followed by one "(row, col) value" line per
// stored entry in column-major order.
func (m *CSC) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d x %d sparse matrix (CSC), %d stored entries, density %.4g%%\n",
		m.nrow, m.ncol, len(m.values), 100*m.Density())
	for e := range m.All() {
		fmt.Fprintf(&b, "  (%d, %d) %g\n", e.Row, e.Col, e.Value)
	}

	return b.String()
}
