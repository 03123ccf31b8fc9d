// SPDX-License-Identifier: MIT

// Package matrix - CSC conversions into dense and linear-algebra backends.
//
// Purpose:
//   - ToDense materializes into this package's row-major Dense.
//   - ToGonum / GonumView hand the matrix to gonum's mat package, the
//     linear-algebra library the pricing backends also use.
//   - MulVec is the one arithmetic kernel the importer needs for checks.
//
// Duplicate (row, col) entries are summed by every conversion.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense materializes the matrix into a row-major Dense.
// Errors: ErrInvalidDimensions when rows*cols overflows or exceeds MaxDenseCells.
// Complexity: O(r*c + nnz) time, O(r*c) space.
func (m *CSC) ToDense() (*Dense, error) {
	d, err := newDense(m.nrow, m.ncol)
	if err != nil {
		return nil, fmt.Errorf("%s.ToDense: %w", ctxCSC, err)
	}
	for e := range m.All() {
		d.data[e.Row*d.c+e.Col] += e.Value
	}

	return d, nil
}

// ToGonum materializes the matrix into a gonum *mat.Dense.
// gonum forbids zero-sized dense matrices, so an empty shape yields
// ErrInvalidDimensions.
func (m *CSC) ToGonum() (*mat.Dense, error) {
	if m.nrow == 0 || m.ncol == 0 {
		return nil, fmt.Errorf("%s.ToGonum: %w", ctxCSC, ErrInvalidDimensions)
	}
	n, err := denseCells(m.nrow, m.ncol)
	if err != nil {
		return nil, fmt.Errorf("%s.ToGonum: %w", ctxCSC, err)
	}
	buf := make([]float64, n)
	for e := range m.All() {
		buf[e.Row*m.ncol+e.Col] += e.Value
	}

	return mat.NewDense(m.nrow, m.ncol, buf), nil
}

// MulVec computes y = A·x without densifying A.
// Errors: ErrDimensionMismatch when len(x) != Cols(); ErrInvalidDimensions
// when Rows() exceeds MaxDenseCells.
// Complexity: O(ncol + nnz).
func (m *CSC) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.ncol); err != nil {
		return nil, fmt.Errorf("%s.MulVec: %w", ctxCSC, err)
	}
	if m.nrow > MaxDenseCells {
		return nil, fmt.Errorf("%s.MulVec: %d rows exceed %d: %w", ctxCSC, m.nrow, MaxDenseCells, ErrInvalidDimensions)
	}
	y := make([]float64, m.nrow)
	for c := 0; c < m.ncol; c++ {
		xc := x[c]
		for k := m.colPtr[c]; k < m.colPtr[c+1]; k++ {
			y[m.rowIdx[k]] += m.values[k] * xc
		}
	}

	return y, nil
}

// GonumView returns a read-only, no-copy mat.Matrix over the CSC storage.
// Following gonum's contract, At on the view panics for invalid indices.
func (m *CSC) GonumView() mat.Matrix {
	return cscView{m: m}
}

// cscView adapts *CSC to gonum's mat.Matrix.
type cscView struct{ m *CSC }

// Dims returns the shape.
func (v cscView) Dims() (r, c int) { return v.m.nrow, v.m.ncol }

// At returns the element at (i, j), panicking like gonum types on bad indices.
func (v cscView) At(i, j int) float64 {
	if i < 0 || i >= v.m.nrow {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= v.m.ncol {
		panic(mat.ErrColAccess)
	}
	x, _ := v.m.At(i, j) // bounds already checked

	return x
}

// T returns the implicit transpose.
func (v cscView) T() mat.Matrix { return mat.Transpose{Matrix: v} }
