// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors minimal by delegating shape/pointer/index checks here.
//  - Each compressed-sparse-column check reports the first offending position.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Pointer and index checks are single O(ncol) / O(nnz) passes.
//
// Note:
//  - ValidateCSC runs the checks in the documented error priority
//    (see errors.go) so a malformed input always reports the same error.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateColPtr checks the column-pointer array of an ncol-column matrix
// holding nnz stored entries:
//   - len(colPtr) == ncol+1            (ErrColPtrLength)
//   - colPtr[0] == 0                   (ErrColPtrStart)
//   - colPtr[c] <= colPtr[c+1]         (ErrColPtrNotMonotonic)
//   - colPtr[ncol] == nnz              (ErrNNZMismatch)
//
// Every failure is joined with ErrInvalidFormat.
// Complexity: O(ncol).
func ValidateColPtr(colPtr []int, ncol, nnz int) error {
	if len(colPtr) != ncol+1 {
		return formatError("ValidateColPtr: len", len(colPtr), ErrColPtrLength)
	}
	if colPtr[0] != 0 {
		return formatError("ValidateColPtr: start", 0, ErrColPtrStart)
	}
	for c := 0; c < ncol; c++ {
		if colPtr[c] > colPtr[c+1] {
			return formatError("ValidateColPtr: col", c, ErrColPtrNotMonotonic)
		}
	}
	if colPtr[ncol] != nnz {
		return formatError("ValidateColPtr: end", ncol, ErrNNZMismatch)
	}

	return nil
}

// ValidateRowIndex checks that every row index lies in [0, nrow).
// Returns ErrOutOfRange naming the first offending storage position.
// Complexity: O(nnz).
func ValidateRowIndex(rowIdx []int, nrow int) error {
	for k, r := range rowIdx {
		if r < 0 || r >= nrow {
			return fmt.Errorf("ValidateRowIndex[%d]: row %d not in [0,%d): %w", k, r, nrow, ErrOutOfRange)
		}
	}

	return nil
}

// ValidateRowsSorted checks that rows are strictly increasing inside every
// column. Assumes colPtr already passed ValidateColPtr.
// Complexity: O(nnz).
func ValidateRowsSorted(rowIdx, colPtr []int) error {
	for c := 0; c+1 < len(colPtr); c++ {
		for k := colPtr[c] + 1; k < colPtr[c+1]; k++ {
			if rowIdx[k-1] >= rowIdx[k] {
				return formatError("ValidateRowsSorted: col", c, ErrRowsNotSorted)
			}
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf values with ErrNaNInf.
// Complexity: O(n).
func ValidateFinite(values []float64) error {
	for k, v := range values {
		if isNonFinite(v) {
			return fmt.Errorf("ValidateFinite[%d]: %w", k, ErrNaNInf)
		}
	}

	return nil
}

// ValidateCSC is the composite check used by NewCSC. Order:
// dimensions → colPtr (length/start/monotonic) → array lengths → nnz
// agreement → row range → optional row order → optional finiteness.
func ValidateCSC(nrow, ncol int, rowIdx, colPtr []int, values []float64, opts Options) error {
	if nrow < 0 || ncol < 0 {
		return validatorErrorf("ValidateCSC", ErrInvalidDimensions)
	}
	if len(rowIdx) != len(values) {
		// Checked before the pointer end so that colPtr[ncol] can be
		// compared against a single, agreed nnz.
		if err := ValidateColPtr(colPtr, ncol, colPtrEnd(colPtr)); err != nil {
			return validatorErrorf("ValidateCSC", err)
		}

		return validatorErrorf("ValidateCSC", formatError("len(rowIdx)", len(rowIdx), ErrNNZMismatch))
	}
	if err := ValidateColPtr(colPtr, ncol, len(values)); err != nil {
		return validatorErrorf("ValidateCSC", err)
	}
	if err := ValidateRowIndex(rowIdx, nrow); err != nil {
		return validatorErrorf("ValidateCSC", err)
	}
	if opts.sortedCheck {
		if err := ValidateRowsSorted(rowIdx, colPtr); err != nil {
			return validatorErrorf("ValidateCSC", err)
		}
	}
	if opts.validateNaNInf {
		if err := ValidateFinite(values); err != nil {
			return validatorErrorf("ValidateCSC", err)
		}
	}

	return nil
}

// colPtrEnd returns the last pointer or 0 for an empty slice; used only to
// run the structural pointer checks ahead of the nnz comparison.
func colPtrEnd(colPtr []int) int {
	if len(colPtr) == 0 {
		return 0
	}

	return colPtr[len(colPtr)-1]
}
