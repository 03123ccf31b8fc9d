// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. No constructor should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in option setters.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Format violations are reported as a pair:
// the umbrella ErrInvalidFormat plus the specific invariant that broke, so
// callers may match either one with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// dimensions -> pointer length -> pointer start -> pointer monotonicity
// -> nnz agreement -> row range -> row order (opt-in) -> NaN/Inf policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are invalid
	// (non-positive for Dense, negative for CSC).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and the CSC importer MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec with len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidFormat is the umbrella for compressed-sparse-column layout
	// violations. It is always joined with one of the specific errors below.
	ErrInvalidFormat = errors.New("matrix: invalid compressed-sparse-column format")

	// ErrColPtrLength: len(colPtr) != ncol+1.
	ErrColPtrLength = errors.New("matrix: column pointer length must be ncol+1")

	// ErrColPtrStart: colPtr[0] != 0.
	ErrColPtrStart = errors.New("matrix: column pointer must start at 0")

	// ErrColPtrNotMonotonic: colPtr[c] > colPtr[c+1] for some c.
	ErrColPtrNotMonotonic = errors.New("matrix: column pointer is not non-decreasing")

	// ErrNNZMismatch: colPtr[ncol], len(rowIdx) and len(values) disagree.
	ErrNNZMismatch = errors.New("matrix: nonzero count mismatch between pointer, index and value arrays")

	// ErrRowsNotSorted: rows inside a column are not strictly increasing
	// (checked only under WithSortedCheck).
	ErrRowsNotSorted = errors.New("matrix: row indices not strictly increasing within column")
)

// formatError joins the umbrella format error with the specific invariant and
// the position where it was detected.
func formatError(tag string, pos int, specific error) error {
	return fmt.Errorf("%s[%d]: %w: %w", tag, pos, ErrInvalidFormat, specific)
}
