// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and CSC storage.
// This file intentionally contains ONLY domain-facing types (interfaces and
// the iteration triple). Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Reader is the read-only view every storage layout in this package offers.
// Both *Dense and *CSC satisfy it, so display and comparison helpers can be
// written once.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for Dense and
// O(log k) or O(k) for CSC, where k is the number of entries in the column.
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Entry is one stored nonzero: zero-based row, zero-based column and value.
// CSC iteration yields entries in column-major storage order.
type Entry struct {
	Row   int     // zero-based row index
	Col   int     // zero-based column index
	Value float64 // stored value (may be 0 if the caller stored an explicit zero)
}
