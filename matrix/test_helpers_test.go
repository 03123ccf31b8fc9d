// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the CSC importer and Dense.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// Worked example: an 8×10 matrix with seven nonzeros 7, 14, …, 49, stored in
// column-major order (rows sorted within each column). Column 8 holds two
// entries; columns 0, 2, 3, 4 are empty.
var (
	exRows   = 8
	exCols   = 10
	exRowIdx = []int{0, 3, 4, 5, 2, 6, 7}
	exColPtr = []int{0, 0, 1, 1, 1, 1, 2, 3, 4, 6, 7}
	exValues = []float64{7, 21, 28, 35, 14, 42, 49}

	exTriplets = []matrix.Entry{
		{Row: 0, Col: 1, Value: 7},
		{Row: 3, Col: 5, Value: 21},
		{Row: 4, Col: 6, Value: 28},
		{Row: 5, Col: 7, Value: 35},
		{Row: 2, Col: 8, Value: 14},
		{Row: 6, Col: 8, Value: 42},
		{Row: 7, Col: 9, Value: 49},
	}
)

// MustCSC builds the worked example or fails the test.
func MustCSC(t testing.TB) *matrix.CSC {
	t.Helper()
	m, err := matrix.NewCSC(exRows, exCols, exRowIdx, exColPtr, exValues)
	require.NoError(t, err)

	return m
}

// MustDense BUILDS a CSC from the given arrays and materializes it, or fails the test.
func MustDense(t testing.TB, r, c int, rowIdx, colPtr []int, values []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewCSC(r, c, rowIdx, colPtr, values)
	require.NoError(t, err)
	d, err := m.ToDense()
	require.NoError(t, err)

	return d
}

// collect drains a CSC's All() sequence into a slice.
func collect(m *matrix.CSC) []matrix.Entry {
	var out []matrix.Entry
	for e := range m.All() {
		out = append(out, e)
	}

	return out
}
