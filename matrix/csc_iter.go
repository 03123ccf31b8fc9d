// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
)

// All returns a lazy sequence of every stored entry in column-major storage
// order. The sequence is finite and restartable: each range over it starts
// again from the first column. Breaking out of the loop stops iteration.
//
// Complexity: O(1) to create, O(ncol + nnz) to drain.
func (m *CSC) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for c := 0; c < m.ncol; c++ {
			for k := m.colPtr[c]; k < m.colPtr[c+1]; k++ {
				if !yield(Entry{Row: m.rowIdx[k], Col: c, Value: m.values[k]}) {
					return
				}
			}
		}
	}
}

// Column returns the (row, value) pairs stored in column j, in storage order.
// Errors: ErrOutOfRange when j is not a valid column.
func (m *CSC) Column(j int) (iter.Seq2[int, float64], error) {
	if j < 0 || j >= m.ncol {
		return nil, fmt.Errorf("%s.Column(%d): %w", ctxCSC, j, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return func(yield func(int, float64) bool) {
		for k := lo; k < hi; k++ {
			if !yield(m.rowIdx[k], m.values[k]) {
				return
			}
		}
	}, nil
}

// Triplets materializes All() into a slice (the "summary" view of the matrix).
func (m *CSC) Triplets() []Entry {
	out := make([]Entry, 0, len(m.values))
	for e := range m.All() {
		out = append(out, e)
	}

	return out
}
