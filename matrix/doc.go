// Package matrix imports sparse matrices stored in compressed sparse column
// (CSC) form and provides a small dense companion type.
//
// The matrix package provides:
//
//   - NewCSC, which validates the (rowIdx, colPtr, values, nrow, ncol)
//     quadruple in a fixed order and takes private copies of the buffers.
//     Malformed arrays yield ErrInvalidFormat together with a specific
//     cause (ErrColPtrLength, ErrColPtrStart, ErrColPtrNotMonotonic,
//     ErrNNZMismatch, ErrRowsNotSorted); row indices outside [0, nrow)
//     yield ErrOutOfRange.
//   - Read-only queries: Shape, NNZ, Density, At, ColNNZ.
//   - Lazy column-major traversal via All and Column (Go 1.23 iterators).
//     Each range over the sequence starts afresh, so traversal is
//     restartable and stops early without side effects.
//   - Conversions: ToDense, ToGonum, GonumView and MulVec.
//   - Dense, the read-only row-major result of ToDense. Dense shapes are
//     capped by MaxDenseCells; larger or overflowing shapes yield
//     ErrInvalidDimensions.
//
// Empty shapes (0 x n, n x 0) are legal CSC matrices with Density 0.
// Duplicate (row, col) entries are kept as stored and summed by At,
// ToDense and MulVec.
//
// Options:
//
//   - WithSortedCheck: reject columns whose row indices are not strictly
//     increasing.
//   - WithNoValidateNaNInf: accept NaN/±Inf among the stored values.
//
// See example_test.go for usage patterns.
package matrix
