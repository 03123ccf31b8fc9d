// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the CSC importer and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultSortedCheck toggles the strictly-increasing-rows-per-column check in NewCSC.
	// Compressed-sparse-column producers customarily sort rows, but the format
	// itself does not require it, so the check is off by default.
	DefaultSortedCheck = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	sortedCheck    bool // DefaultSortedCheck
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// NewCSC then stores non-finite values as given, and ToDense, ToGonum and
// MulVec carry them through.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSortedCheck makes NewCSC reject columns whose row indices are not
// strictly increasing (ErrInvalidFormat + ErrRowsNotSorted). It also rules
// out duplicate (row, col) pairs.
func WithSortedCheck() Option {
	return func(o *Options) { o.sortedCheck = true }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in constructors.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		sortedCheck:    DefaultSortedCheck,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
