// SPDX-License-Identifier: MIT

// Package pricing: functional configuration.
//
// Design goals:
//   - Backend choice and parallelism are performance concerns only: every
//     combination yields the same values up to floating-point rounding.
//   - Option constructors panic only on nonsensical values (programmer error).
package pricing

import (
	"fmt"

	"go.uber.org/zap"
)

// Backend selects how a sequence of spots is evaluated.
type Backend int

const (
	// BackendScalar evaluates the scalar kernel once per spot.
	BackendScalar Backend = iota
	// BackendBatch runs staged element-wise passes over contiguous buffers.
	BackendBatch
	// BackendGonum expresses the passes with gonum's floats and mat packages.
	BackendGonum
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case BackendScalar:
		return "scalar"
	case BackendBatch:
		return "batch"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps "scalar", "batch" or "gonum" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "scalar":
		return BackendScalar, nil
	case "batch", "":
		return BackendBatch, nil
	case "gonum":
		return BackendGonum, nil
	}

	return 0, fmt.Errorf("pricing: unknown backend %q: %w", s, ErrInvalidArgument)
}

// Defaults (single source of truth).
const (
	DefaultBackend        = BackendBatch
	DefaultWorkers        = 1
	DefaultValidateNaNInf = true
)

const (
	panicBackendInvalid = "pricing: WithBackend: unknown backend"
	panicWorkersInvalid = "pricing: WithWorkers: workers must be >= 1"
	panicLoggerNil      = "pricing: WithLogger: logger must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	backend        Backend
	workers        int
	validateNaNInf bool
	log            *zap.SugaredLogger
}

// WithBackend selects the evaluation backend for sequence calls.
func WithBackend(b Backend) Option {
	if b < BackendScalar || b > BackendGonum {
		panic(panicBackendInvalid)
	}

	return func(o *Options) { o.backend = b }
}

// WithWorkers prices contiguous chunks of the spot sequence on up to n
// goroutines. n == 1 is sequential.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger attaches a logger; the package logs at Debug level only.
func WithLogger(l *zap.SugaredLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

// WithNoValidateNaNInf lets NaN and ±Inf inputs propagate through the
// formula instead of failing with ErrNaNInf. Sign checks still apply.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		backend:        DefaultBackend,
		workers:        DefaultWorkers,
		validateNaNInf: DefaultValidateNaNInf,
		log:            zap.NewNop().Sugar(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
