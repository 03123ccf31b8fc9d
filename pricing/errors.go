// SPDX-License-Identifier: MIT
// Package pricing: sentinel error set.
// Every specific sentinel wraps ErrInvalidArgument, so callers may match the
// class (errors.Is(err, ErrInvalidArgument)) or the exact invariant.

package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the umbrella for rejected pricing inputs.
	ErrInvalidArgument = errors.New("pricing: invalid argument")

	// ErrNonPositiveStrike: strike K <= 0.
	ErrNonPositiveStrike = fmt.Errorf("%w: strike must be > 0", ErrInvalidArgument)

	// ErrNonPositiveExpiry: time to expiry t <= 0.
	ErrNonPositiveExpiry = fmt.Errorf("%w: time to expiry must be > 0", ErrInvalidArgument)

	// ErrNonPositiveVol: volatility σ <= 0.
	ErrNonPositiveVol = fmt.Errorf("%w: volatility must be > 0", ErrInvalidArgument)

	// ErrNonPositiveSpot: a spot price S <= 0.
	ErrNonPositiveSpot = fmt.Errorf("%w: spot price must be > 0", ErrInvalidArgument)

	// ErrNaNInf: a NaN or ±Inf input under the default numeric policy.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidArgument)

	// ErrNonFiniteQuote: Quote was asked to render NaN or ±Inf.
	ErrNonFiniteQuote = errors.New("pricing: cannot quote a non-finite value")
)

// pricingErrorf wraps an underlying error with the given operation tag.
func pricingErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
