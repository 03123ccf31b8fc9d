// SPDX-License-Identifier: MIT

package pricing

import (
	"fmt"
	"math"
)

// Params holds the market inputs shared by every spot in a pricing call.
// Rate and Yield are continuously compounded annual rates and may take any
// finite sign; Expiry is in years; Vol is the annualised volatility.
type Params struct {
	Strike float64 // K > 0
	Rate   float64 // risk-free rate r
	Yield  float64 // continuous dividend yield y
	Expiry float64 // time to expiry t > 0, in years
	Vol    float64 // volatility σ > 0
}

// Validate checks Params under the default numeric policy.
func (p Params) Validate() error {
	return p.validate(true)
}

// validate checks finiteness (when requested) and then the sign constraints.
// NaN never satisfies "<= 0", so with the policy off NaN passes through and
// propagates into the result.
func (p Params) validate(finite bool) error {
	if finite {
		for _, v := range [...]float64{p.Strike, p.Rate, p.Yield, p.Expiry, p.Vol} {
			if isNonFinite(v) {
				return ErrNaNInf
			}
		}
	}
	switch {
	case p.Strike <= 0:
		return ErrNonPositiveStrike
	case p.Expiry <= 0:
		return ErrNonPositiveExpiry
	case p.Vol <= 0:
		return ErrNonPositiveVol
	}

	return nil
}

// validateSpots rejects the first invalid spot, naming its index.
func validateSpots(spots []float64, finite bool) error {
	for i, s := range spots {
		if err := validateSpot(s, finite); err != nil {
			return fmt.Errorf("spot[%d]=%g: %w", i, s, err)
		}
	}

	return nil
}

func validateSpot(s float64, finite bool) error {
	if finite && isNonFinite(s) {
		return ErrNaNInf
	}
	if s <= 0 {
		return ErrNonPositiveSpot
	}

	return nil
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
