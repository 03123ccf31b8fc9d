// SPDX-License-Identifier: MIT

package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quote rounds a model value to places decimal digits (half away from zero)
// for display. NaN and ±Inf cannot be represented and yield ErrNonFiniteQuote.
func Quote(v float64, places int32) (decimal.Decimal, error) {
	if isNonFinite(v) {
		return decimal.Zero, fmt.Errorf("Quote(%g): %w", v, ErrNonFiniteQuote)
	}

	return decimal.NewFromFloat(v).Round(places), nil
}

// QuoteAll applies Quote element-wise.
func QuoteAll(vs []float64, places int32) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		q, err := Quote(v, places)
		if err != nil {
			return nil, fmt.Errorf("QuoteAll[%d]: %w", i, err)
		}
		out[i] = q
	}

	return out, nil
}
