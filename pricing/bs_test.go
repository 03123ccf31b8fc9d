// SPDX-License-Identifier: MIT
// Package pricing_test contains unit tests for the Black–Scholes kernels.
package pricing_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/pricing"
	"github.com/stretchr/testify/require"
)

// blog is the market used throughout the worked examples.
var blog = pricing.Params{Strike: 60, Rate: 0.01, Yield: 0.02, Expiry: 1, Vol: 0.05}

var (
	blogSpots = []float64{55, 56, 57, 58, 59, 60}
	blogPuts  = []float64{5.52021, 4.58142, 3.68485, 2.85517, 2.11883, 1.49793}
)

// TestPut_KnownValue checks the single-spot reference value.
func TestPut_KnownValue(t *testing.T) {
	v, err := pricing.Put(55, blog)
	require.NoError(t, err)
	require.InDelta(t, 5.52021, v, 1e-4)
	require.InDelta(t, 5.520212424023022, v, 1e-10)
}

// TestPutCall_Reference checks the textbook S=K=100, r=5%, σ=20%, t=1 case.
func TestPutCall_Reference(t *testing.T) {
	p := pricing.Params{Strike: 100, Rate: 0.05, Expiry: 1, Vol: 0.2}

	c, err := pricing.Call(100, p)
	require.NoError(t, err)
	require.InDelta(t, 10.450583572185565, c, 1e-9)

	v, err := pricing.Put(100, p)
	require.NoError(t, err)
	require.InDelta(t, 5.573526022256971, v, 1e-9)
}

// TestPutCallParity checks C - P = S·e^(-y·t) - K·e^(-r·t) over a range of markets.
func TestPutCallParity(t *testing.T) {
	markets := []pricing.Params{
		blog,
		{Strike: 100, Rate: 0.03, Yield: 0, Expiry: 45.0 / 365.0, Vol: 0.25},
		{Strike: 10, Rate: -0.005, Yield: 0.04, Expiry: 3, Vol: 0.8},
	}
	for _, p := range markets {
		for _, s := range []float64{0.5 * p.Strike, p.Strike, 1.7 * p.Strike} {
			c, err := pricing.Call(s, p)
			require.NoError(t, err)
			v, err := pricing.Put(s, p)
			require.NoError(t, err)
			require.InDelta(t, pricing.Parity(s, p), c-v, 1e-10)
		}
	}
}

// TestPut_NonNegativeAndMonotone checks V >= 0 and that puts lose value as spot rises.
func TestPut_NonNegativeAndMonotone(t *testing.T) {
	prev := math.Inf(1)
	for s := 1.0; s <= 75; s += 0.5 {
		v, err := pricing.Put(s, blog)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, prev)
		prev = v
	}
}

// TestPricesNonNegative_Tails sweeps low and high volatility, short and long
// expiries and deep in/out-of-the-money spots for both kinds on every
// backend. Far from the strike the final subtraction cancels to a few ulps,
// which must never come out negative. Puts never rise and calls never fall
// as spot increases.
func TestPricesNonNegative_Tails(t *testing.T) {
	spots := make([]float64, 0, 600)
	for s := 1.0; s <= 220; s += 0.37 {
		spots = append(spots, s)
	}
	const slack = 1e-12

	for _, rate := range []float64{0.01, 0.05} {
		for _, yield := range []float64{0, 0.02} {
			for _, vol := range []float64{0.01, 0.05, 0.2, 0.8} {
				for _, expiry := range []float64{0.01, 1, 10, 50} {
					p := pricing.Params{Strike: 60, Rate: rate, Yield: yield, Expiry: expiry, Vol: vol}
					for _, b := range backends {
						puts, err := pricing.PutPrices(spots, p, pricing.WithBackend(b))
						require.NoError(t, err)
						calls, err := pricing.CallPrices(spots, p, pricing.WithBackend(b))
						require.NoError(t, err)

						for i, s := range spots {
							require.GreaterOrEqual(t, puts[i], 0.0, "put %s s=%g %+v", b, s, p)
							require.GreaterOrEqual(t, calls[i], 0.0, "call %s s=%g %+v", b, s, p)
							if i > 0 {
								require.LessOrEqual(t, puts[i], puts[i-1]+slack, "put %s s=%g %+v", b, s, p)
								require.GreaterOrEqual(t, calls[i], calls[i-1]-slack, "call %s s=%g %+v", b, s, p)
							}
						}
					}
				}
			}
		}
	}

	// scalar entry points share the clamp
	p := pricing.Params{Strike: 60, Rate: 0.05, Expiry: 10, Vol: 0.01}
	v, err := pricing.Put(122.36, p)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 0.0)

	p = pricing.Params{Strike: 60, Rate: 0.05, Expiry: 1, Vol: 0.05}
	v, err = pricing.Call(8.4, p)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 0.0)
}

// TestVega_FiniteDifference compares Vega with a central difference in σ.
func TestVega_FiniteDifference(t *testing.T) {
	const h = 1e-5
	up, down := blog, blog
	up.Vol += h
	down.Vol -= h

	pu, err := pricing.Put(58, up)
	require.NoError(t, err)
	pd, err := pricing.Put(58, down)
	require.NoError(t, err)

	vega, err := pricing.Vega(58, blog)
	require.NoError(t, err)
	require.Greater(t, vega, 0.0)
	require.InDelta(t, (pu-pd)/(2*h), vega, 1e-5)
}

// TestPut_Errors walks each invalid-argument condition.
func TestPut_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spot    float64
		mutate  func(p *pricing.Params)
		wantErr error
	}{
		{"zero strike", 55, func(p *pricing.Params) { p.Strike = 0 }, pricing.ErrNonPositiveStrike},
		{"negative strike", 55, func(p *pricing.Params) { p.Strike = -1 }, pricing.ErrNonPositiveStrike},
		{"zero expiry", 55, func(p *pricing.Params) { p.Expiry = 0 }, pricing.ErrNonPositiveExpiry},
		{"zero vol", 55, func(p *pricing.Params) { p.Vol = 0 }, pricing.ErrNonPositiveVol},
		{"zero spot", 0, func(*pricing.Params) {}, pricing.ErrNonPositiveSpot},
		{"negative spot", -3, func(*pricing.Params) {}, pricing.ErrNonPositiveSpot},
		{"NaN spot", math.NaN(), func(*pricing.Params) {}, pricing.ErrNaNInf},
		{"Inf rate", 55, func(p *pricing.Params) { p.Rate = math.Inf(1) }, pricing.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := blog
			tc.mutate(&p)

			_, err := pricing.Put(tc.spot, p)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, pricing.ErrInvalidArgument)

			_, err = pricing.Call(tc.spot, p)
			require.ErrorIs(t, err, tc.wantErr)

			_, err = pricing.Vega(tc.spot, p)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestParams_Validate covers the exported validator.
func TestParams_Validate(t *testing.T) {
	require.NoError(t, blog.Validate())

	p := blog
	p.Rate, p.Yield = -0.02, -0.01 // rates may be negative
	require.NoError(t, p.Validate())

	p.Vol = math.NaN()
	require.ErrorIs(t, p.Validate(), pricing.ErrNaNInf)
}

// TestPut_NaNPropagatesWhenRelaxed checks the opt-out of the finite policy.
func TestPut_NaNPropagatesWhenRelaxed(t *testing.T) {
	v, err := pricing.Put(math.NaN(), blog, pricing.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	// Sign checks still apply.
	_, err = pricing.Put(-1, blog, pricing.WithNoValidateNaNInf())
	require.ErrorIs(t, err, pricing.ErrNonPositiveSpot)
}
