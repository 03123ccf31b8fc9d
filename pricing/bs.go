// SPDX-License-Identifier: MIT

package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Black–Scholes with a continuous dividend yield:
//
//	d1 = (ln(S/K) + (r - y + σ²/2)·t) / (σ·√t)
//	d2 = d1 - σ·√t
//	P  = Φ(-d2)·K·e^(-r·t) - S·e^(-y·t)·Φ(-d1)
//	C  = S·e^(-y·t)·Φ(d1) - K·e^(-r·t)·Φ(d2)
//
// Everything that does not depend on S is folded into coeffs once per call;
// the scalar kernel and all batch backends consume the same coeffs, so the
// formula exists in exactly one arrangement.

// kind selects the payoff side.
type kind int

const (
	put kind = iota
	call
)

// coeffs are the spot-independent terms of the formula.
type coeffs struct {
	strike float64 // K
	drift  float64 // (r - y + σ²/2)·t
	sdev   float64 // σ·√t
	kDisc  float64 // K·e^(-r·t)
	yDisc  float64 // e^(-y·t)
}

func newCoeffs(p Params) coeffs {
	return coeffs{
		strike: p.Strike,
		drift:  (p.Rate - p.Yield + 0.5*p.Vol*p.Vol) * p.Expiry,
		sdev:   p.Vol * math.Sqrt(p.Expiry),
		kDisc:  p.Strike * math.Exp(-p.Rate*p.Expiry),
		yDisc:  math.Exp(-p.Yield * p.Expiry),
	}
}

// normCDF is Φ, the standard normal CDF (erfc-based, accurate in the tails).
func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// d1d2 returns both standardized distances for spot s.
func (c coeffs) d1d2(s float64) (float64, float64) {
	d1 := (math.Log(s/c.strike) + c.drift) / c.sdev
	return d1, d1 - c.sdev
}

// combine assembles the option value from the spot and its distances.
func (c coeffs) combine(k kind, s, d1, d2 float64) float64 {
	if k == call {
		return floorZero(s*c.yDisc*normCDF(d1) - c.kDisc*normCDF(d2))
	}

	return floorZero(normCDF(-d2)*c.kDisc - s*c.yDisc*normCDF(-d1))
}

// floorZero clamps the rounding residue of the final subtraction, which can
// go a few ulps below zero far out of the money. NaN passes through.
func floorZero(v float64) float64 {
	return max(0, v)
}

// value is the scalar kernel.
func (c coeffs) value(k kind, s float64) float64 {
	d1, d2 := c.d1d2(s)
	return c.combine(k, s, d1, d2)
}

// Put returns the Black–Scholes value of a European put for one spot.
// Errors: ErrInvalidArgument (and its specific sentinels) for a
// non-positive strike, expiry, volatility or spot, or non-finite inputs.
func Put(spot float64, p Params, opts ...Option) (float64, error) {
	return single("Put", put, spot, p, opts)
}

// Call returns the Black–Scholes value of a European call for one spot.
// Together with Put it satisfies C - P = S·e^(-y·t) - K·e^(-r·t).
func Call(spot float64, p Params, opts ...Option) (float64, error) {
	return single("Call", call, spot, p, opts)
}

func single(tag string, k kind, spot float64, p Params, opts []Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := p.validate(o.validateNaNInf); err != nil {
		return 0, pricingErrorf(tag, err)
	}
	if err := validateSpot(spot, o.validateNaNInf); err != nil {
		return 0, pricingErrorf(tag, err)
	}

	return newCoeffs(p).value(k, spot), nil
}

// Vega returns ∂V/∂σ, identical for puts and calls:
// S·e^(-y·t)·φ(d1)·√t. It uses the same validation as Put.
func Vega(spot float64, p Params, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := p.validate(o.validateNaNInf); err != nil {
		return 0, pricingErrorf("Vega", err)
	}
	if err := validateSpot(spot, o.validateNaNInf); err != nil {
		return 0, pricingErrorf("Vega", err)
	}
	c := newCoeffs(p)
	d1, _ := c.d1d2(spot)

	return spot * c.yDisc * distuv.UnitNormal.Prob(d1) * math.Sqrt(p.Expiry), nil
}

// Parity returns S·e^(-y·t) - K·e^(-r·t), the value C - P must equal.
func Parity(spot float64, p Params) float64 {
	c := newCoeffs(p)
	return spot*c.yDisc - c.kDisc
}
