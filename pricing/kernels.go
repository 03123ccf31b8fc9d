// SPDX-License-Identifier: MIT
// Package: pricing
//
// Purpose:
//   - Provide the three sequence backends as kernels with one signature:
//     kernel(kind, coeffs, spots, out) fills out[i] for spots[i].
//   - Keep all loops deterministic (flat 0..n-1) over contiguous buffers.
//
// Each kernel writes only into out, so disjoint windows of one output slice
// may be filled concurrently.

package pricing

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type kernel func(k kind, c coeffs, spots, out []float64)

func kernelFor(b Backend) kernel {
	switch b {
	case BackendScalar:
		return scalarKernel
	case BackendGonum:
		return gonumKernel
	default:
		return batchKernel
	}
}

// scalarKernel evaluates the scalar formula once per element.
func scalarKernel(k kind, c coeffs, spots, out []float64) {
	for i, s := range spots {
		out[i] = c.value(k, s)
	}
}

// batchKernel runs the formula as staged element-wise passes:
// log-moneyness → d1 → d2 → Φ → combine. Arithmetic matches the scalar
// kernel term for term.
func batchKernel(k kind, c coeffs, spots, out []float64) {
	n := len(spots)
	d1 := make([]float64, n)
	d2 := make([]float64, n)

	ewLogRatio(d1, spots, c.strike)
	ewShiftDiv(d1, c.drift, c.sdev)
	ewSubConst(d2, d1, c.sdev)

	if k == call {
		ewNormCDF(d1, d1, false)
		ewNormCDF(d2, d2, false)
		for i, s := range spots {
			out[i] = floorZero(s*c.yDisc*d1[i] - c.kDisc*d2[i])
		}
		return
	}
	ewNormCDF(d1, d1, true)
	ewNormCDF(d2, d2, true)
	for i, s := range spots {
		out[i] = floorZero(d2[i]*c.kDisc - s*c.yDisc*d1[i])
	}
}

// ewLogRatio computes dst[i] = ln(src[i]/den).
func ewLogRatio(dst, src []float64, den float64) {
	for i, v := range src {
		dst[i] = math.Log(v / den)
	}
}

// ewShiftDiv computes x[i] = (x[i] + shift) / div in place.
func ewShiftDiv(x []float64, shift, div float64) {
	for i := range x {
		x[i] = (x[i] + shift) / div
	}
}

// ewSubConst computes dst[i] = src[i] - c.
func ewSubConst(dst, src []float64, c float64) {
	for i, v := range src {
		dst[i] = v - c
	}
}

// ewNormCDF computes dst[i] = Φ(±src[i]); neg selects Φ(-x).
func ewNormCDF(dst, src []float64, neg bool) {
	for i, v := range src {
		if neg {
			v = -v
		}
		dst[i] = normCDF(v)
	}
}

// gonumKernel expresses the same passes with gonum's floats and mat
// packages (the linear-algebra library backend). Results agree with the
// scalar kernel up to rounding (scaling by 1/σ√t instead of dividing).
func gonumKernel(k kind, c coeffs, spots, out []float64) {
	n := len(spots)
	strikes := make([]float64, n)
	for i := range strikes {
		strikes[i] = c.strike
	}

	d1 := make([]float64, n)
	floats.DivTo(d1, spots, strikes)
	for i, v := range d1 {
		d1[i] = math.Log(v)
	}
	floats.AddConst(c.drift, d1)
	floats.Scale(1/c.sdev, d1)

	d2 := make([]float64, n)
	copy(d2, d1)
	floats.AddConst(-c.sdev, d2)

	neg := k == put
	ewNormCDF(d1, d1, neg)
	ewNormCDF(d2, d2, neg)

	// s∘Φ(±d1), then the final linear combination.
	var sPhi mat.VecDense
	sPhi.MulElemVec(mat.NewVecDense(n, spots), mat.NewVecDense(n, d1))
	phi2 := mat.NewVecDense(n, d2)

	res := mat.NewVecDense(n, out)
	if k == call {
		var lhs mat.VecDense
		lhs.ScaleVec(c.yDisc, &sPhi)
		res.AddScaledVec(&lhs, -c.kDisc, phi2)
	} else {
		var lhs mat.VecDense
		lhs.ScaleVec(c.kDisc, phi2)
		res.AddScaledVec(&lhs, -c.yDisc, &sPhi)
	}
	for i, v := range res.RawVector().Data {
		out[i] = floorZero(v)
	}
}
