// SPDX-License-Identifier: MIT

package pricing

import (
	"golang.org/x/sync/errgroup"
)

// PutPrices prices a European put for every spot. out[i] corresponds to
// spots[i]; an empty input yields an empty, non-nil result.
//
// The whole call fails on the first invalid input (lowest index); no partial
// result is returned. Backend and worker count never change the values
// beyond floating-point rounding.
func PutPrices(spots []float64, p Params, opts ...Option) ([]float64, error) {
	return sequence("PutPrices", put, spots, p, opts)
}

// CallPrices is PutPrices for European calls.
func CallPrices(spots []float64, p Params, opts ...Option) ([]float64, error) {
	return sequence("CallPrices", call, spots, p, opts)
}

func sequence(tag string, k kind, spots []float64, p Params, opts []Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := p.validate(o.validateNaNInf); err != nil {
		return nil, pricingErrorf(tag, err)
	}
	if err := validateSpots(spots, o.validateNaNInf); err != nil {
		return nil, pricingErrorf(tag, err)
	}

	out := make([]float64, len(spots))
	if len(spots) == 0 {
		return out, nil
	}

	c := newCoeffs(p)
	run := kernelFor(o.backend)
	w := min(o.workers, len(spots))
	o.log.Debugw("pricing sequence",
		"op", tag, "n", len(spots), "backend", o.backend.String(), "workers", w)

	if w <= 1 {
		run(k, c, spots, out)
		return out, nil
	}

	// Contiguous chunks; each goroutine owns a disjoint window of out.
	chunk := (len(spots) + w - 1) / w
	var g errgroup.Group
	g.SetLimit(w)
	for lo := 0; lo < len(spots); lo += chunk {
		hi := min(lo+chunk, len(spots))
		g.Go(func() error {
			run(k, c, spots[lo:hi], out[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, pricingErrorf(tag, err)
	}

	return out, nil
}
