// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvnum/pricing"
)

const curvePoints = 200

// curveRange picks the spot interval to draw: the scenario's spots when they
// span a range, otherwise ±25% around the strike.
func curveRange(sc scenario) (lo, hi float64) {
	if len(sc.Spots) >= 2 {
		lo, hi = slices.Min(sc.Spots), slices.Max(sc.Spots)
		if hi > lo {
			return lo, hi
		}
	}

	return 0.75 * sc.Strike, 1.25 * sc.Strike
}

// putCurve samples the put value on an even grid over the curve range.
func putCurve(sc scenario, opts []pricing.Option) (plotter.XYs, error) {
	lo, hi := curveRange(sc)
	xs := make([]float64, curvePoints)
	step := (hi - lo) / float64(curvePoints-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	ys, err := pricing.PutPrices(xs, sc.params(), opts...)
	if err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, curvePoints)
	for i := range pts {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	return pts, nil
}

// savePutCurve draws the put value against spot and saves it to path.
// The image format follows the file extension.
func savePutCurve(path string, sc scenario, opts []pricing.Option) error {
	pts, err := putCurve(sc, opts)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("European put, K=%g t=%g σ=%g", sc.Strike, sc.Expiry, sc.Vol)
	p.X.Label.Text = "spot"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	if len(sc.Spots) > 0 {
		ys, err := pricing.PutPrices(sc.Spots, sc.params(), opts...)
		if err != nil {
			return err
		}
		marks := make(plotter.XYs, len(sc.Spots))
		for i, s := range sc.Spots {
			marks[i].X, marks[i].Y = s, ys[i]
		}
		scatter, err := plotter.NewScatter(marks)
		if err != nil {
			return err
		}
		p.Add(scatter)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
