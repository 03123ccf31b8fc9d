// Package lvnum is a small numerical toolkit: closed-form option pricing
// and a validating importer for compressed sparse column matrices.
//
// 🚀 What is inside?
//
//	• pricing/  – Black–Scholes European puts and calls with a continuous
//	              dividend yield, for one spot or a whole ladder of spots.
//	              Three interchangeable backends (scalar, batch, gonum)
//	              return the same values; a ladder can be split across
//	              workers.
//	• matrix/   – CSC import (rowIdx, colPtr, values, dims) with ordered
//	              validation, NNZ / Density, restartable column-major
//	              iteration and conversion to dense and gonum matrices.
//	• cmd/bsput – command-line front end: YAML scenario, quote table,
//	              optional put-curve plot.
//
// Quick example:
//
//	p := pricing.Params{Strike: 60, Rate: 0.01, Yield: 0.02, Expiry: 1, Vol: 0.05}
//	v, _ := pricing.Put(55, p) // 5.520212...
//
//	m, _ := matrix.NewCSC(8, 10, rowIdx, colPtr, values)
//	for e := range m.All() { fmt.Println(e.Row, e.Col, e.Value) }
//
//	go get github.com/katalvlaran/lvnum
package lvnum
