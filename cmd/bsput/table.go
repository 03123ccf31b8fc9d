// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/pricing"
)

// row is one line of the output table.
type row struct {
	Spot, Put, Call float64
}

// priceLadder prices puts and calls for every spot of the scenario.
func priceLadder(sc scenario, opts []pricing.Option) ([]row, error) {
	p := sc.params()
	puts, err := pricing.PutPrices(sc.Spots, p, opts...)
	if err != nil {
		return nil, err
	}
	calls, err := pricing.CallPrices(sc.Spots, p, opts...)
	if err != nil {
		return nil, err
	}

	rows := make([]row, len(sc.Spots))
	for i, s := range sc.Spots {
		rows[i] = row{Spot: s, Put: puts[i], Call: calls[i]}
	}

	return rows, nil
}

// writeTable renders rows with put and call quoted to places decimals.
func writeTable(w io.Writer, rows []row, places int32) error {
	puts := make([]float64, len(rows))
	calls := make([]float64, len(rows))
	for i, r := range rows {
		puts[i], calls[i] = r.Put, r.Call
	}
	pq, err := pricing.QuoteAll(puts, places)
	if err != nil {
		return err
	}
	cq, err := pricing.QuoteAll(calls, places)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "spot\tput\tcall\t")
	for i, r := range rows {
		fmt.Fprintf(tw, "%g\t%s\t%s\t\n", r.Spot, pq[i].StringFixed(places), cq[i].StringFixed(places))
	}

	return tw.Flush()
}

// printCSCExample imports the 8x10 example matrix and prints its entries
// in column-major order, then the same matrix materialized row by row.
func printCSCExample(w io.Writer) error {
	m, err := matrix.NewCSC(8, 10,
		[]int{0, 3, 4, 5, 2, 6, 7},
		[]int{0, 0, 1, 1, 1, 1, 2, 3, 4, 6, 7},
		[]float64{7, 21, 28, 35, 14, 42, 49},
	)
	if err != nil {
		return err
	}
	d, err := m.ToDense()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\ndense:\n%s", m, d)

	return err
}
