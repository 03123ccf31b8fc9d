// Package pricing_test provides benchmarks comparing the sequence backends,
// one row per backend, length and worker count.
package pricing_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/pricing"
)

var benchLens = []int{1, 100, 10000}

// sink to defeat dead-code elimination
var sinkPrices []float64

func BenchmarkPutPrices(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLens {
		spots := randomSpots(n, 99)
		for _, be := range backends {
			for _, w := range []int{1, 4} {
				b.Run(fmt.Sprintf("n=%d/%s/workers=%d", n, be, w), func(b *testing.B) {
					opts := []pricing.Option{pricing.WithBackend(be), pricing.WithWorkers(w)}
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						v, err := pricing.PutPrices(spots, blog, opts...)
						if err != nil {
							b.Fatal(err)
						}
						sinkPrices = v
					}
				})
			}
		}
	}
}
