// Package pricing values European options under Black–Scholes with a
// continuous dividend yield.
//
// One formula, several evaluation strategies:
//
//	Put / Call               - one spot, scalar kernel
//	PutPrices / CallPrices   - a spot sequence, element-wise, order preserved
//
// For sequences the backend is a performance choice only:
//
//	BackendScalar - loop over the scalar kernel
//	BackendBatch  - staged element-wise passes over contiguous buffers (default)
//	BackendGonum  - the same passes on gonum's floats/mat
//
// WithWorkers(n) additionally splits the sequence into n contiguous chunks
// priced concurrently. Φ is gonum's erfc-based standard normal CDF for every
// path.
//
// Inputs are validated at the call boundary: strike, expiry, volatility and
// every spot must be > 0, and by default all inputs must be finite. Errors
// wrap ErrInvalidArgument.
//
// Example:
//
//	p := pricing.Params{Strike: 60, Rate: 0.01, Yield: 0.02, Expiry: 1, Vol: 0.05}
//	v, err := pricing.Put(55, p) // ≈ 5.52021
package pricing
