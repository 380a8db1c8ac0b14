// Package analysis provides chaos and long-memory diagnostics for scalar
// time series.
//
// The package characterizes a raw series before (or independently of)
// embedding and forecasting:
//
//   - [Lyapunov]: mean log-growth of successive differences, a
//     chaos/stability indicator
//   - [Hurst]: rescaled-range long-range dependence estimate
//   - [ACF]: autocorrelation function
//   - [PowerSpectrum]: FFT magnitude spectrum and dominant period
//
// # Chaos Detection
//
// A non-negative Lyapunov value classifies the series as unstable:
//
//	res := analysis.Lyapunov(values)
//	if res.Defined && res.Exponent >= 0 {
//	    // Series behaves chaotically
//	}
package analysis
