package analysis

import "math"

// ACF calculates the autocorrelation function for lags 0..maxLag.
// Returns nil for a constant or empty series.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}

// ACFConfidence returns the 95% confidence bound for ACF values of a
// series with n samples.
func ACFConfidence(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 1.96 / math.Sqrt(float64(n))
}
