package analysis

import "math"

// LyapunovResult is the outcome of the stability diagnostic. Defined is
// false when the series has no nonzero consecutive difference, in which
// case Exponent is meaningless.
type LyapunovResult struct {
	Exponent float64
	Defined  bool
}

// Lyapunov estimates a stability exponent as the mean of log|x[i+1]-x[i]|
// over all nonzero consecutive differences. Negative means the successive
// increments shrink on average (stable); non-negative means they do not
// (unstable). A constant series yields an undefined result.
func Lyapunov(values []float64) LyapunovResult {
	sum := 0.0
	count := 0
	for i := 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		if delta == 0 {
			continue
		}
		sum += math.Log(math.Abs(delta))
		count++
	}
	if count == 0 {
		return LyapunovResult{}
	}
	return LyapunovResult{Exponent: sum / float64(count), Defined: true}
}

// Stable reports whether the exponent classifies the series as stable.
func (r LyapunovResult) Stable() bool {
	return r.Defined && r.Exponent < 0
}

// Classification renders the diagnostic as a label for reporting.
func (r LyapunovResult) Classification() string {
	switch {
	case !r.Defined:
		return "undefined"
	case r.Exponent < 0:
		return "stable"
	default:
		return "unstable"
	}
}
