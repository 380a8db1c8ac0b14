package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// randomWalkBand is how far H may sit from 0.5 while still reading as a
// random walk.
const randomWalkBand = 0.05

// ErrHurstLength indicates a series too short for a rescaled-range fit.
var ErrHurstLength = errors.New("analysis: series too short for hurst estimate")

// Hurst estimates the Hurst exponent by rescaled-range (R/S) analysis:
// average R/S over chunks at doubling window sizes, then fit the slope of
// log(R/S) against log(window).
func Hurst(values []float64) (float64, error) {
	if len(values) < 20 {
		return 0, ErrHurstLength
	}

	var logN, logRS []float64
	for n := 8; n <= len(values)/2; n *= 2 {
		rs := meanRescaledRange(values, n)
		if rs <= 0 {
			continue
		}
		logN = append(logN, math.Log(float64(n)))
		logRS = append(logRS, math.Log(rs))
	}
	if len(logN) < 2 {
		return 0, ErrHurstLength
	}

	_, slope := stat.LinearRegression(logN, logRS, nil, false)
	return slope, nil
}

// ClassifyHurst maps an exponent to its long-memory reading. Values
// within the random-walk band around 0.5 are reported as consistent with
// a random walk.
func ClassifyHurst(h float64) string {
	switch {
	case math.Abs(h-0.5) < randomWalkBand:
		return "consistent with a random walk"
	case h > 0.5:
		return "persistent (trending)"
	default:
		return "anti-persistent (mean-reverting)"
	}
}

// meanRescaledRange averages the R/S statistic over consecutive chunks of
// size n. Chunks with zero deviation are skipped.
func meanRescaledRange(values []float64, n int) float64 {
	sum := 0.0
	count := 0
	for start := 0; start+n <= len(values); start += n {
		chunk := values[start : start+n]
		mean := 0.0
		for _, v := range chunk {
			mean += v
		}
		mean /= float64(n)

		// Range of cumulative deviations from the chunk mean.
		cum := 0.0
		minCum, maxCum := 0.0, 0.0
		sumSq := 0.0
		for _, v := range chunk {
			dev := v - mean
			cum += dev
			if cum < minCum {
				minCum = cum
			}
			if cum > maxCum {
				maxCum = cum
			}
			sumSq += dev * dev
		}
		std := math.Sqrt(sumSq / float64(n))
		if std == 0 {
			continue
		}
		sum += (maxCum - minCum) / std
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
