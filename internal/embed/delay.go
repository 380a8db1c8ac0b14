package embed

import (
	"math"

	"github.com/san-kum/phasecast/internal/series"
)

const (
	histogramBins  = 10
	entropyEpsilon = 1e-12
)

// EstimateDelay selects the embedding delay for a series by minimizing the
// joint histogram entropy of (x[t], x[t+lag]) over lags in [1, maxLag).
// The returned delay is the 1-indexed position of the minimum.
//
// maxLag must lie in [2, len(series)); otherwise the candidate range
// degenerates and ErrLagBounds is returned.
func EstimateDelay(s *series.Series, maxLag int) (int, error) {
	n := s.Len()
	if maxLag < 2 || maxLag >= n {
		return 0, ErrLagBounds
	}

	values := s.Values()
	bestLag := 1
	bestStat := math.Inf(1)
	for lag := 1; lag < maxLag; lag++ {
		stat := jointEntropy(values[:n-lag], values[lag:])
		if stat < bestStat {
			bestStat = stat
			bestLag = lag
		}
	}
	return bestLag, nil
}

// jointEntropy computes -sum p*log(p+eps) over a normalized 10x10
// histogram of the paired samples. A zero-count histogram yields an
// all-zero probability table, so the statistic degrades to 0 rather
// than producing NaN.
func jointEntropy(x, y []float64) float64 {
	var counts [histogramBins][histogramBins]float64

	xMin, xMax := bounds(x)
	yMin, yMax := bounds(y)

	total := 0.0
	for i := range x {
		bx := binIndex(x[i], xMin, xMax)
		by := binIndex(y[i], yMin, yMax)
		counts[bx][by]++
		total++
	}

	entropy := 0.0
	for i := 0; i < histogramBins; i++ {
		for j := 0; j < histogramBins; j++ {
			p := 0.0
			if total > 0 {
				p = counts[i][j] / total
			}
			entropy -= p * math.Log(p+entropyEpsilon)
		}
	}
	return entropy
}

func bounds(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func binIndex(v, min, max float64) int {
	if max <= min {
		return 0
	}
	idx := int((v - min) / (max - min) * histogramBins)
	if idx >= histogramBins {
		idx = histogramBins - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
