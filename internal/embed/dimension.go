package embed

import (
	"math"

	"github.com/san-kum/phasecast/internal/series"
)

const (
	// fnnSentinel marks a candidate dimension that cannot be embedded
	// (insufficient data). It is the worst possible fraction, so a
	// degenerate candidate is never selected unless every candidate
	// degenerates.
	fnnSentinel = 1.0

	// fnnThresholdFactor scales the mean pairwise distance into the
	// "too close" threshold.
	fnnThresholdFactor = 0.1

	// maxFNNRows caps the number of embedded rows entering the pairwise
	// distance computation. The pair cost is O(L^2 * d); beyond the cap
	// rows are subsampled with an even stride so long series stay
	// tractable without changing the statistic's character.
	maxFNNRows = 2000
)

// EstimateDimension selects the embedding dimension for a series given a
// delay, by minimizing a false-nearest-neighbor proxy over dimensions in
// [1, maxDim). The returned dimension is the 1-indexed position of the
// minimum.
func EstimateDimension(s *series.Series, tau, maxDim int) (int, error) {
	if tau < 1 {
		return 0, ErrDelayBounds
	}
	if maxDim < 2 {
		return 0, ErrDimBounds
	}

	values := s.Values()
	bestDim := 1
	bestFNN := math.Inf(1)
	for d := 1; d < maxDim; d++ {
		f := fnnFraction(values, tau, d)
		if f < bestFNN {
			bestFNN = f
			bestDim = d
		}
	}
	return bestDim, nil
}

// fnnFraction is the proportion of embedded row-pairs whose Euclidean
// distance falls below fnnThresholdFactor times the mean pairwise
// distance: redundancy at dimension d. This is a global-threshold proxy
// for the classical nearest-neighbor-growth FNN test.
func fnnFraction(values []float64, tau, d int) float64 {
	n := len(values)
	rowCount := n - d*tau
	if rowCount <= 0 {
		return fnnSentinel
	}

	rows := make([][]float64, 0, rowCount)
	for i := 0; i < rowCount; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			row[j] = values[i+j*tau]
		}
		rows = append(rows, row)
	}
	if len(rows) > maxFNNRows {
		rows = subsampleRows(rows, maxFNNRows)
	}
	if len(rows) < 2 {
		return fnnSentinel
	}

	pairCount := len(rows) * (len(rows) - 1) / 2
	distances := make([]float64, 0, pairCount)
	sum := 0.0
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			dist := euclidean(rows[i], rows[j])
			distances = append(distances, dist)
			sum += dist
		}
	}

	threshold := sum / float64(len(distances)) * fnnThresholdFactor
	close := 0
	for _, dist := range distances {
		if dist < threshold {
			close++
		}
	}
	return float64(close) / float64(len(distances))
}

func subsampleRows(rows [][]float64, limit int) [][]float64 {
	stride := (len(rows) + limit - 1) / limit
	out := make([][]float64, 0, limit)
	for i := 0; i < len(rows); i += stride {
		out = append(out, rows[i])
	}
	return out
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
