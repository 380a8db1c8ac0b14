package series

import (
	"math"
)

// Series is an ordered scalar time series. Values are finite: the
// constructor drops NaN and Inf samples. Treat a constructed Series as
// immutable; operations that derive new data return copies.
type Series struct {
	values []float64
	name   string
}

// New builds a series from raw samples, dropping NaN and Inf entries.
func New(values []float64, name string) *Series {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		clean = append(clean, v)
	}
	return &Series{values: clean, name: name}
}

// Name returns the series label.
func (s *Series) Name() string { return s.name }

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.values) }

// Values returns a copy of the underlying samples.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// At returns the sample at index i.
func (s *Series) At(i int) float64 { return s.values[i] }

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

// Std calculates the sample standard deviation.
func (s *Series) Std() float64 {
	if len(s.values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(s.values)-1))
}

// Min returns the smallest sample, or NaN for an empty series.
func (s *Series) Min() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest sample, or NaN for an empty series.
func (s *Series) Max() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Slice returns a new series covering [start, end). Bounds are clamped.
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.values) {
		end = len(s.values)
	}
	if start >= end {
		return &Series{name: s.name}
	}
	values := make([]float64, end-start)
	copy(values, s.values[start:end])
	return &Series{values: values, name: s.name}
}
