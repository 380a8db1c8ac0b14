package embed

// Scaler is a reversible min-max transform fit from exactly one series.
// It is fit once and threaded through embedding and forecasting so every
// scale/unscale on derived data uses the same bounds. Never refit a Scaler
// mid-pipeline.
type Scaler struct {
	min, max float64
}

// FitScaler fits a min-max transform on the given samples. A constant
// series produces a degenerate scaler that maps everything to 0 and
// unscales back to the constant.
func FitScaler(values []float64) *Scaler {
	if len(values) == 0 {
		return &Scaler{}
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
	return &Scaler{min: min, max: max}
}

// Min returns the fitted lower bound.
func (s *Scaler) Min() float64 { return s.min }

// Max returns the fitted upper bound.
func (s *Scaler) Max() float64 { return s.max }

// Scale maps x into [0, 1] relative to the fitted bounds.
func (s *Scaler) Scale(x float64) float64 {
	span := s.max - s.min
	if span == 0 {
		return 0
	}
	return (x - s.min) / span
}

// Unscale is the exact inverse of Scale for non-degenerate bounds.
func (s *Scaler) Unscale(x float64) float64 {
	span := s.max - s.min
	if span == 0 {
		return s.min
	}
	return x*span + s.min
}

// ScaleAll scales a slice without mutating the input.
func (s *Scaler) ScaleAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Scale(v)
	}
	return out
}

// UnscaleAll unscales a slice without mutating the input.
func (s *Scaler) UnscaleAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Unscale(v)
	}
	return out
}
