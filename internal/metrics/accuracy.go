// Package metrics provides forecast accuracy metrics with a streaming
// Observe/Value/Reset shape, so they can score a forecast either after the
// fact or step by step as predictions arrive.
package metrics

import "math"

// Metric accumulates (predicted, actual) pairs into a scalar score.
type Metric interface {
	Name() string
	Observe(predicted, actual float64)
	Value() float64
	Reset()
}

// RMSE accumulates root mean squared error.
type RMSE struct {
	sumSq   float64
	samples int
}

func NewRMSE() *RMSE { return &RMSE{} }

func (m *RMSE) Name() string { return "rmse" }

func (m *RMSE) Observe(predicted, actual float64) {
	diff := predicted - actual
	m.sumSq += diff * diff
	m.samples++
}

func (m *RMSE) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.sumSq / float64(m.samples))
}

func (m *RMSE) Reset() {
	m.sumSq = 0
	m.samples = 0
}

// MAE accumulates mean absolute error.
type MAE struct {
	sum     float64
	samples int
}

func NewMAE() *MAE { return &MAE{} }

func (m *MAE) Name() string { return "mae" }

func (m *MAE) Observe(predicted, actual float64) {
	m.sum += math.Abs(predicted - actual)
	m.samples++
}

func (m *MAE) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MAE) Reset() {
	m.sum = 0
	m.samples = 0
}

// MAPE accumulates mean absolute percentage error. Pairs with a zero
// actual value are excluded from the denominator set rather than divided
// by; Value reports over the remaining samples.
type MAPE struct {
	sum     float64
	samples int
}

func NewMAPE() *MAPE { return &MAPE{} }

func (m *MAPE) Name() string { return "mape" }

func (m *MAPE) Observe(predicted, actual float64) {
	if actual == 0 {
		return
	}
	m.sum += math.Abs((actual - predicted) / actual)
	m.samples++
}

func (m *MAPE) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples) * 100
}

func (m *MAPE) Reset() {
	m.sum = 0
	m.samples = 0
}

// Evaluate scores a forecast against actuals with the default metric set.
// Trailing predictions without a matching actual are ignored.
func Evaluate(predicted, actual []float64) map[string]float64 {
	ms := []Metric{NewRMSE(), NewMAE(), NewMAPE()}
	n := len(predicted)
	if len(actual) < n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		for _, m := range ms {
			m.Observe(predicted[i], actual[i])
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
