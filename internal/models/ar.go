package models

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/phasecast/internal/embed"
)

// DefaultLearningRate is the SGD step size for online AR updates.
const DefaultLearningRate = 0.01

// AR is a linear autoregression over the embedded window: the prediction
// is an intercept plus a learned weight per window coordinate. Fitting
// solves the least-squares problem over the whole dataset; Update performs
// one stochastic gradient step, so the model can adapt during corrected
// forecasting.
type AR struct {
	weights   []float64 // len = window dim
	intercept float64
	lr        float64
	fitted    bool
}

// NewAR creates an untrained linear autoregressive model.
func NewAR(learningRate float64) *AR {
	if learningRate <= 0 {
		learningRate = DefaultLearningRate
	}
	return &AR{lr: learningRate}
}

func (m *AR) Name() string { return "ar" }

// Fit solves the least-squares system via QR decomposition.
func (m *AR) Fit(ds *embed.Dataset) error {
	if ds.Len() == 0 {
		return errors.New("models: empty dataset")
	}
	dim := len(ds.Inputs[0])
	if ds.Len() < dim+1 {
		return fmt.Errorf("models: need at least %d rows to fit ar(%d), have %d", dim+1, dim, ds.Len())
	}

	rows := ds.Len()
	cols := dim + 1 // intercept column first
	data := make([]float64, rows*cols)
	for i, window := range ds.Inputs {
		data[i*cols] = 1
		copy(data[i*cols+1:(i+1)*cols], window)
	}
	a := mat.NewDense(rows, cols, data)
	b := mat.NewVecDense(rows, ds.Targets)

	var qr mat.QR
	qr.Factorize(a)

	x := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(x, false, b); err != nil {
		return fmt.Errorf("models: ar least squares: %w", err)
	}

	m.intercept = x.AtVec(0)
	m.weights = make([]float64, dim)
	for i := 0; i < dim; i++ {
		m.weights[i] = x.AtVec(i + 1)
	}
	m.fitted = true
	return nil
}

// Predict returns intercept + weights . window. An unfitted or
// mismatched model falls back to persistence on the last sample.
func (m *AR) Predict(window []float64) float64 {
	if !m.fitted || len(window) != len(m.weights) {
		if len(window) == 0 {
			return 0
		}
		return window[len(window)-1]
	}
	pred := m.intercept
	for i, w := range m.weights {
		pred += w * window[i]
	}
	return pred
}

// Update performs one SGD step toward (window, target).
func (m *AR) Update(window []float64, target float64) {
	if !m.fitted || len(window) != len(m.weights) {
		return
	}
	residual := target - m.Predict(window)
	m.intercept += m.lr * residual
	for i := range m.weights {
		m.weights[i] += m.lr * residual * window[i]
	}
}
