package models

import "github.com/san-kum/phasecast/internal/embed"

// Naive is the persistence baseline: tomorrow looks like today. It
// predicts the last sample of the window and needs no training. Useful as
// the floor every other model has to beat.
type Naive struct{}

// NewNaive creates a persistence forecaster.
func NewNaive() *Naive { return &Naive{} }

func (m *Naive) Name() string { return "naive" }

func (m *Naive) Fit(_ *embed.Dataset) error { return nil }

func (m *Naive) Predict(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}
	return window[len(window)-1]
}
