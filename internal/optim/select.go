// Package optim selects a forecasting model by held-out evaluation.
package optim

import (
	"errors"
	"math"

	"github.com/san-kum/phasecast/internal/embed"
	"github.com/san-kum/phasecast/internal/forecast"
	"github.com/san-kum/phasecast/internal/metrics"
)

// ErrNoCandidates indicates an empty or unusable candidate set.
var ErrNoCandidates = errors.New("optim: no candidate model could be fit")

// SelectModel fits each candidate on the train split and scores one-step-
// ahead RMSE on the test split, returning the candidate with the lowest
// score. Candidates that fail to fit are skipped. The returned model is
// already fitted.
func SelectModel(candidates []forecast.Forecaster, train, test *embed.Dataset) (forecast.Forecaster, float64, error) {
	best := math.Inf(1)
	var bestModel forecast.Forecaster

	for _, candidate := range candidates {
		if err := candidate.Fit(train); err != nil {
			continue
		}
		score := Score(candidate, test)
		if score < best {
			best = score
			bestModel = candidate
		}
	}

	if bestModel == nil {
		return nil, 0, ErrNoCandidates
	}
	return bestModel, best, nil
}

// Score computes one-step-ahead RMSE of a fitted model over a dataset.
func Score(model forecast.Model, ds *embed.Dataset) float64 {
	rmse := metrics.NewRMSE()
	for i, window := range ds.Inputs {
		rmse.Observe(model.Predict(window), ds.Targets[i])
	}
	return rmse.Value()
}
