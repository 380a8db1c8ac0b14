// Package models provides forecasting models for delay-embedded series.
//
// Each model implements the [forecast.Forecaster] interface: fit on an
// embedding dataset, then predict the next scaled sample from a window.
// Models that also implement [forecast.Updater] support one-sample online
// refinement during corrected forecasting:
//
//   - [AR]: least-squares linear autoregression, with SGD online updates
//   - [KNN]: nearest-neighbor analog forecasting in the embedded space
//   - [Naive]: persistence baseline (last window sample)
//
// All models operate in the scaled unit space of the dataset they were
// fit on.
package models
