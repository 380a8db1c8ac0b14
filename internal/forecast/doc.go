// Package forecast drives multi-step prediction over a delay-embedded
// rolling window, with optional online correction against a reference
// series.
//
// The forecasting model is a capability interface, not a class hierarchy:
// anything with Predict(window) is a valid plug-in, and models that also
// implement [Updater] get one incremental training step whenever ground
// truth arrives. Both operate in the scaled unit space of the embedding
// dataset; the [Corrector] inverse-transforms its output back to original
// units through the scaler it was given.
//
// Pure autoregressive multi-step forecasting feeds each prediction into the
// next input, so model error compounds with horizon. Two mitigations apply
// depending on what is known at each step: ground truth, when available,
// replaces the speculative tail of the window; otherwise a trailing average
// of the most recent residuals is added as a bias correction.
package forecast
