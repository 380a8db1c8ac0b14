// Package embed implements delay-coordinate (Takens) reconstruction of a
// scalar time series.
//
// The package covers parameter estimation and dataset construction:
//
//   - [EstimateDelay]: embedding delay via a joint-histogram entropy statistic
//   - [EstimateDimension]: embedding dimension via a false-nearest-neighbor proxy
//   - [BuildDataset]: windowed, min-max scaled (input, target) dataset
//   - [Scaler]: reversible min-max transform, fit once per series
//
// # A note on the delay statistic
//
// EstimateDelay is often described as a mutual-information minimum, but the
// statistic it minimizes is the joint histogram entropy of the lagged pair,
// without subtracting marginal entropies. The two do not coincide in general.
// The entropy form is kept deliberately; callers relying on the selected lag
// should not substitute a textbook mutual-information estimator and expect
// identical results.
//
// # A note on the dimension statistic
//
// EstimateDimension uses a single global distance threshold
// (mean pairwise distance * 0.1) instead of the classical per-point
// nearest-neighbor ratio test. On scale-heterogeneous series this
// approximation can misclassify the dimension. It is a known trade of
// accuracy for simplicity and O(L^2) predictability.
package embed
