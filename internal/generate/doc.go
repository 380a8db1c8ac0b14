// Package generate provides synthetic scalar series for demos and tests.
//
// Each generator implements the [Generator] interface and produces a
// deterministic series for a fixed parameterization (stochastic generators
// take an explicit seed):
//
//   - [LogisticMap]: x' = r*x*(1-x), chaotic for r near 4
//   - [HenonMap]: two-dimensional chaotic map, x coordinate emitted
//   - [NoisySine]: sinusoid with seeded Gaussian noise
//   - [RandomWalk]: seeded Gaussian random walk
//
// Map generators accumulate iteratively so arbitrarily long series never
// grow the call stack.
package generate
