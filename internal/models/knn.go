package models

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/phasecast/internal/embed"
)

// DefaultNeighbors is the default K for analog forecasting.
const DefaultNeighbors = 5

// KNN forecasts by analogy: the next sample is the average target of the
// K training windows closest to the query window in the embedded space.
// Ties in distance are broken by temporal order, keeping predictions
// deterministic.
type KNN struct {
	k       int
	inputs  [][]float64
	targets []float64
}

// NewKNN creates a nearest-neighbor analog forecaster.
func NewKNN(k int) *KNN {
	if k < 1 {
		k = DefaultNeighbors
	}
	return &KNN{k: k}
}

func (m *KNN) Name() string { return "knn" }

// Fit retains the training rows. The dataset is held by reference;
// callers must not mutate it afterwards.
func (m *KNN) Fit(ds *embed.Dataset) error {
	if ds.Len() == 0 {
		return errors.New("models: empty dataset")
	}
	m.inputs = ds.Inputs
	m.targets = ds.Targets
	return nil
}

// Predict averages the targets of the k nearest training windows.
func (m *KNN) Predict(window []float64) float64 {
	if len(m.inputs) == 0 || len(window) != len(m.inputs[0]) {
		if len(window) == 0 {
			return 0
		}
		return window[len(window)-1]
	}

	type neighbor struct {
		dist float64
		idx  int
	}
	neighbors := make([]neighbor, len(m.inputs))
	for i, row := range m.inputs {
		d := floats.Distance(row, window, 2)
		neighbors[i] = neighbor{dist: d, idx: i}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].dist != neighbors[j].dist {
			return neighbors[i].dist < neighbors[j].dist
		}
		return neighbors[i].idx < neighbors[j].idx
	})

	k := m.k
	if k > len(neighbors) {
		k = len(neighbors)
	}
	sum := 0.0
	for _, n := range neighbors[:k] {
		sum += m.targets[n.idx]
	}
	return sum / float64(k)
}
