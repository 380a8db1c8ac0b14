package generate

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator produces a synthetic series of n samples.
type Generator interface {
	Generate(n int) []float64
}

// Get returns a generator by name with default parameters. The seed is
// used by stochastic generators only.
func Get(name string, seed int64) (Generator, error) {
	switch name {
	case "logistic":
		return NewLogisticMap(), nil
	case "henon":
		return NewHenonMap(), nil
	case "sine":
		return NewNoisySine(seed), nil
	case "randomwalk":
		return NewRandomWalk(seed), nil
	default:
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
}

// Names lists the available generator names.
func Names() []string {
	return []string{"logistic", "henon", "sine", "randomwalk"}
}

// LogisticMap iterates x' = r*x*(1-x). The default r=4 sits in the fully
// chaotic regime.
type LogisticMap struct {
	R, X0 float64
}

func NewLogisticMap() *LogisticMap { return &LogisticMap{R: 4.0, X0: 0.2} }

func (l *LogisticMap) Generate(n int) []float64 {
	out := make([]float64, n)
	x := l.X0
	for i := 0; i < n; i++ {
		out[i] = x
		x = l.R * x * (1 - x)
	}
	return out
}

// HenonMap iterates the two-dimensional Henon system and emits the x
// coordinate. Defaults a=1.4, b=0.3 are the classical chaotic parameters.
type HenonMap struct {
	A, B, X0, Y0 float64
}

func NewHenonMap() *HenonMap { return &HenonMap{A: 1.4, B: 0.3, X0: 0.1, Y0: 0.1} }

func (h *HenonMap) Generate(n int) []float64 {
	out := make([]float64, n)
	x, y := h.X0, h.Y0
	for i := 0; i < n; i++ {
		out[i] = x
		x, y = 1-h.A*x*x+y, h.B*x
	}
	return out
}

// NoisySine is a sinusoid with additive seeded Gaussian noise.
type NoisySine struct {
	Amplitude float64
	Period    float64
	Noise     float64
	Seed      int64
}

func NewNoisySine(seed int64) *NoisySine {
	return &NoisySine{Amplitude: 1.0, Period: 50.0, Noise: 0.05, Seed: seed}
}

func (s *NoisySine) Generate(n int) []float64 {
	rng := rand.New(rand.NewSource(s.Seed))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s.Amplitude*math.Sin(2*math.Pi*float64(i)/s.Period) + rng.NormFloat64()*s.Noise
	}
	return out
}

// RandomWalk accumulates seeded Gaussian steps.
type RandomWalk struct {
	Step float64
	Seed int64
}

func NewRandomWalk(seed int64) *RandomWalk { return &RandomWalk{Step: 1.0, Seed: seed} }

func (w *RandomWalk) Generate(n int) []float64 {
	rng := rand.New(rand.NewSource(w.Seed))
	out := make([]float64, n)
	x := 0.0
	for i := 0; i < n; i++ {
		x += rng.NormFloat64() * w.Step
		out[i] = x
	}
	return out
}
