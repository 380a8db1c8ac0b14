package optim

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/phasecast/internal/embed"
	"github.com/san-kum/phasecast/internal/forecast"
	"github.com/san-kum/phasecast/internal/models"
)

// linearSplit builds train/test datasets from target = 1 + 2*x, which the
// linear model fits exactly and persistence does not.
func linearSplit() (train, test *embed.Dataset) {
	train = &embed.Dataset{
		Inputs:  [][]float64{{0}, {1}, {2}, {3}, {4}, {5}},
		Targets: []float64{1, 3, 5, 7, 9, 11},
	}
	test = &embed.Dataset{
		Inputs:  [][]float64{{6}, {7}},
		Targets: []float64{13, 15},
	}
	return train, test
}

func TestSelectModelPrefersLinearOnLinearData(t *testing.T) {
	train, test := linearSplit()
	candidates := []forecast.Forecaster{
		models.NewNaive(),
		models.NewAR(0),
	}

	model, score, err := SelectModel(candidates, train, test)
	if err != nil {
		t.Fatal(err)
	}
	if model.Name() != "ar" {
		t.Errorf("winner: got %q, want ar", model.Name())
	}
	if score > 1e-6 {
		t.Errorf("winner score on exact-fit data: got %f", score)
	}
}

func TestSelectModelSkipsFailingCandidates(t *testing.T) {
	// The autoregressive candidate cannot fit two rows in two dimensions,
	// so the persistence baseline wins by default.
	train := &embed.Dataset{
		Inputs:  [][]float64{{1, 2}, {2, 3}},
		Targets: []float64{3, 4},
	}
	test := &embed.Dataset{
		Inputs:  [][]float64{{3, 4}},
		Targets: []float64{5},
	}
	candidates := []forecast.Forecaster{
		models.NewAR(0),
		models.NewNaive(),
	}

	model, _, err := SelectModel(candidates, train, test)
	if err != nil {
		t.Fatal(err)
	}
	if model.Name() != "naive" {
		t.Errorf("winner: got %q, want naive", model.Name())
	}
}

func TestSelectModelNoCandidates(t *testing.T) {
	train, test := linearSplit()
	if _, _, err := SelectModel(nil, train, test); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}

func TestScore(t *testing.T) {
	ds := &embed.Dataset{
		Inputs:  [][]float64{{1}, {2}},
		Targets: []float64{3, 4},
	}
	// Persistence predicts 1 and 2 against 3 and 4: errors of 2 each.
	got := Score(models.NewNaive(), ds)
	if math.Abs(got-2) > 1e-12 {
		t.Errorf("score: got %f, want 2", got)
	}
}
