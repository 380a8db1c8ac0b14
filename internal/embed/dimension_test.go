package embed

import (
	"errors"
	"testing"

	"github.com/san-kum/phasecast/internal/series"
)

func rampSeries(n int) *series.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return series.New(values, "ramp")
}

func TestEstimateDimensionBounds(t *testing.T) {
	s := rampSeries(50)

	if _, err := EstimateDimension(s, 0, 5); !errors.Is(err, ErrDelayBounds) {
		t.Errorf("expected ErrDelayBounds, got %v", err)
	}
	if _, err := EstimateDimension(s, 1, 1); !errors.Is(err, ErrDimBounds) {
		t.Errorf("expected ErrDimBounds, got %v", err)
	}
}

func TestEstimateDimensionRamp(t *testing.T) {
	// On a strictly increasing ramp every pairwise embedded distance is
	// determined by index spacing alone, so extra lagged coordinates add
	// no discriminative structure and the estimator settles at 1.
	s := rampSeries(100)

	m, err := EstimateDimension(s, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if m != 1 {
		t.Errorf("expected dimension 1 for ramp, got %d", m)
	}
}

func TestEstimateDimensionPlateau(t *testing.T) {
	// Widening the search range past the optimum must not change the
	// answer.
	s := rampSeries(100)

	small, err := EstimateDimension(s, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	large, err := EstimateDimension(s, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if small != large {
		t.Errorf("dimension changed with search range: %d vs %d", small, large)
	}
}

func TestFNNSentinel(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	// d*tau >= len leaves no embeddable row.
	if got := fnnFraction(values, 3, 4); got != fnnSentinel {
		t.Errorf("expected sentinel 1.0, got %f", got)
	}
	// A single row has no pairs either.
	if got := fnnFraction(values, 3, 3); got != fnnSentinel {
		t.Errorf("expected sentinel 1.0 for single row, got %f", got)
	}
}

func TestEstimateDimensionAvoidsSentinel(t *testing.T) {
	// Candidates beyond the embeddable range carry the worst score and
	// must never win while a real candidate exists.
	s := rampSeries(10)

	m, err := EstimateDimension(s, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if m*3 >= s.Len() {
		t.Errorf("selected degenerate dimension %d", m)
	}
}

func TestEstimateDimensionAllDegenerate(t *testing.T) {
	// When every candidate degenerates the first one wins by default.
	s := rampSeries(5)

	m, err := EstimateDimension(s, 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if m != 1 {
		t.Errorf("expected fallback dimension 1, got %d", m)
	}
}

func TestSubsampleRows(t *testing.T) {
	rows := make([][]float64, 10)
	for i := range rows {
		rows[i] = []float64{float64(i)}
	}

	out := subsampleRows(rows, 4)
	if len(out) > 4 {
		t.Errorf("expected at most 4 rows, got %d", len(out))
	}
	if out[0][0] != 0 {
		t.Error("subsampling should keep the first row")
	}
}
