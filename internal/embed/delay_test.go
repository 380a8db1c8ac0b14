package embed

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/phasecast/internal/series"
)

func sineSeries(n int) *series.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * float64(i) / 25.0)
	}
	return series.New(values, "sine")
}

func TestEstimateDelayBounds(t *testing.T) {
	s := sineSeries(50)

	if _, err := EstimateDelay(s, 1); !errors.Is(err, ErrLagBounds) {
		t.Errorf("expected ErrLagBounds for max lag 1, got %v", err)
	}
	if _, err := EstimateDelay(s, 50); !errors.Is(err, ErrLagBounds) {
		t.Errorf("expected ErrLagBounds for max lag >= length, got %v", err)
	}
}

func TestEstimateDelayRange(t *testing.T) {
	s := sineSeries(200)

	tau, err := EstimateDelay(s, 20)
	if err != nil {
		t.Fatal(err)
	}
	if tau < 1 || tau >= 20 {
		t.Errorf("delay %d outside [1, 20)", tau)
	}
}

func TestEstimateDelayDeterministic(t *testing.T) {
	s := sineSeries(300)

	first, err := EstimateDelay(s, 30)
	if err != nil {
		t.Fatal(err)
	}
	second, err := EstimateDelay(s, 30)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("delay not deterministic: %d vs %d", first, second)
	}
}

func TestJointEntropyDegenerate(t *testing.T) {
	// Empty pairs degrade to a zero probability table; the statistic
	// must be 0, never NaN.
	got := jointEntropy(nil, nil)
	if got != 0 {
		t.Errorf("expected 0 entropy for empty input, got %f", got)
	}

	// A constant pair concentrates all mass in one bin.
	constant := []float64{1, 1, 1, 1}
	got = jointEntropy(constant, constant)
	if math.IsNaN(got) {
		t.Error("constant input produced NaN")
	}
}

func TestJointEntropySpread(t *testing.T) {
	// Mass spread across bins carries more entropy than concentrated
	// mass.
	spread := make([]float64, 100)
	for i := range spread {
		spread[i] = float64(i)
	}
	constant := make([]float64, 100)

	if jointEntropy(spread, spread) <= jointEntropy(constant, constant) {
		t.Error("spread distribution should have higher entropy than constant")
	}
}
