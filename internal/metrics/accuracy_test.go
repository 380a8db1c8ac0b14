package metrics

import (
	"math"
	"testing"
)

func TestRMSE(t *testing.T) {
	m := NewRMSE()
	m.Observe(3, 1)
	m.Observe(1, 3)
	// mean squared error = (4+4)/2 = 4
	if got := m.Value(); math.Abs(got-2) > 1e-12 {
		t.Errorf("rmse: got %f, want 2", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("rmse after reset should be 0")
	}
}

func TestMAE(t *testing.T) {
	m := NewMAE()
	m.Observe(1, 2)
	m.Observe(5, 2)
	if got := m.Value(); math.Abs(got-2) > 1e-12 {
		t.Errorf("mae: got %f, want 2", got)
	}
}

func TestMAPEExcludesZeroActuals(t *testing.T) {
	m := NewMAPE()
	m.Observe(110, 100) // 10%
	m.Observe(5, 0)     // excluded, not divided by zero
	m.Observe(90, 100)  // 10%
	if got := m.Value(); math.Abs(got-10) > 1e-9 {
		t.Errorf("mape: got %f, want 10", got)
	}

	only := NewMAPE()
	only.Observe(1, 0)
	if only.Value() != 0 {
		t.Error("mape with only zero actuals should be 0")
	}
}

func TestEvaluate(t *testing.T) {
	scores := Evaluate([]float64{1, 2, 3, 99}, []float64{1, 2, 3})
	for _, name := range []string{"rmse", "mae", "mape"} {
		v, ok := scores[name]
		if !ok {
			t.Fatalf("missing metric %s", name)
		}
		// The trailing unmatched prediction is ignored, so all three
		// metrics see a perfect forecast.
		if v != 0 {
			t.Errorf("%s: got %f, want 0", name, v)
		}
	}
}
