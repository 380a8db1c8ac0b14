package analysis

import (
	"math"
	"testing"
)

func TestLyapunovConstantUndefined(t *testing.T) {
	r := Lyapunov([]float64{3, 3, 3, 3})
	if r.Defined {
		t.Error("constant series should yield an undefined exponent")
	}
	if r.Classification() != "undefined" {
		t.Errorf("classification: got %q", r.Classification())
	}
	if r.Stable() {
		t.Error("undefined result must not read as stable")
	}
}

func TestLyapunovGrowingIncrements(t *testing.T) {
	// Every consecutive difference is e, so the exponent is exactly 1.
	e := math.E
	values := []float64{0, e, 2 * e, 3 * e, 4 * e}
	r := Lyapunov(values)
	if !r.Defined {
		t.Fatal("expected a defined exponent")
	}
	if math.Abs(r.Exponent-1) > 1e-12 {
		t.Errorf("exponent: got %f, want 1", r.Exponent)
	}
	if r.Stable() || r.Classification() != "unstable" {
		t.Errorf("positive exponent should classify unstable, got %q", r.Classification())
	}
}

func TestLyapunovShrinkingIncrements(t *testing.T) {
	// Every consecutive difference is 1/e, so the exponent is exactly -1.
	d := 1 / math.E
	values := []float64{0, d, 2 * d, 3 * d}
	r := Lyapunov(values)
	if !r.Defined || math.Abs(r.Exponent+1) > 1e-12 {
		t.Fatalf("exponent: got %+v, want -1", r)
	}
	if !r.Stable() || r.Classification() != "stable" {
		t.Errorf("negative exponent should classify stable, got %q", r.Classification())
	}
}

func TestLyapunovSkipsZeroDeltas(t *testing.T) {
	// Only the single e-sized jump counts; the flat stretches are ignored.
	r := Lyapunov([]float64{0, 0, math.E, math.E})
	if !r.Defined || math.Abs(r.Exponent-1) > 1e-12 {
		t.Errorf("exponent: got %+v, want 1", r)
	}
}

func TestHurstTrendingSeries(t *testing.T) {
	values := make([]float64, 128)
	for i := range values {
		values[i] = float64(i)
	}
	h, err := Hurst(values)
	if err != nil {
		t.Fatal(err)
	}
	if h <= 0.6 {
		t.Errorf("linear trend should read strongly persistent, got H=%f", h)
	}
	if got := ClassifyHurst(h); got != "persistent (trending)" {
		t.Errorf("classification: got %q", got)
	}
}

func TestHurstTooShort(t *testing.T) {
	if _, err := Hurst(make([]float64, 10)); err != ErrHurstLength {
		t.Errorf("expected ErrHurstLength, got %v", err)
	}
	// A constant series is long enough but every chunk degenerates.
	if _, err := Hurst(make([]float64, 100)); err != ErrHurstLength {
		t.Errorf("expected ErrHurstLength for constant series, got %v", err)
	}
}

func TestClassifyHurstBands(t *testing.T) {
	cases := []struct {
		h    float64
		want string
	}{
		{0.5, "consistent with a random walk"},
		{0.52, "consistent with a random walk"},
		{0.48, "consistent with a random walk"},
		{0.7, "persistent (trending)"},
		{0.3, "anti-persistent (mean-reverting)"},
	}
	for _, tc := range cases {
		if got := ClassifyHurst(tc.h); got != tc.want {
			t.Errorf("ClassifyHurst(%f): got %q, want %q", tc.h, got, tc.want)
		}
	}
}

func TestACFLagZeroIsOne(t *testing.T) {
	values := []float64{1, 3, 2, 5, 4, 6, 2, 8}
	acf := ACF(values, 3)
	if len(acf) != 4 {
		t.Fatalf("expected 4 lags, got %d", len(acf))
	}
	if math.Abs(acf[0]-1) > 1e-12 {
		t.Errorf("lag 0: got %f, want 1", acf[0])
	}
}

func TestACFAlternatingSeries(t *testing.T) {
	values := make([]float64, 10)
	for i := range values {
		if i%2 == 0 {
			values[i] = 1
		} else {
			values[i] = -1
		}
	}
	acf := ACF(values, 1)
	if acf[1] > -0.8 {
		t.Errorf("alternating series lag-1 autocorrelation should be near -1, got %f", acf[1])
	}
}

func TestACFDegenerate(t *testing.T) {
	if got := ACF([]float64{5, 5, 5}, 2); got != nil {
		t.Errorf("constant series should yield nil, got %v", got)
	}
	if got := ACF(nil, 2); got != nil {
		t.Errorf("empty series should yield nil, got %v", got)
	}
}

func TestACFConfidence(t *testing.T) {
	if got := ACFConfidence(100); math.Abs(got-0.196) > 1e-12 {
		t.Errorf("confidence for n=100: got %f, want 0.196", got)
	}
	if ACFConfidence(0) != 0 {
		t.Error("confidence for n=0 should be 0")
	}
}

func TestFFTPadsToPowerOfTwo(t *testing.T) {
	out := FFT(make([]float64, 5))
	if len(out) != 8 {
		t.Errorf("expected padding to 8 samples, got %d", len(out))
	}
}

func TestDominantPeriodSine(t *testing.T) {
	// Period-8 sine over 64 samples lands exactly on bin 8.
	values := make([]float64, 64)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}
	if got := DominantPeriod(values); math.Abs(got-8) > 1e-9 {
		t.Errorf("dominant period: got %f, want 8", got)
	}
}

func TestPowerSpectrumDCComponent(t *testing.T) {
	values := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	ps := PowerSpectrum(values)
	if len(ps) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(ps))
	}
	if math.Abs(ps[0]-8) > 1e-9 {
		t.Errorf("DC magnitude: got %f, want 8", ps[0])
	}
	for i := 1; i < len(ps); i++ {
		if ps[i] > 1e-9 {
			t.Errorf("bin %d should carry no power, got %f", i, ps[i])
		}
	}
}
