package forecast

import (
	"errors"

	"github.com/san-kum/phasecast/internal/embed"
)

// errorWindow is how many trailing residuals feed the bias correction.
const errorWindow = 5

var (
	// ErrEmptyWindow indicates a corrector built without an initial window.
	ErrEmptyWindow = errors.New("forecast: initial window is empty")

	// ErrNilModel indicates a corrector built without a model.
	ErrNilModel = errors.New("forecast: model is nil")
)

// Corrector produces a multi-step forecast from a rolling window, applying
// online correction when a reference series is available. The window and
// reference are in scaled units; Forecast returns original units.
//
// State is single-use: build a fresh Corrector per forecasting run.
type Corrector struct {
	model  Model
	scaler *embed.Scaler

	// OnlineUpdate enables one incremental model training step per
	// observed reference value, when the model supports it.
	OnlineUpdate bool

	window    []float64
	reference []float64
	errs      []float64
	records   []StepRecord
}

// NewCorrector builds a corrector over a copy of the initial window.
// reference may be nil or shorter than the forecast horizon; steps without
// a reference value fall back to residual-history correction.
func NewCorrector(model Model, window []float64, reference []float64, scaler *embed.Scaler) *Corrector {
	w := make([]float64, len(window))
	copy(w, window)
	return &Corrector{
		model:     model,
		scaler:    scaler,
		window:    w,
		reference: reference,
	}
}

// Forecast runs the multi-step loop and returns the predictions
// inverse-transformed to original units.
func (c *Corrector) Forecast(steps int) ([]float64, error) {
	if c.model == nil {
		return nil, ErrNilModel
	}
	if len(c.window) == 0 {
		return nil, ErrEmptyWindow
	}

	out := make([]float64, 0, steps)
	for s := 0; s < steps; s++ {
		pred := c.model.Predict(c.window)
		out = append(out, pred)

		// Shift left; the vacated tail slot receives the new value.
		copy(c.window, c.window[1:])
		tail := len(c.window) - 1

		// Correction is driven by per-step availability: steps covered
		// by the reference record true residuals; steps beyond it fall
		// back to the trailing-average bias correction; with no residual
		// history at all the prediction passes through unmodified. An
		// absent reference therefore silently disables correction.
		switch {
		case s < len(c.reference):
			truth := c.reference[s]
			residual := truth - pred
			c.errs = append(c.errs, residual)
			c.window[tail] = truth
			if u, ok := c.model.(Updater); ok && c.OnlineUpdate {
				u.Update(c.window, truth)
			}
			c.records = append(c.records, StepRecord{
				Step: s, Mode: ModeObserved,
				Predicted: pred, True: truth, Error: residual,
			})

		case len(c.errs) > 0:
			corrected := pred + trailingMean(c.errs, errorWindow)
			out[len(out)-1] = corrected
			c.window[tail] = corrected
			c.records = append(c.records, StepRecord{
				Step: s, Mode: ModeCorrected,
				Predicted: pred, Corrected: corrected,
			})

		default:
			c.window[tail] = pred
			c.records = append(c.records, StepRecord{
				Step: s, Mode: ModeFree, Predicted: pred,
			})
		}
	}

	return c.scaler.UnscaleAll(out), nil
}

// Records returns the per-step diagnostics of the last Forecast call.
func (c *Corrector) Records() []StepRecord { return c.records }

// Window returns a copy of the current rolling window, in scaled units.
func (c *Corrector) Window() []float64 {
	w := make([]float64, len(c.window))
	copy(w, c.window)
	return w
}

func trailingMean(values []float64, n int) float64 {
	if len(values) == 0 {
		return 0
	}
	if len(values) > n {
		values = values[len(values)-n:]
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
