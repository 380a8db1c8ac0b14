package forecast

import "github.com/san-kum/phasecast/internal/embed"

// Model predicts the next scaled sample from a window of scaled samples.
type Model interface {
	Predict(window []float64) float64
}

// Forecaster is a trainable model: it fits on a delay-embedded dataset
// and then predicts windows of the same dimension.
type Forecaster interface {
	Model
	Fit(ds *embed.Dataset) error
	Name() string
}

// Updater is an optional model capability: one incremental training step
// on a single (window, target) pair, in scaled units.
type Updater interface {
	Update(window []float64, target float64)
}

// StepMode records which branch produced a forecast step.
type StepMode string

const (
	// ModeObserved: a reference value existed for the step; the window
	// tail holds ground truth.
	ModeObserved StepMode = "observed"

	// ModeCorrected: no reference, but prior residuals existed; the
	// output and window tail hold the bias-corrected prediction.
	ModeCorrected StepMode = "corrected"

	// ModeFree: no reference and no residual history; the raw
	// prediction was used unmodified.
	ModeFree StepMode = "free"
)

// StepRecord is the per-step diagnostic emitted by the corrector.
// All values are in scaled units. True and Error are meaningful only for
// ModeObserved; Corrected only for ModeCorrected.
type StepRecord struct {
	Step      int      `json:"step"`
	Mode      StepMode `json:"mode"`
	Predicted float64  `json:"predicted"`
	Corrected float64  `json:"corrected,omitempty"`
	True      float64  `json:"true,omitempty"`
	Error     float64  `json:"error,omitempty"`
}
