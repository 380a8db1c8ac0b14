package embed

import (
	"github.com/san-kum/phasecast/internal/series"
)

// Dataset is an ordered delay-embedded training set in scaled units.
// Row i pairs a window of Dim scaled samples strided by Tau with the
// scaled sample that follows the window. Order equals the temporal
// order of the source series.
type Dataset struct {
	Inputs  [][]float64
	Targets []float64
	Params  Params
}

// Len returns the number of (window, target) rows.
func (d *Dataset) Len() int { return len(d.Targets) }

// Split cuts the dataset at a positional ratio into a train prefix and a
// test suffix. No shuffling: order is temporal and must stay that way.
func (d *Dataset) Split(ratio float64) (train, test *Dataset) {
	cut := int(float64(d.Len()) * ratio)
	if cut < 0 {
		cut = 0
	}
	if cut > d.Len() {
		cut = d.Len()
	}
	train = &Dataset{Inputs: d.Inputs[:cut], Targets: d.Targets[:cut], Params: d.Params}
	test = &Dataset{Inputs: d.Inputs[cut:], Targets: d.Targets[cut:], Params: d.Params}
	return train, test
}

// BuildDataset constructs the delay-embedded dataset for (series, tau, m)
// along with the scaler fitted on the whole series. The scaler is the one
// instance every downstream consumer must reuse to invert predictions.
//
// The dataset has exactly len(series) - m*tau rows.
func BuildDataset(s *series.Series, tau, m int) (*Dataset, *Scaler, error) {
	p := Params{Tau: tau, Dim: m}
	if err := p.Validate(s.Len()); err != nil {
		return nil, nil, err
	}

	scaler := FitScaler(s.Values())
	scaled := scaler.ScaleAll(s.Values())

	span := m * tau
	count := len(scaled) - span
	ds := &Dataset{
		Inputs:  make([][]float64, 0, count),
		Targets: make([]float64, 0, count),
		Params:  p,
	}
	for i := 0; i < count; i++ {
		window := make([]float64, m)
		for j := 0; j < m; j++ {
			window[j] = scaled[i+j*tau]
		}
		ds.Inputs = append(ds.Inputs, window)
		ds.Targets = append(ds.Targets, scaled[i+span])
	}
	return ds, scaler, nil
}
