// Package pipeline orchestrates the full analysis and forecasting run:
// raw series in, embedding parameters, trained model, corrected multi-step
// forecast and diagnostics out. Everything is deterministic for a fixed
// configuration and input.
package pipeline

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/san-kum/phasecast/internal/analysis"
	"github.com/san-kum/phasecast/internal/config"
	"github.com/san-kum/phasecast/internal/embed"
	"github.com/san-kum/phasecast/internal/forecast"
	"github.com/san-kum/phasecast/internal/generate"
	"github.com/san-kum/phasecast/internal/metrics"
	"github.com/san-kum/phasecast/internal/optim"
	"github.com/san-kum/phasecast/internal/series"
)

// Result collects everything a pipeline run produces.
type Result struct {
	SeriesName string                `json:"series"`
	SeriesLen  int                   `json:"series_len"`
	Tau        int                   `json:"tau"`
	Dim        int                   `json:"dim"`
	DatasetLen int                   `json:"dataset_len"`
	TrainLen   int                   `json:"train_len"`
	TestLen    int                   `json:"test_len"`
	Model      string                `json:"model"`
	TestScore  float64               `json:"test_score"` // one-step RMSE, scaled units
	Forecast   []float64             `json:"forecast"`   // original units
	Records    []forecast.StepRecord `json:"records"`
	Metrics    map[string]float64    `json:"metrics,omitempty"` // vs reference, original units

	Lyapunov      float64 `json:"lyapunov"`
	LyapunovClass string  `json:"lyapunov_class"`
	Hurst         float64 `json:"hurst,omitempty"`
	HurstClass    string  `json:"hurst_class,omitempty"`
}

// Pipeline runs the configured stages against a series.
type Pipeline struct {
	cfg *config.Config
	log zerolog.Logger
}

// New builds a pipeline over a configuration.
func New(cfg *config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// LoadSeries resolves the primary series from the configured source.
func (p *Pipeline) LoadSeries() (*series.Series, error) {
	src := p.cfg.Source
	switch src.Kind {
	case "generate":
		gen, err := generate.Get(src.Generator, src.Seed)
		if err != nil {
			return nil, err
		}
		n := src.Length
		if n <= 0 {
			n = config.DefaultLength
		}
		return series.New(gen.Generate(n), src.Generator), nil
	case "csv":
		opts := series.DefaultCSVOptions()
		opts.Column = src.Column
		return series.LoadCSV(src.Path, opts)
	case "stdin":
		opts := series.DefaultCSVOptions()
		opts.Column = src.Column
		return series.LoadReader(os.Stdin, opts)
	default:
		return nil, fmt.Errorf("unknown source kind: %s", src.Kind)
	}
}

// LoadReference resolves the optional correction series. Returns nil
// without error when none is configured.
func (p *Pipeline) LoadReference() (*series.Series, error) {
	if p.cfg.Forecast.Reference == "" {
		return nil, nil
	}
	opts := series.DefaultCSVOptions()
	opts.Column = p.cfg.Forecast.RefColumn
	return series.LoadCSV(p.cfg.Forecast.Reference, opts)
}

// Run executes estimation, embedding, training, forecasting and
// diagnostics. ref may be nil.
func (p *Pipeline) Run(s *series.Series, ref *series.Series) (*Result, error) {
	tau, dim, err := p.estimateParams(s)
	if err != nil {
		return nil, err
	}

	ds, scaler, err := embed.BuildDataset(s, tau, dim)
	if err != nil {
		return nil, err
	}
	train, test := ds.Split(p.cfg.Forecast.SplitRatio)
	p.log.Debug().
		Int("rows", ds.Len()).
		Int("train", train.Len()).
		Int("test", test.Len()).
		Msg("embedding dataset built")

	model, score, err := p.trainModel(train, test)
	if err != nil {
		return nil, err
	}
	p.log.Info().
		Str("model", model.Name()).
		Float64("test_rmse", score).
		Msg("model trained")

	predictions, records, err := p.forecast(s, ref, model, scaler, dim, tau)
	if err != nil {
		return nil, err
	}

	res := &Result{
		SeriesName: s.Name(),
		SeriesLen:  s.Len(),
		Tau:        tau,
		Dim:        dim,
		DatasetLen: ds.Len(),
		TrainLen:   train.Len(),
		TestLen:    test.Len(),
		Model:      model.Name(),
		TestScore:  score,
		Forecast:   predictions,
		Records:    records,
	}

	if ref != nil && ref.Len() >= len(predictions) {
		res.Metrics = metrics.Evaluate(predictions, ref.Values())
	}

	p.diagnose(s, res)
	return res, nil
}

func (p *Pipeline) estimateParams(s *series.Series) (tau, dim int, err error) {
	emb := p.cfg.Embedding

	tau = emb.Tau
	if tau <= 0 {
		maxLag := emb.MaxLag
		if maxLag >= s.Len() {
			maxLag = s.Len() - 1
		}
		tau, err = embed.EstimateDelay(s, maxLag)
		if err != nil {
			return 0, 0, fmt.Errorf("delay estimation: %w", err)
		}
		p.log.Info().Int("tau", tau).Msg("embedding delay estimated")
	}

	dim = emb.Dim
	if dim <= 0 {
		dim, err = embed.EstimateDimension(s, tau, emb.MaxDim)
		if err != nil {
			return 0, 0, fmt.Errorf("dimension estimation: %w", err)
		}
		p.log.Info().Int("dim", dim).Msg("embedding dimension estimated")
	}

	if err := (embed.Params{Tau: tau, Dim: dim}).Validate(s.Len()); err != nil {
		return 0, 0, err
	}
	return tau, dim, nil
}

func (p *Pipeline) trainModel(train, test *embed.Dataset) (forecast.Forecaster, float64, error) {
	name := p.cfg.Forecast.Model
	if name == ModelAuto {
		candidates := make([]forecast.Forecaster, 0, len(modelOrder))
		for _, n := range ModelNames() {
			m, err := NewModel(n, p.cfg.Forecast)
			if err != nil {
				return nil, 0, err
			}
			candidates = append(candidates, m)
		}
		model, score, err := optim.SelectModel(candidates, train, test)
		if err != nil {
			return nil, 0, err
		}
		return model, score, nil
	}

	model, err := NewModel(name, p.cfg.Forecast)
	if err != nil {
		return nil, 0, err
	}
	if err := model.Fit(train); err != nil {
		return nil, 0, err
	}
	return model, optim.Score(model, test), nil
}

// forecast runs the corrected multi-step loop starting from the tail of
// the series. The reference series, when present, is scaled through the
// same transform as the training data so the corrector operates entirely
// in scaled units.
func (p *Pipeline) forecast(s, ref *series.Series, model forecast.Forecaster, scaler *embed.Scaler, dim, tau int) ([]float64, []forecast.StepRecord, error) {
	scaled := scaler.ScaleAll(s.Values())

	window := make([]float64, dim)
	start := len(scaled) - 1 - (dim-1)*tau
	for j := 0; j < dim; j++ {
		window[j] = scaled[start+j*tau]
	}

	var reference []float64
	if ref != nil {
		reference = scaler.ScaleAll(ref.Values())
	}

	corrector := forecast.NewCorrector(model, window, reference, scaler)
	corrector.OnlineUpdate = p.cfg.Forecast.OnlineUpdate

	predictions, err := corrector.Forecast(p.cfg.Forecast.Steps)
	if err != nil {
		return nil, nil, err
	}

	records := corrector.Records()
	for _, rec := range records {
		event := p.log.Debug().Int("step", rec.Step).Str("mode", string(rec.Mode)).
			Float64("predicted", rec.Predicted)
		switch rec.Mode {
		case forecast.ModeObserved:
			event = event.Float64("true", rec.True).Float64("error", rec.Error)
		case forecast.ModeCorrected:
			event = event.Float64("corrected", rec.Corrected)
		}
		event.Msg("forecast step")
	}
	return predictions, records, nil
}

func (p *Pipeline) diagnose(s *series.Series, res *Result) {
	lyap := analysis.Lyapunov(s.Values())
	res.Lyapunov = lyap.Exponent
	res.LyapunovClass = lyap.Classification()

	if h, err := analysis.Hurst(s.Values()); err == nil {
		res.Hurst = h
		res.HurstClass = analysis.ClassifyHurst(h)
	} else {
		p.log.Debug().Err(err).Msg("hurst estimate skipped")
	}
}
