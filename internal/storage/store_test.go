package storage

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/phasecast/internal/forecast"
	"github.com/san-kum/phasecast/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		SeriesName: "logistic",
		SeriesLen:  500,
		Tau:        2,
		Dim:        3,
		Model:      "ar",
		TestScore:  0.05,
		Forecast:   []float64{0.1, 0.2, 0.3},
		Records: []forecast.StepRecord{
			{Step: 0, Mode: forecast.ModeObserved, Predicted: 0.1, True: 0.12, Error: 0.02},
			{Step: 1, Mode: forecast.ModeCorrected, Predicted: 0.18, Corrected: 0.2},
			{Step: 2, Mode: forecast.ModeFree, Predicted: 0.3},
		},
		Metrics:       map[string]float64{"rmse": 0.02},
		Lyapunov:      0.4,
		LyapunovClass: "unstable",
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := store.Save(sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "logistic_") {
		t.Errorf("run id should start with the series name: %q", runID)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != runID || meta.Series != "logistic" {
		t.Errorf("metadata identity: %+v", meta)
	}
	if meta.Tau != 2 || meta.Dim != 3 || meta.Model != "ar" {
		t.Errorf("metadata parameters: %+v", meta)
	}
	if meta.Steps != 3 {
		t.Errorf("steps: got %d, want 3", meta.Steps)
	}
	if meta.Metrics["rmse"] != 0.02 {
		t.Errorf("metrics did not survive: %+v", meta.Metrics)
	}
	if meta.LyapunovClass != "unstable" {
		t.Errorf("lyapunov class: got %q", meta.LyapunovClass)
	}
}

func TestLoadForecastRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	want := sampleResult()
	runID, err := store.Save(want)
	if err != nil {
		t.Fatal(err)
	}

	values, records, err := store.LoadForecast(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 3 || len(records) != 3 {
		t.Fatalf("got %d values, %d records", len(values), len(records))
	}
	for i, v := range want.Forecast {
		if math.Abs(values[i]-v) > 1e-6 {
			t.Errorf("value %d: got %f, want %f", i, values[i], v)
		}
	}
	for i, rec := range want.Records {
		got := records[i]
		if got.Step != rec.Step || got.Mode != rec.Mode {
			t.Errorf("record %d: got %+v, want %+v", i, got, rec)
		}
		if math.Abs(got.Predicted-rec.Predicted) > 1e-6 {
			t.Errorf("record %d predicted: got %f", i, got.Predicted)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	first := sampleResult()
	first.SeriesName = "alpha"
	if _, err := store.Save(first); err != nil {
		t.Fatal(err)
	}
	second := sampleResult()
	second.SeriesName = "beta"
	if _, err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Timestamp.Before(runs[1].Timestamp) {
		t.Error("runs are not sorted newest first")
	}
}

func TestListMissingDir(t *testing.T) {
	store := New("/nonexistent/phasecast-test")
	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if runs != nil {
		t.Errorf("expected no runs, got %v", runs)
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("missing_1"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, _, err := store.LoadForecast("missing_1"); err == nil {
		t.Error("expected error for unknown run forecast")
	}
}

func TestSaveUnnamedSeries(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	res := sampleResult()
	res.SeriesName = ""
	runID, err := store.Save(res)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "series_") {
		t.Errorf("fallback run id: got %q", runID)
	}
}
