// Package storage persists forecast runs under a data directory, one
// subdirectory per run with metadata.json and forecast.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/phasecast/internal/forecast"
	"github.com/san-kum/phasecast/internal/pipeline"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata summarizes a persisted forecast run.
type RunMetadata struct {
	ID            string             `json:"id"`
	Series        string             `json:"series"`
	Timestamp     time.Time          `json:"timestamp"`
	Tau           int                `json:"tau"`
	Dim           int                `json:"dim"`
	Model         string             `json:"model"`
	Steps         int                `json:"steps"`
	TestScore     float64            `json:"test_score"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
	Lyapunov      float64            `json:"lyapunov"`
	LyapunovClass string             `json:"lyapunov_class"`
	Hurst         float64            `json:"hurst,omitempty"`
	HurstClass    string             `json:"hurst_class,omitempty"`
}

// Save persists a pipeline result and returns the generated run id.
func (s *Store) Save(result *pipeline.Result) (string, error) {
	name := result.SeriesName
	if name == "" {
		name = "series"
	}
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Series:        name,
		Timestamp:     time.Now(),
		Tau:           result.Tau,
		Dim:           result.Dim,
		Model:         result.Model,
		Steps:         len(result.Forecast),
		TestScore:     result.TestScore,
		Metrics:       result.Metrics,
		Lyapunov:      result.Lyapunov,
		LyapunovClass: result.LyapunovClass,
		Hurst:         result.Hurst,
		HurstClass:    result.HurstClass,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "forecast.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"step", "value", "mode", "predicted", "corrected", "true", "error"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, value := range result.Forecast {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(value, 'f', 6, 64),
		}
		if i < len(result.Records) {
			rec := result.Records[i]
			row = append(row,
				string(rec.Mode),
				strconv.FormatFloat(rec.Predicted, 'f', 6, 64),
				strconv.FormatFloat(rec.Corrected, 'f', 6, 64),
				strconv.FormatFloat(rec.True, 'f', 6, 64),
				strconv.FormatFloat(rec.Error, 'f', 6, 64),
			)
		} else {
			row = append(row, "", "", "", "", "")
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all persisted runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Load reads the metadata of one run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadForecast reads the per-step forecast values and diagnostic records
// of one run.
func (s *Store) LoadForecast(runID string) ([]float64, []forecast.StepRecord, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "forecast.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("run %s has no forecast rows", runID)
	}

	values := make([]float64, 0, len(rows)-1)
	records := make([]forecast.StepRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 7 {
			continue
		}
		step, _ := strconv.Atoi(row[0])
		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			continue
		}
		values = append(values, value)

		rec := forecast.StepRecord{Step: step, Mode: forecast.StepMode(row[2])}
		rec.Predicted, _ = strconv.ParseFloat(row[3], 64)
		rec.Corrected, _ = strconv.ParseFloat(row[4], 64)
		rec.True, _ = strconv.ParseFloat(row[5], 64)
		rec.Error, _ = strconv.ParseFloat(row[6], 64)
		records = append(records, rec)
	}
	return values, records, nil
}
