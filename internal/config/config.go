package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxLag       = 20
	DefaultMaxDim       = 10
	DefaultSteps        = 20
	DefaultSplitRatio   = 0.7
	DefaultLearningRate = 0.01
	DefaultNeighbors    = 5
	DefaultLength       = 500
)

// Config is the explicit configuration object for a full pipeline run.
// It replaces any interactive state: everything the deterministic core
// needs is declared here, and CLI flags override file values.
type Config struct {
	Source    SourceConfig    `yaml:"source"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Forecast  ForecastConfig  `yaml:"forecast"`
}

// SourceConfig declares where the primary series comes from.
type SourceConfig struct {
	Kind      string `yaml:"kind"`      // "csv", "stdin" or "generate"
	Path      string `yaml:"path"`      // csv file path
	Column    string `yaml:"column"`    // csv column name (optional)
	Generator string `yaml:"generator"` // generator name for kind=generate
	Length    int    `yaml:"length"`    // generated series length
	Seed      int64  `yaml:"seed"`      // generator seed
}

// EmbeddingConfig controls delay/dimension estimation. Zero Tau or Dim
// means estimate from the data.
type EmbeddingConfig struct {
	MaxLag int `yaml:"max_lag"`
	MaxDim int `yaml:"max_dim"`
	Tau    int `yaml:"tau"`
	Dim    int `yaml:"dim"`
}

// ForecastConfig controls model choice and the multi-step loop.
type ForecastConfig struct {
	Model        string  `yaml:"model"` // "ar", "knn", "naive" or "auto"
	Steps        int     `yaml:"steps"`
	SplitRatio   float64 `yaml:"split_ratio"`
	Reference    string  `yaml:"reference"`     // csv path of the correction series
	RefColumn    string  `yaml:"ref_column"`    // column in the reference csv
	OnlineUpdate bool    `yaml:"online_update"` // one model update per observed step
	LearningRate float64 `yaml:"learning_rate"` // ar online step size
	Neighbors    int     `yaml:"neighbors"`     // knn k
}

// DefaultConfig returns a runnable configuration over the chaotic
// logistic-map generator.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:      "generate",
			Generator: "logistic",
			Length:    DefaultLength,
		},
		Embedding: EmbeddingConfig{
			MaxLag: DefaultMaxLag,
			MaxDim: DefaultMaxDim,
		},
		Forecast: ForecastConfig{
			Model:        "ar",
			Steps:        DefaultSteps,
			SplitRatio:   DefaultSplitRatio,
			LearningRate: DefaultLearningRate,
			Neighbors:    DefaultNeighbors,
		},
	}
}

// Load reads a config file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a config file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
