package config

// Presets are named, ready-to-run configurations over the synthetic
// generators. They exist so demos and tests exercise known regimes
// without a config file.
var Presets = map[string]*Config{
	"chaotic": {
		Source:    SourceConfig{Kind: "generate", Generator: "logistic", Length: 500},
		Embedding: EmbeddingConfig{MaxLag: 20, MaxDim: 10},
		Forecast: ForecastConfig{
			Model: "knn", Steps: 20, SplitRatio: 0.7,
			LearningRate: DefaultLearningRate, Neighbors: DefaultNeighbors,
		},
	},
	"smooth": {
		Source:    SourceConfig{Kind: "generate", Generator: "sine", Length: 400, Seed: 7},
		Embedding: EmbeddingConfig{MaxLag: 30, MaxDim: 8},
		Forecast: ForecastConfig{
			Model: "ar", Steps: 50, SplitRatio: 0.7,
			LearningRate: DefaultLearningRate, Neighbors: DefaultNeighbors,
		},
	},
	"random-walk": {
		Source:    SourceConfig{Kind: "generate", Generator: "randomwalk", Length: 600, Seed: 11},
		Embedding: EmbeddingConfig{MaxLag: 20, MaxDim: 6},
		Forecast: ForecastConfig{
			Model: "naive", Steps: 20, SplitRatio: 0.7,
			LearningRate: DefaultLearningRate, Neighbors: DefaultNeighbors,
		},
	},
	"adaptive": {
		Source:    SourceConfig{Kind: "generate", Generator: "henon", Length: 500},
		Embedding: EmbeddingConfig{MaxLag: 20, MaxDim: 10},
		Forecast: ForecastConfig{
			Model: "ar", Steps: 30, SplitRatio: 0.7, OnlineUpdate: true,
			LearningRate: DefaultLearningRate, Neighbors: DefaultNeighbors,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
