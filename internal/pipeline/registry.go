package pipeline

import (
	"fmt"

	"github.com/san-kum/phasecast/internal/config"
	"github.com/san-kum/phasecast/internal/forecast"
	"github.com/san-kum/phasecast/internal/models"
)

// ModelAuto selects among all registered models on the held-out split.
const ModelAuto = "auto"

var modelBuilders = map[string]func(config.ForecastConfig) forecast.Forecaster{
	"ar": func(cfg config.ForecastConfig) forecast.Forecaster {
		return models.NewAR(cfg.LearningRate)
	},
	"knn": func(cfg config.ForecastConfig) forecast.Forecaster {
		return models.NewKNN(cfg.Neighbors)
	},
	"naive": func(cfg config.ForecastConfig) forecast.Forecaster {
		return models.NewNaive()
	},
}

// modelOrder keeps listing and auto-selection deterministic.
var modelOrder = []string{"ar", "knn", "naive"}

// NewModel builds an untrained forecaster by name.
func NewModel(name string, cfg config.ForecastConfig) (forecast.Forecaster, error) {
	build, ok := modelBuilders[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (available: %v)", name, ModelNames())
	}
	return build(cfg), nil
}

// ModelNames lists the registered model names in stable order.
func ModelNames() []string {
	names := make([]string, len(modelOrder))
	copy(names, modelOrder)
	return names
}
