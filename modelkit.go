// Package modelkit wires user-supplied epidemiological forecasting models
// into command-line tools compatible with the disease-forecasting platform.
// A model implements Train and Predict over time-indexed datasets; the kit
// supplies CSV loading, configuration parsing, prediction sample format
// conversion, and CLI dispatch around it.
package modelkit

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/epiforecast/modelkit/frame"
	"github.com/epiforecast/modelkit/timeseries"
)

// Model is the contract a forecasting model exposes to the platform. Train
// fits the model to historical surveillance data. Predict produces a nested
// samples frame (see the samples package) with one row per forecast unit,
// using historic data for context and the future dataset for the periods
// and covariates to forecast. The cfg mapping carries the model's parsed
// configuration file, or nil when none was given.
type Model interface {
	Train(data *timeseries.Dataset, cfg map[string]any) error
	Predict(historic, future *timeseries.Dataset, cfg map[string]any) (*frame.Frame, error)
}

// SaveModel serializes a trained model to a JSON blob at path. The model's
// exported fields define what is persisted.
func SaveModel(path string, m Model) error {
	bytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize model, %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("unable to write model to %s, %w", path, err)
	}
	return nil
}

// LoadModel restores a model previously written by SaveModel into m, which
// must be a pointer to the same concrete type.
func LoadModel(path string, m Model) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read model from %s, %w", path, err)
	}
	if err := json.Unmarshal(bytes, m); err != nil {
		return fmt.Errorf("unable to parse model from %s, %w", path, err)
	}
	return nil
}
