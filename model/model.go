package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nanite-go/nanite/errs"
)

// Model is an indentation model that a fitting host can drive.
type Model interface {
	// Key returns the registry identifier.
	Key() string
	// Name returns the display name.
	Name() string
	// Defaults returns a fresh parameter set with initial values and bounds.
	Defaults() *Parameters
	// Evaluate computes the model force for each delta, aligned with delta.
	Evaluate(params *Parameters, delta []float64) ([]float64, error)
	// Residual computes the (optionally weighted) observed minus model force.
	Residual(params *Parameters, delta, force []float64, opts ...ResidualOption) ([]float64, error)
	// Validate checks params against the model's physical domain.
	Validate(params *Parameters) error
	// Metadata returns descriptive constants for reporting.
	Metadata() Metadata
}

var registry = map[string]Model{
	HertzParaboloidalKey: NewHertzParaboloidal(),
}

// Get returns the registered model for key. Keys are case-insensitive.
func Get(key string) (Model, error) {
	if m, ok := registry[strings.ToLower(strings.TrimSpace(key))]; ok {
		return m, nil
	}

	return nil, fmt.Errorf("%w: %q. Supported models: %s", errs.ErrUnknownModel, key, strings.Join(Keys(), ", "))
}

// Keys returns the registered model keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// ResidualWithConfig is like Model.Residual but takes an already-built
// configuration. Fit loops use it to avoid re-applying options on every
// evaluation.
func ResidualWithConfig(m Model, params *Parameters, delta, force []float64, cfg ResidualConfig) ([]float64, error) {
	if cfg.Weight == nil {
		cfg.Weight = WeightCP
	}

	return residualWithConfig(m, params, delta, force, cfg)
}
