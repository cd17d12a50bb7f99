package model

import (
	"fmt"
	"math"

	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/internal/options"
)

// ResidualConfig controls how residuals are weighted.
type ResidualConfig struct {
	// WeightCP is the distance from the contact point within which residuals
	// are down-weighted. Zero disables weighting.
	WeightCP float64
	// Weight computes the per-point weights.
	Weight WeightFunc
}

func defaultResidualConfig() ResidualConfig {
	return ResidualConfig{
		WeightCP: DefaultWeightCP,
		Weight:   WeightCP,
	}
}

// ResidualOption is a functional option for ResidualConfig.
type ResidualOption = options.Option[*ResidualConfig]

// WithWeightCP sets the contact-point weighting distance in meters.
// Zero disables weighting; negative or non-finite values are rejected.
func WithWeightCP(dist float64) ResidualOption {
	return options.New(func(cfg *ResidualConfig) error {
		if dist < 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
			return fmt.Errorf("weight_cp must be a finite non-negative distance, got %g", dist)
		}
		cfg.WeightCP = dist

		return nil
	})
}

// WithoutWeighting disables contact-point weighting.
func WithoutWeighting() ResidualOption {
	return options.NoError(func(cfg *ResidualConfig) {
		cfg.WeightCP = 0
	})
}

// WithWeightFunc replaces the weighting function. A nil fn restores WeightCP.
func WithWeightFunc(fn WeightFunc) ResidualOption {
	return options.NoError(func(cfg *ResidualConfig) {
		if fn == nil {
			fn = WeightCP
		}
		cfg.Weight = fn
	})
}

// NewResidualConfig applies opts over the defaults (5e-7 m, WeightCP).
func NewResidualConfig(opts ...ResidualOption) (ResidualConfig, error) {
	cfg := defaultResidualConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return ResidualConfig{}, err
	}

	return cfg, nil
}

type evaluator interface {
	Evaluate(params *Parameters, delta []float64) ([]float64, error)
}

func residual(m evaluator, params *Parameters, delta, force []float64, opts ...ResidualOption) ([]float64, error) {
	cfg, err := NewResidualConfig(opts...)
	if err != nil {
		return nil, err
	}

	return residualWithConfig(m, params, delta, force, cfg)
}

func residualWithConfig(m evaluator, params *Parameters, delta, force []float64, cfg ResidualConfig) ([]float64, error) {
	if len(delta) == 0 {
		return nil, errs.ErrEmptyCurve
	}
	if len(delta) != len(force) {
		return nil, fmt.Errorf("%w: %d delta vs %d force", errs.ErrLengthMismatch, len(delta), len(force))
	}

	resid, err := m.Evaluate(params, delta)
	if err != nil {
		return nil, err
	}
	for i := range resid {
		resid[i] = force[i] - resid[i]
	}

	if cfg.WeightCP == 0 {
		return resid, nil
	}

	cp, err := params.Value(KeyContactPoint)
	if err != nil {
		return nil, err
	}
	weights := cfg.Weight(cp, delta, cfg.WeightCP)
	if len(weights) != len(resid) {
		return nil, fmt.Errorf("%w: weight function returned %d weights for %d points",
			errs.ErrLengthMismatch, len(weights), len(resid))
	}
	for i, w := range weights {
		resid[i] *= w
	}

	return resid, nil
}
