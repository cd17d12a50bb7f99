package fit

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/internal/options"
	"github.com/nanite-go/nanite/model"
)

const (
	// DefaultMaxIterations caps the optimizer's major iterations.
	DefaultMaxIterations = 5000
	// DefaultTolerance is the absolute improvement of the normalized objective
	// below which the optimizer counts an iteration as stalled.
	DefaultTolerance = 1e-14

	// convergenceWindow is the number of consecutive stalled iterations that
	// end a fit.
	convergenceWindow = 100
)

// Config holds the settings of one fit.
type Config struct {
	Method        Method
	Residual      model.ResidualConfig
	MaxIterations int
	Tolerance     float64
	Logger        zerolog.Logger
	// Scales overrides the internal scale of individual parameters by key.
	Scales map[string]float64
}

func defaultConfig() Config {
	residual, _ := model.NewResidualConfig()

	return Config{
		Method:        MethodNelderMead,
		Residual:      residual,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Logger:        zerolog.Nop(),
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) (Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithMethod selects the optimizer. The default is MethodNelderMead.
func WithMethod(m Method) Option {
	return options.New(func(cfg *Config) error {
		if !m.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrUnknownMethod, int(m))
		}
		cfg.Method = m

		return nil
	})
}

// WithWeightCP sets the contact-point weighting distance. Zero disables weighting.
func WithWeightCP(dist float64) Option {
	return options.New(func(cfg *Config) error {
		return options.Apply(&cfg.Residual, model.WithWeightCP(dist))
	})
}

// WithWeightFunc replaces the residual weighting function.
func WithWeightFunc(fn model.WeightFunc) Option {
	return options.New(func(cfg *Config) error {
		return options.Apply(&cfg.Residual, model.WithWeightFunc(fn))
	})
}

// WithMaxIterations caps the optimizer's major iterations.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("max iterations must be positive, got %d", n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithTolerance sets the convergence tolerance on the normalized objective.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *Config) error {
		if !(tol > 0) || math.IsInf(tol, 0) {
			return fmt.Errorf("tolerance must be finite and positive, got %g", tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// WithLogger sets the logger. Fits log nothing by default.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Logger = logger
	})
}

// WithScale sets the internal scale of the parameter key. By default a
// parameter is scaled by its initial magnitude, or by the curve's delta or
// force span when it starts at zero.
func WithScale(key string, scale float64) Option {
	return options.New(func(cfg *Config) error {
		if !(scale > 0) || math.IsInf(scale, 0) {
			return fmt.Errorf("scale for %q must be finite and positive, got %g", key, scale)
		}
		if cfg.Scales == nil {
			cfg.Scales = make(map[string]float64)
		}
		cfg.Scales[key] = scale

		return nil
	})
}
