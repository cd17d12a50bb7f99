// Package config loads fit settings for the nanite command from a file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/fit"
	"github.com/nanite-go/nanite/format"
	"github.com/nanite-go/nanite/model"
)

// Config holds the settings of a fit run.
// Zero values mean "unspecified" and leave library defaults in place.
type Config struct {
	Model         string                       `json:"model" yaml:"model" toml:"model"`
	Method        string                       `json:"method" yaml:"method" toml:"method"`
	WeightCP      *float64                     `json:"weight_cp" yaml:"weight_cp" toml:"weight_cp"`
	MaxIterations int                          `json:"max_iterations" yaml:"max_iterations" toml:"max_iterations"`
	Tolerance     float64                      `json:"tolerance" yaml:"tolerance" toml:"tolerance"`
	Compression   string                       `json:"compression" yaml:"compression" toml:"compression"`
	Parameters    map[string]ParameterOverride `json:"parameters" yaml:"parameters" toml:"parameters"`
}

// ParameterOverride replaces individual fields of a model parameter.
// Nil fields keep the model default.
type ParameterOverride struct {
	Value *float64 `json:"value" yaml:"value" toml:"value"`
	Min   *float64 `json:"min" yaml:"min" toml:"min"`
	Max   *float64 `json:"max" yaml:"max" toml:"max"`
	Vary  *bool    `json:"vary" yaml:"vary" toml:"vary"`
	Scale *float64 `json:"scale" yaml:"scale" toml:"scale"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ModelKey returns the configured model key, defaulting to hertz_para.
func (c Config) ModelKey() string {
	if c.Model == "" {
		return model.HertzParaboloidalKey
	}

	return c.Model
}

// ApplyTo writes the parameter overrides into params.
// Bounds are applied before values so a value may move into new bounds.
func (c Config) ApplyTo(params *model.Parameters) error {
	keys := make([]string, 0, len(c.Parameters))
	for k := range c.Parameters {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		o := c.Parameters[key]
		p, ok := params.Get(key)
		if !ok {
			return fmt.Errorf("%w: %q in config", errs.ErrUnknownParameter, key)
		}

		lo, hi := p.Min, p.Max
		if o.Min != nil {
			lo = *o.Min
		}
		if o.Max != nil {
			hi = *o.Max
		}
		if err := params.SetBounds(key, lo, hi); err != nil {
			return err
		}
		if o.Value != nil {
			if err := params.SetValue(key, *o.Value); err != nil {
				return err
			}
		}
		if o.Vary != nil {
			if err := params.SetVary(key, *o.Vary); err != nil {
				return err
			}
		}
	}

	return nil
}

// FitOptions translates the settings into fit options.
func (c Config) FitOptions() ([]fit.Option, error) {
	var opts []fit.Option

	if c.Method != "" {
		m, err := fit.MethodFromString(c.Method)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fit.WithMethod(m))
	}
	if c.WeightCP != nil {
		opts = append(opts, fit.WithWeightCP(*c.WeightCP))
	}
	if c.MaxIterations != 0 {
		opts = append(opts, fit.WithMaxIterations(c.MaxIterations))
	}
	if c.Tolerance != 0 {
		opts = append(opts, fit.WithTolerance(c.Tolerance))
	}
	for key, o := range c.Parameters {
		if o.Scale != nil {
			opts = append(opts, fit.WithScale(key, *o.Scale))
		}
	}

	// validate eagerly so a bad file fails before any curve is read
	if _, err := fit.NewConfig(opts...); err != nil {
		return nil, err
	}

	return opts, nil
}

// CompressionType returns the archive compression, defaulting to Zstd.
func (c Config) CompressionType() (format.CompressionType, error) {
	if c.Compression == "" {
		return format.CompressionZstd, nil
	}
	ct, ok := format.CompressionTypeFromString(c.Compression)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, c.Compression)
	}

	return ct, nil
}
