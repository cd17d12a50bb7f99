package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nanite-go/nanite/curve"
	"github.com/nanite-go/nanite/internal/config"
	"github.com/nanite-go/nanite/model"
)

// app is the state shared by all subcommands after flag parsing.
type app struct {
	configPath string
	logLevel   string
	modelKey   string

	cfg    config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "nanite",
		Short:         "Fit contact-mechanics models to AFM force curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "fit configuration file (.yaml, .yml, .json or .toml)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error, disabled)")
	flags.StringVar(&a.modelKey, "model", "", "model key (default from config, else "+model.HertzParaboloidalKey+")")

	root.AddCommand(
		newModelsCmd(a),
		newEvalCmd(a),
		newFitCmd(a),
		newPackCmd(a),
		newUnpackCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	level, err := zerolog.ParseLevel(strings.ToLower(a.logLevel))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.logger.Debug().Str("path", a.configPath).Msg("config loaded")
	}
	if a.modelKey != "" {
		a.cfg.Model = a.modelKey
	}

	return nil
}

// resolveModel returns the configured model.
func (a *app) resolveModel() (model.Model, error) {
	return model.Get(a.cfg.ModelKey())
}

// parameters returns the model defaults with config overrides applied.
func (a *app) parameters(m model.Model) (*model.Parameters, error) {
	params := m.Defaults()
	if err := a.cfg.ApplyTo(params); err != nil {
		return nil, err
	}

	return params, nil
}

func readCurveCSV(path string) (curve.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return curve.Curve{}, err
	}
	defer f.Close()

	c, err := curve.ReadCSV(f)
	if err != nil {
		return curve.Curve{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}
