package fit

import (
	"context"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/optimize"
)

// progressInterval is how often, in major iterations, progress is logged.
const progressInterval = 250

// ctxRecorder stops the optimizer once ctx is done and logs progress.
type ctxRecorder struct {
	ctx    context.Context //nolint:containedctx // lifetime of a single Minimize call
	logger zerolog.Logger
}

var _ optimize.Recorder = (*ctxRecorder)(nil)

func newRecorder(ctx context.Context, logger zerolog.Logger) *ctxRecorder {
	return &ctxRecorder{ctx: ctx, logger: logger}
}

func (r *ctxRecorder) Init() error {
	return r.ctx.Err()
}

func (r *ctxRecorder) Record(loc *optimize.Location, op optimize.Operation, stats *optimize.Stats) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}

	if op == optimize.MajorIteration && stats.MajorIterations%progressInterval == 0 {
		r.logger.Debug().
			Int("iteration", stats.MajorIterations).
			Int("evaluations", stats.FuncEvaluations).
			Float64("objective", loc.F).
			Msg("fit progress")
	}

	return nil
}
