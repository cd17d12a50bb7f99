package fit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/nanite-go/nanite/curve"
	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/model"
)

// Fit adjusts the free parameters of params so that m matches c in the
// least-squares sense.
//
// params is cloned and never modified; nil means m.Defaults(). The starting
// values must pass m.Validate. The fit stops when the objective stalls, the
// iteration limit is reached or ctx is done.
//
// Returns:
//   - errs.ErrEmptyCurve for a curve without samples
//   - errs.ErrParameterDomain or errs.ErrUnknownParameter from validation
//   - errs.ErrNoFreeParameters when nothing can vary
//   - ctx.Err() when the context ends the fit
func Fit(ctx context.Context, m model.Model, c curve.Curve, params *model.Parameters, opts ...Option) (*Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, errs.ErrEmptyCurve
	}
	if params == nil {
		params = m.Defaults()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	work := params.Clone()
	if err := m.Validate(work); err != nil {
		return nil, fmt.Errorf("fit %s: %w", m.Key(), err)
	}

	span := c.Span()
	free := freeParameters(work, span, cfg.Scales)
	if len(free) == 0 {
		return nil, fmt.Errorf("fit %s: %w", m.Key(), errs.ErrNoFreeParameters)
	}

	obj := newObjective(m, work, c, free, cfg.Residual)
	x0 := make([]float64, len(free))
	for i, fp := range free {
		v, _ := work.Value(fp.key)
		x0[i] = fp.toInternal(v)
	}
	f0 := obj.eval(x0)
	if obj.err != nil {
		return nil, fmt.Errorf("fit %s: %w", m.Key(), obj.err)
	}
	if math.IsInf(f0, 1) {
		return nil, fmt.Errorf("fit %s: %w: model is not finite at the initial values", m.Key(), errs.ErrParameterDomain)
	}

	problem := optimize.Problem{Func: obj.eval}
	if cfg.Method.usesGradient() {
		problem.Grad = func(grad, x []float64) {
			fd.Gradient(grad, obj.eval, x, nil)
		}
	}

	settings := newSettings(ctx, cfg)

	logger := cfg.Logger.With().Str("model", m.Key()).Str("method", cfg.Method.String()).Logger()
	logger.Debug().Strs("free", work.FreeKeys()).Int("points", c.Len()).Msg("fit started")

	start := time.Now()
	res, err := optimize.Minimize(problem, x0, settings, cfg.Method.optimizer())
	elapsed := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("fit %s: %w", m.Key(), ctxErr)
	}
	if res == nil {
		return nil, fmt.Errorf("fit %s: %w", m.Key(), err)
	}

	var message string
	if err != nil {
		if math.IsNaN(res.F) || math.IsInf(res.F, 0) || len(res.X) != len(free) {
			return nil, fmt.Errorf("fit %s: %w", m.Key(), err)
		}
		message = err.Error()
		logger.Warn().Err(err).Msg("optimizer stopped early, keeping best point")
	}

	obj.apply(res.X)
	best := work.Clone()

	fitted, err := m.Evaluate(best, c.Delta())
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", m.Key(), err)
	}
	residuals, err := model.ResidualWithConfig(m, best, c.Delta(), c.Force(), cfg.Residual)
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", m.Key(), err)
	}

	result := &Result{
		Model:       m.Key(),
		Method:      cfg.Method,
		Params:      best,
		Fitted:      fitted,
		Residuals:   residuals,
		Stats:       computeStats(c.Force(), fitted, residuals, len(free)),
		Status:      res.Status,
		Iterations:  res.MajorIterations,
		Evaluations: res.FuncEvaluations,
		Runtime:     elapsed,
		Message:     message,
	}

	logger.Info().
		Str("status", res.Status.String()).
		Int("iterations", result.Iterations).
		Int("evaluations", result.Evaluations).
		Float64("r_squared", result.Stats.RSquared).
		Dur("runtime", elapsed).
		Msg("fit finished")

	return result, nil
}

// objective evaluates the normalized sum of squared residuals at an internal
// coordinate. It writes into params, so one objective serves one goroutine.
type objective struct {
	m        model.Model
	params   *model.Parameters
	delta    []float64
	force    []float64
	free     []freeParam
	residual model.ResidualConfig
	// norm is 1 / (force span² · n).
	norm float64
	err  error
}

func newObjective(m model.Model, params *model.Parameters, c curve.Curve, free []freeParam, rc model.ResidualConfig) *objective {
	forceSpan := c.Span().ForceRange()
	if !(forceSpan > 0) || math.IsInf(forceSpan, 0) {
		forceSpan = 1
	}

	return &objective{
		m:        m,
		params:   params,
		delta:    c.Delta(),
		force:    c.Force(),
		free:     free,
		residual: rc,
		norm:     1 / (forceSpan * forceSpan * float64(c.Len())),
	}
}

func (o *objective) apply(x []float64) {
	for i, fp := range o.free {
		_ = o.params.SetValue(fp.key, fp.toExternal(x[i]))
	}
}

func (o *objective) eval(x []float64) float64 {
	o.apply(x)

	r, err := model.ResidualWithConfig(o.m, o.params, o.delta, o.force, o.residual)
	if err != nil {
		o.err = errors.Join(o.err, err)
		return math.Inf(1)
	}

	sum := 0.0
	for _, v := range r {
		sum += v * v
	}
	sum *= o.norm
	if math.IsNaN(sum) {
		return math.Inf(1)
	}

	return sum
}

// newSettings stops the optimizer after cfg.MaxIterations major iterations,
// or once the objective improves by less than cfg.Tolerance over
// convergenceWindow consecutive iterations.
func newSettings(ctx context.Context, cfg Config) *optimize.Settings {
	return &optimize.Settings{
		MajorIterations: cfg.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.Tolerance,
			Iterations: convergenceWindow,
		},
		Recorder: newRecorder(ctx, cfg.Logger),
	}
}
