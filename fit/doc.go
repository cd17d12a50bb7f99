// Package fit fits indentation models to force curves.
//
// Fit drives a gonum optimizer over the free parameters of a model.Parameters
// set. Bounded parameters are mapped to an unbounded internal space with the
// MINUIT transforms (sin for two-sided bounds, sqrt for one-sided bounds), and
// every internal coordinate is divided by a per-parameter scale so that Young's
// modulus (kPa), contact point (µm) and baseline (nN) move on comparable
// footing. The objective is the mean squared weighted residual, normalized by
// the force span of the curve.
//
// Basic usage:
//
//	m, _ := model.Get("hertz_para")
//	params := m.Defaults()
//	res, err := fit.Fit(ctx, m, c, params, fit.WithMethod(fit.MethodNelderMead))
//	if err != nil {
//	    return err
//	}
//	e, _ := res.Params.Value(model.KeyYoungsModulus)
//
// The input parameter set is never modified; Result.Params holds the best
// values with the input's bounds and vary flags.
package fit
