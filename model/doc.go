// Package model provides the Hertz paraboloidal indentation model used to fit
// AFM force-indentation curves and extract a sample's Young's modulus.
//
// The package separates what a fitting host needs into small pieces:
//
//   - HertzParaboloidalDefaults: the ordered parameter set E, R, nu,
//     contact_point, baseline with initial values and bounds
//   - HertzParaboloidalForce: the pure forward model
//   - HertzParaboloidal.Evaluate: the forward model applied to a parameter
//     set, tolerant of delta sequences in either order
//   - HertzParaboloidal.Residual: observed minus model force, optionally
//     down-weighted near the contact point
//   - HertzParaboloidal.Metadata: keys, names, units and axis labels
//
// # Model
//
//	F = 4/3 * E/(1-nu²) * sqrt(R) * (contact_point - delta)^(3/2) + baseline
//
// Indentation increases as delta decreases below the contact point. Points
// that have not reached the contact point contribute baseline only.
//
// # Usage
//
//	m, _ := model.Get("hertz_para")
//	params := m.Defaults()
//	_ = params.SetValue(model.KeyContactPoint, 2e-6)
//
//	force, err := m.Evaluate(params, delta)
//	resid, err := m.Residual(params, delta, measured, model.WithWeightCP(5e-7))
//
// The fit package drives these functions with a gonum optimizer.
//
// # Concurrency
//
// Models are stateless and safe for concurrent use. A Parameters value
// belongs to one fit at a time; Clone it before sharing.
package model
