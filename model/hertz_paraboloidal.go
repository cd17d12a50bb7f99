package model

import (
	"fmt"
	"math"
	"slices"

	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/internal/pool"
)

// hertzDefault holds the default value, bounds and vary flag of one parameter.
type hertzDefault struct {
	value, min, max float64
	vary            bool
}

// Aligned with hertzParameterKeys.
var hertzDefaults = [5]hertzDefault{
	{value: 3e3, min: 0, max: math.Inf(1), vary: true},
	{value: 10e-6, min: 0, max: math.Inf(1), vary: false},
	{value: 0.5, min: 0, max: 0.5, vary: false},
	{value: 0, min: math.Inf(-1), max: math.Inf(1), vary: true},
	{value: 0, min: math.Inf(-1), max: math.Inf(1), vary: true},
}

// HertzParaboloidalDefaults returns a fresh parameter set with the model's
// initial values and bounds, in the order E, R, nu, contact_point, baseline.
// R and nu are fixed; the other three are free.
func HertzParaboloidalDefaults() *Parameters {
	ps := NewParameters()
	for i, key := range hertzParameterKeys {
		d := hertzDefaults[i]
		ps.mustAdd(Parameter{
			Key:   key,
			Name:  hertzParameterNames[i],
			Unit:  hertzParameterUnits[i],
			Value: d.value,
			Min:   d.min,
			Max:   d.max,
			Vary:  d.vary,
		})
	}

	return ps
}

// HertzParaboloidalForce computes the Hertz force for a paraboloidal indenter:
//
//	F = 4/3 * E/(1-nu²) * sqrt(R) * (contactPoint - delta)^(3/2) + baseline
//
// Indentation grows as delta decreases below contactPoint. Points with
// delta >= contactPoint are not in contact and get exactly baseline.
//
// The inputs are not validated: R < 0 or nu outside [0, 0.5] produce NaN or
// Inf values rather than an error. Use HertzParaboloidal.Validate to check a
// parameter set up front.
func HertzParaboloidalForce(delta []float64, e, r, nu, contactPoint, baseline float64) []float64 {
	aa := 4.0 / 3.0 * e / (1 - nu*nu) * math.Sqrt(r)
	force := make([]float64, len(delta))
	for i, d := range delta {
		root := contactPoint - d
		bb := 0.0
		if root > 0 {
			bb = root * math.Sqrt(root)
		}
		force[i] = aa*bb + baseline
	}

	return force
}

// HertzParaboloidal is the Hertz contact model for a paraboloidal
// (spherical) indenter tip.
type HertzParaboloidal struct{}

var _ Model = HertzParaboloidal{}

// NewHertzParaboloidal creates the Hertz paraboloidal model.
func NewHertzParaboloidal() HertzParaboloidal {
	return HertzParaboloidal{}
}

// Key returns "hertz_para".
func (HertzParaboloidal) Key() string { return HertzParaboloidalKey }

// Name returns "parabolic indenter (Hertz)".
func (HertzParaboloidal) Name() string { return HertzParaboloidalName }

// Defaults returns a fresh default parameter set.
func (HertzParaboloidal) Defaults() *Parameters { return HertzParaboloidalDefaults() }

// Metadata returns a copy of the model's descriptive constants.
func (HertzParaboloidal) Metadata() Metadata { return hertzMetadata() }

type hertzArgs struct {
	e, r, nu, contactPoint, baseline float64
}

func hertzArgsFrom(params *Parameters) (hertzArgs, error) {
	var a hertzArgs
	targets := [5]*float64{&a.e, &a.r, &a.nu, &a.contactPoint, &a.baseline}
	for i, key := range hertzParameterKeys {
		v, err := params.Value(key)
		if err != nil {
			return hertzArgs{}, err
		}
		*targets[i] = v
	}

	return a, nil
}

// Evaluate computes the model force for every delta using the values in params.
//
// delta may be in either order. When delta[0] < delta[len-1] the force is
// computed over a reversed copy and reversed back, so the result is always
// aligned with the input. delta itself is never modified.
//
// The only error is errs.ErrUnknownParameter for a missing key.
func (HertzParaboloidal) Evaluate(params *Parameters, delta []float64) ([]float64, error) {
	a, err := hertzArgsFrom(params)
	if err != nil {
		return nil, err
	}

	n := len(delta)
	if n == 0 || delta[0] >= delta[n-1] {
		return HertzParaboloidalForce(delta, a.e, a.r, a.nu, a.contactPoint, a.baseline), nil
	}

	reversed, cleanup := pool.GetFloat64Slice(n)
	defer cleanup()
	for i, d := range delta {
		reversed[n-1-i] = d
	}

	force := HertzParaboloidalForce(reversed, a.e, a.r, a.nu, a.contactPoint, a.baseline)
	slices.Reverse(force)

	return force, nil
}

// Residual returns force - Evaluate(params, delta), scaled by contact-point
// weights unless weighting is disabled. See ResidualOption for the defaults.
func (h HertzParaboloidal) Residual(params *Parameters, delta, force []float64, opts ...ResidualOption) ([]float64, error) {
	return residual(h, params, delta, force, opts...)
}

// Validate checks that params hold every model parameter with a physically
// meaningful value: E >= 0, R > 0, 0 <= nu <= 0.5 and finite contact point
// and baseline. It also checks that each value lies within its own bounds.
func (HertzParaboloidal) Validate(params *Parameters) error {
	a, err := hertzArgsFrom(params)
	if err != nil {
		return err
	}

	switch {
	case math.IsNaN(a.e) || math.IsInf(a.e, 0) || a.e < 0:
		return fmt.Errorf("%w: E=%g must be finite and non-negative", errs.ErrParameterDomain, a.e)
	case math.IsNaN(a.r) || math.IsInf(a.r, 0) || a.r <= 0:
		return fmt.Errorf("%w: R=%g must be finite and positive", errs.ErrParameterDomain, a.r)
	case math.IsNaN(a.nu) || a.nu < 0 || a.nu > 0.5:
		return fmt.Errorf("%w: nu=%g must be within [0, 0.5]", errs.ErrParameterDomain, a.nu)
	case math.IsNaN(a.contactPoint) || math.IsInf(a.contactPoint, 0):
		return fmt.Errorf("%w: contact_point=%g must be finite", errs.ErrParameterDomain, a.contactPoint)
	case math.IsNaN(a.baseline) || math.IsInf(a.baseline, 0):
		return fmt.Errorf("%w: baseline=%g must be finite", errs.ErrParameterDomain, a.baseline)
	}

	for key, p := range params.All() {
		if !p.InBounds() {
			return fmt.Errorf("%w: %s=%g outside [%g, %g]", errs.ErrParameterDomain, key, p.Value, p.Min, p.Max)
		}
	}

	return nil
}
