package model

import "slices"

// Metadata describes a model for reporting and UI labeling.
//
// The ParameterKeys, ParameterNames and ParameterUnits slices are aligned
// positionally with the model's default parameter order.
type Metadata struct {
	Key            string
	Name           string
	ParameterKeys  []string
	ParameterNames []string
	ParameterUnits []string
	ValidAxesX     []string
	ValidAxesY     []string
	Doc            string
}

// Parameter keys of the Hertz paraboloidal model.
const (
	KeyYoungsModulus = "E"
	KeyTipRadius     = "R"
	KeyPoissonRatio  = "nu"
	KeyContactPoint  = "contact_point"
	KeyBaseline      = "baseline"
)

const (
	// HertzParaboloidalKey identifies the Hertz paraboloidal model in the registry.
	HertzParaboloidalKey = "hertz_para"
	// HertzParaboloidalName is the display name of the Hertz paraboloidal model.
	HertzParaboloidalName = "parabolic indenter (Hertz)"
)

// Fixed-size arrays so the tables cannot be appended to or resliced by callers;
// accessors hand out copies.
var (
	hertzParameterKeys = [5]string{
		KeyYoungsModulus, KeyTipRadius, KeyPoissonRatio, KeyContactPoint, KeyBaseline,
	}
	hertzParameterNames = [5]string{
		"Young's Modulus", "Tip Radius", "Poisson's Ratio", "Contact Point", "Force Baseline",
	}
	hertzParameterUnits = [5]string{"Pa", "m", "", "m", "N"}

	hertzValidAxesX = [1]string{"tip position"}
	hertzValidAxesY = [1]string{"force"}
)

// HertzParaboloidalDoc documents the Hertz paraboloidal model.
const HertzParaboloidalDoc = `Hertz model for a paraboloidal indenter

    F = 4/3 * E/(1-nu^2) * sqrt(R) * delta^(3/2)

Parameters
    E              Young's modulus [N/m²]
    delta          indentation [m]
    R              tip radius [m]
    nu             Poisson's ratio
    contact_point  indentation offset [m]
    baseline       force offset [N]

Returns
    F              force [N]

Notes
    The original model reads F = 4/3 * E/(1-nu^2) * sqrt(2k) * delta^(3/2),
    where k is defined by the paraboloid equation rho^2 = 4kz.

    The Hertz model assumes that the sample is isotropic, is a linear elastic
    solid and extends infinitely in one half space, that the indenter is not
    deformable and that there are no additional interactions between sample
    and indenter. The radius of a spherical cell is assumed to be larger than
    the indentation.

References
    Sneddon (1965)`

// HertzParameterKeys returns the parameter keys in default order.
func HertzParameterKeys() []string { return slices.Clone(hertzParameterKeys[:]) }

// HertzParameterNames returns the parameter display names in default order.
func HertzParameterNames() []string { return slices.Clone(hertzParameterNames[:]) }

// HertzParameterUnits returns the parameter units in default order.
func HertzParameterUnits() []string { return slices.Clone(hertzParameterUnits[:]) }

func hertzMetadata() Metadata {
	return Metadata{
		Key:            HertzParaboloidalKey,
		Name:           HertzParaboloidalName,
		ParameterKeys:  HertzParameterKeys(),
		ParameterNames: HertzParameterNames(),
		ParameterUnits: HertzParameterUnits(),
		ValidAxesX:     slices.Clone(hertzValidAxesX[:]),
		ValidAxesY:     slices.Clone(hertzValidAxesY[:]),
		Doc:            HertzParaboloidalDoc,
	}
}

// Unit returns the unit of key, or "" when key is not a parameter of the model.
func (m Metadata) Unit(key string) string {
	if i := slices.Index(m.ParameterKeys, key); i >= 0 && i < len(m.ParameterUnits) {
		return m.ParameterUnits[i]
	}

	return ""
}

// SupportsAxes reports whether the model can be fitted to a curve plotted
// with the given x and y axis labels.
func (m Metadata) SupportsAxes(x, y string) bool {
	return slices.Contains(m.ValidAxesX, x) && slices.Contains(m.ValidAxesY, y)
}
