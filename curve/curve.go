package curve

import (
	"fmt"
	"math"
	"slices"

	"github.com/nanite-go/nanite/errs"
	"github.com/nanite-go/nanite/internal/hash"
)

// Curve is an immutable force-indentation curve.
type Curve struct {
	delta []float64
	force []float64
}

// New creates a curve from copies of delta and force.
func New(delta, force []float64) (Curve, error) {
	if len(delta) == 0 {
		return Curve{}, errs.ErrEmptyCurve
	}
	if len(delta) != len(force) {
		return Curve{}, fmt.Errorf("%w: delta has %d points, force has %d",
			errs.ErrLengthMismatch, len(delta), len(force))
	}

	return Curve{delta: slices.Clone(delta), force: slices.Clone(force)}, nil
}

// Len returns the number of samples.
func (c Curve) Len() int {
	return len(c.delta)
}

// Delta returns the tip-position column. The slice must not be modified.
func (c Curve) Delta() []float64 {
	return c.delta
}

// Force returns the force column. The slice must not be modified.
func (c Curve) Force() []float64 {
	return c.force
}

// Ascending reports whether delta increases from the first to the last sample.
func (c Curve) Ascending() bool {
	n := len(c.delta)

	return n > 0 && c.delta[0] < c.delta[n-1]
}

// Reversed returns a copy of the curve with the sample order reversed.
func (c Curve) Reversed() Curve {
	r := Curve{delta: slices.Clone(c.delta), force: slices.Clone(c.force)}
	slices.Reverse(r.delta)
	slices.Reverse(r.force)

	return r
}

// ID returns an xxHash64 over the delta column followed by the force column.
// Curves with identical samples in identical order share an ID.
func (c Curve) ID() uint64 {
	return hash.Float64s(c.delta, c.force)
}

// Span is the value range of both columns.
type Span struct {
	DeltaMin, DeltaMax float64
	ForceMin, ForceMax float64
}

// DeltaRange returns DeltaMax - DeltaMin.
func (s Span) DeltaRange() float64 {
	return s.DeltaMax - s.DeltaMin
}

// ForceRange returns ForceMax - ForceMin.
func (s Span) ForceRange() float64 {
	return s.ForceMax - s.ForceMin
}

// Span returns the min and max of both columns. NaN samples are skipped.
func (c Curve) Span() Span {
	s := Span{
		DeltaMin: math.Inf(1), DeltaMax: math.Inf(-1),
		ForceMin: math.Inf(1), ForceMax: math.Inf(-1),
	}
	for i := range c.delta {
		if d := c.delta[i]; !math.IsNaN(d) {
			s.DeltaMin = min(s.DeltaMin, d)
			s.DeltaMax = max(s.DeltaMax, d)
		}
		if f := c.force[i]; !math.IsNaN(f) {
			s.ForceMin = min(s.ForceMin, f)
			s.ForceMax = max(s.ForceMax, f)
		}
	}

	return s
}
