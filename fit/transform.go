package fit

import (
	"math"

	"github.com/nanite-go/nanite/curve"
	"github.com/nanite-go/nanite/model"
)

type boundKind uint8

const (
	unbounded boundKind = iota
	lowerBounded
	upperBounded
	bothBounded
)

// freeParam maps one free parameter between its external value and the
// unbounded, scaled coordinate the optimizer works in.
type freeParam struct {
	key   string
	scale float64
	kind  boundKind
	// lo and hi are the bounds divided by scale.
	lo, hi float64
}

func newFreeParam(p model.Parameter, scale float64) freeParam {
	fp := freeParam{
		key:   p.Key,
		scale: scale,
		lo:    p.Min / scale,
		hi:    p.Max / scale,
	}

	finiteLo := !math.IsInf(p.Min, 0)
	finiteHi := !math.IsInf(p.Max, 0)
	switch {
	case finiteLo && finiteHi:
		fp.kind = bothBounded
	case finiteLo:
		fp.kind = lowerBounded
	case finiteHi:
		fp.kind = upperBounded
	default:
		fp.kind = unbounded
	}

	return fp
}

// toInternal converts an in-bounds external value to optimizer space.
func (fp freeParam) toInternal(v float64) float64 {
	q := v / fp.scale

	switch fp.kind {
	case bothBounded:
		s := 2*(q-fp.lo)/(fp.hi-fp.lo) - 1
		return math.Asin(math.Max(-1, math.Min(1, s)))
	case lowerBounded:
		return math.Sqrt(math.Max(0, (q-fp.lo+1)*(q-fp.lo+1)-1))
	case upperBounded:
		return math.Sqrt(math.Max(0, (fp.hi-q+1)*(fp.hi-q+1)-1))
	default:
		return q
	}
}

// toExternal converts an optimizer coordinate back to a parameter value.
// The result always lies within the parameter's bounds.
func (fp freeParam) toExternal(x float64) float64 {
	var q float64

	switch fp.kind {
	case bothBounded:
		q = fp.lo + (math.Sin(x)+1)*(fp.hi-fp.lo)/2
	case lowerBounded:
		q = fp.lo - 1 + math.Sqrt(x*x+1)
	case upperBounded:
		q = fp.hi + 1 - math.Sqrt(x*x+1)
	default:
		q = x
	}

	return q * fp.scale
}

// defaultScale picks the scale of p when none is configured.
func defaultScale(p model.Parameter, span curve.Span) float64 {
	if v := math.Abs(p.Value); v > 0 && !math.IsInf(v, 0) {
		return v
	}

	var s float64
	switch p.Unit {
	case "m":
		s = span.DeltaRange()
	case "N":
		s = span.ForceRange()
	}
	if s > 0 && !math.IsInf(s, 0) {
		return s
	}

	return 1
}

// freeParameters returns the transforms of every free parameter in order.
// Parameters with Min == Max cannot move and are skipped.
func freeParameters(params *model.Parameters, span curve.Span, scales map[string]float64) []freeParam {
	var out []freeParam
	for key, p := range params.All() {
		if !p.Vary || p.Min == p.Max {
			continue
		}

		scale, ok := scales[key]
		if !ok {
			scale = defaultScale(p, span)
		}
		out = append(out, newFreeParam(p, scale))
	}

	return out
}
