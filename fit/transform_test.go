package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanite-go/nanite/curve"
	"github.com/nanite-go/nanite/model"
)

func TestFreeParam_RoundTrip(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name     string
		min, max float64
		scale    float64
		values   []float64
		kind     boundKind
	}{
		{"unbounded", -inf, inf, 4e-6, []float64{-1e-6, 0, 3e-7}, unbounded},
		{"lower", 0, inf, 3000, []float64{0, 1, 3000, 1e6}, lowerBounded},
		{"upper", -inf, 5, 2, []float64{-100, 0, 4.9, 5}, upperBounded},
		{"both", 0, 0.5, 0.5, []float64{0, 0.1, 0.25, 0.5}, bothBounded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := newFreeParam(model.Parameter{Key: "p", Min: tt.min, Max: tt.max}, tt.scale)
			require.Equal(t, tt.kind, fp.kind)

			for _, v := range tt.values {
				got := fp.toExternal(fp.toInternal(v))
				require.InDelta(t, v, got, 1e-9*math.Max(1, math.Abs(v)), "value %g", v)
			}
		})
	}
}

func TestFreeParam_ExternalStaysInBounds(t *testing.T) {
	params := []model.Parameter{
		{Key: "lower", Min: 0, Max: math.Inf(1)},
		{Key: "upper", Min: math.Inf(-1), Max: 1},
		{Key: "both", Min: -2, Max: 3},
	}

	for _, p := range params {
		fp := newFreeParam(p, 1.5)
		for x := -50.0; x <= 50; x += 0.37 {
			v := fp.toExternal(x)
			require.GreaterOrEqual(t, v, p.Min-1e-12, "%s at x=%g", p.Key, x)
			require.LessOrEqual(t, v, p.Max+1e-12, "%s at x=%g", p.Key, x)
		}
	}
}

func TestDefaultScale(t *testing.T) {
	span := curve.Span{DeltaMin: -2e-6, DeltaMax: 2e-6, ForceMin: 0, ForceMax: 5e-8}

	tests := []struct {
		name string
		p    model.Parameter
		want float64
	}{
		{"nonzero value", model.Parameter{Value: -3000, Unit: "Pa"}, 3000},
		{"zero meters", model.Parameter{Unit: "m"}, 4e-6},
		{"zero newtons", model.Parameter{Unit: "N"}, 5e-8},
		{"zero dimensionless", model.Parameter{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, defaultScale(tt.p, span), 1e-20)
		})
	}

	require.Equal(t, 1.0, defaultScale(model.Parameter{Unit: "N"}, curve.Span{}))
}

func TestFreeParameters(t *testing.T) {
	params := model.HertzParaboloidalDefaults()
	span := curve.Span{DeltaMin: -1e-6, DeltaMax: 1e-6, ForceMin: 0, ForceMax: 1e-8}

	free := freeParameters(params, span, map[string]float64{model.KeyBaseline: 1e-9})
	require.Len(t, free, 3)

	require.Equal(t, model.KeyYoungsModulus, free[0].key)
	require.Equal(t, 3000.0, free[0].scale)
	require.Equal(t, lowerBounded, free[0].kind)

	require.Equal(t, model.KeyContactPoint, free[1].key)
	require.InDelta(t, 2e-6, free[1].scale, 1e-20)
	require.Equal(t, unbounded, free[1].kind)

	require.Equal(t, model.KeyBaseline, free[2].key)
	require.Equal(t, 1e-9, free[2].scale)
}
