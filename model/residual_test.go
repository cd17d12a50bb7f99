package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanite-go/nanite/errs"
)

func syntheticForce(t *testing.T, params *Parameters, delta []float64, offset float64) []float64 {
	t.Helper()

	force, err := NewHertzParaboloidal().Evaluate(params, delta)
	require.NoError(t, err)
	for i := range force {
		force[i] += offset * float64(i%3-1)
	}

	return force
}

func TestResidual_UnweightedEqualsDifference(t *testing.T) {
	m := NewHertzParaboloidal()
	params := hertzParams(t, 4000, 10e-6, 0.5, 1e-6, 0)
	delta := linspace(3e-6, -2e-6, 77)
	force := syntheticForce(t, hertzParams(t, 4500, 10e-6, 0.5, 1.1e-6, 1e-10), delta, 1e-10)

	resid, err := m.Residual(params, delta, force, WithWeightCP(0))
	require.NoError(t, err)

	predicted, err := m.Evaluate(params, delta)
	require.NoError(t, err)
	for i := range delta {
		require.Equal(t, force[i]-predicted[i], resid[i])
	}

	same, err := m.Residual(params, delta, force, WithoutWeighting())
	require.NoError(t, err)
	require.Equal(t, resid, same)
}

func TestResidual_DefaultWeighting(t *testing.T) {
	m := NewHertzParaboloidal()
	params := hertzParams(t, 3000, 10e-6, 0.5, 1e-6, 0)
	delta := linspace(-2e-6, 3e-6, 51)
	force := syntheticForce(t, hertzParams(t, 3300, 10e-6, 0.5, 1e-6, 0), delta, 2e-10)

	plain, err := m.Residual(params, delta, force, WithoutWeighting())
	require.NoError(t, err)
	weighted, err := m.Residual(params, delta, force)
	require.NoError(t, err)

	weights := WeightCP(1e-6, delta, DefaultWeightCP)
	for i := range delta {
		require.Equal(t, plain[i]*weights[i], weighted[i])
	}
}

func TestResidual_CustomWeightFunc(t *testing.T) {
	m := NewHertzParaboloidal()
	params := hertzParams(t, 3000, 10e-6, 0.5, 0, 0)
	delta := []float64{1e-6, 0, -1e-6}
	force := []float64{1e-9, 1e-9, 1e-9}

	var gotCP, gotDist float64
	half := func(cp float64, d []float64, dist float64) []float64 {
		gotCP, gotDist = cp, dist
		w := make([]float64, len(d))
		for i := range w {
			w[i] = 0.5
		}

		return w
	}

	resid, err := m.Residual(params, delta, force, WithWeightFunc(half), WithWeightCP(2e-7))
	require.NoError(t, err)
	require.Equal(t, 0.0, gotCP)
	require.Equal(t, 2e-7, gotDist)

	plain, err := m.Residual(params, delta, force, WithoutWeighting())
	require.NoError(t, err)
	for i := range resid {
		require.Equal(t, plain[i]*0.5, resid[i])
	}
}

func TestResidual_Errors(t *testing.T) {
	m := NewHertzParaboloidal()
	params := HertzParaboloidalDefaults()

	_, err := m.Residual(params, nil, nil)
	require.ErrorIs(t, err, errs.ErrEmptyCurve)

	_, err = m.Residual(params, []float64{0, 1}, []float64{0})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = m.Residual(params, []float64{0}, []float64{0}, WithWeightCP(-1))
	require.Error(t, err)

	short := func(float64, []float64, float64) []float64 { return []float64{1} }
	_, err = m.Residual(params, []float64{0, 1}, []float64{0, 0}, WithWeightFunc(short))
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestNewResidualConfig(t *testing.T) {
	cfg, err := NewResidualConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultWeightCP, cfg.WeightCP)
	require.NotNil(t, cfg.Weight)

	cfg, err = NewResidualConfig(WithWeightFunc(nil))
	require.NoError(t, err)
	require.NotNil(t, cfg.Weight)
}

func TestResidualWithConfig_NilWeightFallsBack(t *testing.T) {
	m := NewHertzParaboloidal()
	params := HertzParaboloidalDefaults()
	delta := []float64{1e-7, -1e-7}
	force := []float64{1e-9, 1e-9}

	got, err := ResidualWithConfig(m, params, delta, force, ResidualConfig{WeightCP: DefaultWeightCP})
	require.NoError(t, err)

	want, err := m.Residual(params, delta, force)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
