package model

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanite-go/nanite/errs"
)

func hertzParams(t *testing.T, e, r, nu, cp, baseline float64) *Parameters {
	t.Helper()

	ps := HertzParaboloidalDefaults()
	require.NoError(t, ps.SetValue(KeyYoungsModulus, e))
	require.NoError(t, ps.SetValue(KeyTipRadius, r))
	require.NoError(t, ps.SetValue(KeyPoissonRatio, nu))
	require.NoError(t, ps.SetValue(KeyContactPoint, cp))
	require.NoError(t, ps.SetValue(KeyBaseline, baseline))

	return ps
}

func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

func TestHertzParaboloidalDefaults(t *testing.T) {
	ps := HertzParaboloidalDefaults()

	require.Equal(t, []string{"E", "R", "nu", "contact_point", "baseline"}, ps.Keys())
	require.Equal(t, []string{"E", "contact_point", "baseline"}, ps.FreeKeys())

	tests := []struct {
		key      string
		value    float64
		min, max float64
		vary     bool
	}{
		{"E", 3000, 0, math.Inf(1), true},
		{"R", 10e-6, 0, math.Inf(1), false},
		{"nu", 0.5, 0, 0.5, false},
		{"contact_point", 0, math.Inf(-1), math.Inf(1), true},
		{"baseline", 0, math.Inf(-1), math.Inf(1), true},
	}
	for i, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, ok := ps.Get(tt.key)
			require.True(t, ok)
			require.Equal(t, tt.value, p.Value)
			require.Equal(t, tt.min, p.Min)
			require.Equal(t, tt.max, p.Max)
			require.Equal(t, tt.vary, p.Vary)
			require.Equal(t, HertzParameterNames()[i], p.Name)
			require.Equal(t, HertzParameterUnits()[i], p.Unit)
		})
	}
}

func TestHertzParaboloidalDefaults_FreshCopies(t *testing.T) {
	a := HertzParaboloidalDefaults()
	require.NoError(t, a.SetValue(KeyYoungsModulus, 1))

	b := HertzParaboloidalDefaults()
	e, err := b.Value(KeyYoungsModulus)
	require.NoError(t, err)
	require.Equal(t, 3000.0, e)
}

func TestHertzParaboloidalForce_ConcreteScenario(t *testing.T) {
	delta := []float64{-1e-6, 0, 1e-6}
	force := HertzParaboloidalForce(delta, 3000, 10e-6, 0.5, 0, 0)

	want := 4.0 / 3.0 * 3000 / (1 - 0.25) * math.Sqrt(10e-6) * math.Pow(1e-6, 1.5)
	require.Len(t, force, 3)
	require.InEpsilon(t, want, force[0], 1e-12)
	require.InDelta(t, 1.6865e-8, force[0], 1e-12)
	require.Equal(t, 0.0, force[1])
	require.Equal(t, 0.0, force[2])
}

func TestHertzParaboloidalForce_NoContactIsBaseline(t *testing.T) {
	const cp, baseline = 1.5e-6, -3.2e-10
	delta := linspace(cp, cp+5e-6, 50)

	for _, f := range HertzParaboloidalForce(delta, 4200, 5e-6, 0.45, cp, baseline) {
		require.Equal(t, baseline, f)
	}
}

func TestHertzParaboloidalForce_MonotonicInIndentation(t *testing.T) {
	const cp = 2e-6
	// decreasing delta below cp means increasing indentation
	delta := linspace(cp-1e-9, cp-3e-6, 200)
	force := HertzParaboloidalForce(delta, 3000, 10e-6, 0.5, cp, 1e-9)

	for i := 1; i < len(force); i++ {
		require.Greater(t, force[i], force[i-1], "index %d", i)
	}
}

func TestHertzParaboloidalForce_LinearInE(t *testing.T) {
	delta := linspace(1e-6, -2e-6, 64)
	base := HertzParaboloidalForce(delta, 1000, 10e-6, 0.5, 0, 0)

	for _, k := range []float64{0.5, 2, 7.25, 1e3} {
		scaled := HertzParaboloidalForce(delta, 1000*k, 10e-6, 0.5, 0, 0)
		for i := range delta {
			want := base[i] * k
			if want == 0 {
				require.Zero(t, scaled[i])
				continue
			}
			require.InEpsilon(t, want, scaled[i], 1e-9)
		}
	}
}

func TestHertzParaboloidalForce_BaselineIsAdditive(t *testing.T) {
	delta := []float64{1e-6, 0, -5e-7, -2e-6}
	plain := HertzParaboloidalForce(delta, 3000, 10e-6, 0.5, 0, 0)
	shifted := HertzParaboloidalForce(delta, 3000, 10e-6, 0.5, 0, 1e-9)

	for i := range delta {
		require.InDelta(t, plain[i]+1e-9, shifted[i], 1e-20)
	}
}

func TestHertzParaboloidalForce_OutOfDomainPropagates(t *testing.T) {
	delta := []float64{-1e-6}

	require.True(t, math.IsNaN(HertzParaboloidalForce(delta, 3000, -1e-6, 0.5, 0, 0)[0]))
	require.True(t, math.IsInf(HertzParaboloidalForce(delta, 3000, 10e-6, 1, 0, 0)[0], 0))
}

func TestHertzParaboloidalForce_DoesNotMutateInput(t *testing.T) {
	delta := []float64{1e-6, 0, -1e-6}
	orig := slices.Clone(delta)
	_ = HertzParaboloidalForce(delta, 3000, 10e-6, 0.5, 0, 0)
	require.Equal(t, orig, delta)
}

func TestHertzParaboloidal_EvaluateReversalInvariant(t *testing.T) {
	m := NewHertzParaboloidal()
	params := hertzParams(t, 5000, 8e-6, 0.4, 1e-6, 3e-10)

	descending := linspace(4e-6, -3e-6, 101)
	ascending := slices.Clone(descending)
	slices.Reverse(ascending)

	fDesc, err := m.Evaluate(params, descending)
	require.NoError(t, err)
	fAsc, err := m.Evaluate(params, ascending)
	require.NoError(t, err)

	reversed := slices.Clone(fAsc)
	slices.Reverse(reversed)
	require.Equal(t, fDesc, reversed)

	// ascending input must not be reordered in place
	require.Less(t, ascending[0], ascending[len(ascending)-1])
}

func TestHertzParaboloidal_EvaluateMatchesForwardModel(t *testing.T) {
	m := NewHertzParaboloidal()
	params := hertzParams(t, 3000, 10e-6, 0.5, 0, 0)
	delta := []float64{-1e-6, 0, 1e-6}

	got, err := m.Evaluate(params, delta)
	require.NoError(t, err)
	require.Equal(t, HertzParaboloidalForce(delta, 3000, 10e-6, 0.5, 0, 0), got)

	// ascending input: result aligned with the original order
	require.Greater(t, got[0], 0.0)
	require.Zero(t, got[2])
}

func TestHertzParaboloidal_EvaluateEdgeCases(t *testing.T) {
	m := NewHertzParaboloidal()
	params := HertzParaboloidalDefaults()

	t.Run("empty", func(t *testing.T) {
		out, err := m.Evaluate(params, nil)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("single point", func(t *testing.T) {
		out, err := m.Evaluate(params, []float64{-1e-6})
		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("missing parameter", func(t *testing.T) {
		ps := NewParameters()
		require.NoError(t, ps.Add(Parameter{Key: KeyYoungsModulus, Value: 1, Max: math.Inf(1)}))
		_, err := m.Evaluate(ps, []float64{0})
		require.ErrorIs(t, err, errs.ErrUnknownParameter)
	})
}

func TestHertzParaboloidal_Validate(t *testing.T) {
	m := NewHertzParaboloidal()
	require.NoError(t, m.Validate(m.Defaults()))

	tests := []struct {
		name string
		key  string
		v    float64
	}{
		{"negative E", KeyYoungsModulus, -1},
		{"zero R", KeyTipRadius, 0},
		{"negative R", KeyTipRadius, -1e-6},
		{"nu above half", KeyPoissonRatio, 0.6},
		{"negative nu", KeyPoissonRatio, -0.1},
		{"NaN contact point", KeyContactPoint, math.NaN()},
		{"infinite baseline", KeyBaseline, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := m.Defaults()
			require.NoError(t, ps.SetValue(tt.key, tt.v))
			require.ErrorIs(t, m.Validate(ps), errs.ErrParameterDomain)
		})
	}

	t.Run("value outside its own bounds", func(t *testing.T) {
		ps := m.Defaults()
		require.NoError(t, ps.SetBounds(KeyContactPoint, -1e-6, 1e-6))
		require.NoError(t, ps.SetValue(KeyContactPoint, 2e-6))
		require.ErrorIs(t, m.Validate(ps), errs.ErrParameterDomain)
	})
}

func BenchmarkHertzParaboloidalForce(b *testing.B) {
	delta := linspace(2e-6, -4e-6, 4096)

	b.ReportAllocs()
	for b.Loop() {
		_ = HertzParaboloidalForce(delta, 3000, 10e-6, 0.5, 0, 0)
	}
}

func BenchmarkHertzParaboloidal_EvaluateAscending(b *testing.B) {
	m := NewHertzParaboloidal()
	params := HertzParaboloidalDefaults()
	delta := linspace(-4e-6, 2e-6, 4096)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = m.Evaluate(params, delta)
	}
}
