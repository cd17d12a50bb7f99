package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightCP(t *testing.T) {
	const cp, dist = 1e-6, 5e-7
	delta := []float64{3e-6, 1.5e-6, 1.25e-6, 1e-6, 0.75e-6, 0.5e-6, -1e-6}

	w := WeightCP(cp, delta, dist)
	require.Len(t, w, len(delta))

	require.Equal(t, 1.0, w[0])
	require.Equal(t, 1.0, w[1], "exactly weight_dist away is unweighted")
	require.InDelta(t, 0.5, w[2], 1e-12)
	require.Equal(t, MinContactWeight, w[3])
	require.InDelta(t, 0.5, w[4], 1e-12)
	require.Equal(t, 1.0, w[5])
	require.Equal(t, 1.0, w[6])

	for _, v := range w {
		require.Greater(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestWeightCP_Disabled(t *testing.T) {
	for _, dist := range []float64{0, -1} {
		for _, v := range WeightCP(0, []float64{0, 1e-9, -1e-9}, dist) {
			require.Equal(t, 1.0, v)
		}
	}
}

func TestWeightCP_SymmetricAroundContactPoint(t *testing.T) {
	const cp, dist = 2e-6, 1e-6
	w := WeightCP(cp, []float64{cp - 3e-7, cp + 3e-7}, dist)
	require.InDelta(t, w[0], w[1], 1e-12)
}
