package model

import (
	"math"
)

// DefaultWeightCP is the default distance from the contact point, in meters,
// within which residuals are down-weighted.
const DefaultWeightCP = 5e-7

// MinContactWeight is the smallest weight WeightCP assigns. It keeps the
// weight of a point sitting exactly on the contact point strictly positive.
const MinContactWeight = 1e-3

// WeightFunc returns one weight in (0, 1] per delta value. Points within
// weightDist of contactPoint get weights below 1.
type WeightFunc func(contactPoint float64, delta []float64, weightDist float64) []float64

// WeightCP weights points linearly by their distance from the contact point.
//
// A point at distance d = |delta - contactPoint| gets d/weightDist when
// d < weightDist and 1 otherwise, floored at MinContactWeight. A non-positive
// weightDist disables weighting and yields all ones.
func WeightCP(contactPoint float64, delta []float64, weightDist float64) []float64 {
	weights := make([]float64, len(delta))
	for i, d := range delta {
		dist := math.Abs(d - contactPoint)
		if weightDist <= 0 || dist >= weightDist {
			weights[i] = 1
			continue
		}
		weights[i] = math.Max(dist/weightDist, MinContactWeight)
	}

	return weights
}

var _ WeightFunc = WeightCP
