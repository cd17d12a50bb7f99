package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the quality of a fit.
type Stats struct {
	// NData is the number of samples.
	NData int
	// NFree is the number of free parameters.
	NFree int
	// RSquared is the coefficient of determination of the unweighted model.
	RSquared float64
	// RMSE is the root mean square error of the unweighted model, in newtons.
	RMSE float64
	// ChiSqr is the sum of squared weighted residuals.
	ChiSqr float64
	// RedChiSqr is ChiSqr divided by max(1, NData-NFree).
	RedChiSqr float64
	// AIC is the Akaike information criterion.
	AIC float64
	// BIC is the Bayesian information criterion.
	BIC float64
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("Stats{R²: %.6f, RMSE: %.4g, χ²: %.4g, reduced χ²: %.4g, AIC: %.4g, BIC: %.4g}",
		s.RSquared, s.RMSE, s.ChiSqr, s.RedChiSqr, s.AIC, s.BIC)
}

// minChiSqr keeps the information criteria finite for exact fits.
const minChiSqr = 1e-250

func computeStats(observed, predicted, residuals []float64, nFree int) Stats {
	n := len(observed)
	s := Stats{
		NData:    n,
		NFree:    nFree,
		RSquared: calculateRSquared(observed, predicted),
		RMSE:     calculateRMSE(observed, predicted),
		ChiSqr:   floats.Dot(residuals, residuals),
	}
	if n == 0 {
		return s
	}

	s.RedChiSqr = s.ChiSqr / float64(max(1, n-nFree))

	neg2LogLikelihood := float64(n) * math.Log(math.Max(s.ChiSqr, minChiSqr)/float64(n))
	s.AIC = neg2LogLikelihood + 2*float64(nFree)
	s.BIC = neg2LogLikelihood + math.Log(float64(n))*float64(nFree)

	return s
}

// calculateRSquared calculates the coefficient of determination (R²).
//
// Formula: R² = 1 - (SS_res / SS_tot). A constant observation series yields 0.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error.
//
// Formula: RMSE = √(Σ(observed - predicted)² / n)
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	return floats.Distance(observed, predicted, 2) / math.Sqrt(float64(len(observed)))
}
