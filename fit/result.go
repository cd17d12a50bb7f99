package fit

import (
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/nanite-go/nanite/model"
)

// Result is the outcome of a fit.
type Result struct {
	// Model is the key of the fitted model.
	Model string
	// Method is the optimizer that produced the result.
	Method Method
	// Params holds the best-fit values. Bounds and vary flags match the input.
	Params *model.Parameters
	// Fitted is the model force at Params, aligned with the curve.
	Fitted []float64
	// Residuals are the weighted residuals at Params.
	Residuals []float64
	// Stats summarizes the fit quality.
	Stats Stats
	// Status is the optimizer's termination status.
	Status optimize.Status
	// Iterations is the number of major iterations.
	Iterations int
	// Evaluations is the number of objective evaluations.
	Evaluations int
	// Runtime is the wall time spent in the optimizer.
	Runtime time.Duration
	// Message is set when the optimizer stopped with a recoverable error,
	// such as a failed line search, and the best point so far was kept.
	Message string
}

// String returns a multi-line report of the fitted parameters and statistics.
func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "model: %s, method: %s, status: %s, iterations: %d, evaluations: %d\n",
		r.Model, r.Method, r.Status, r.Iterations, r.Evaluations)
	if r.Params != nil {
		for _, p := range r.Params.All() {
			fmt.Fprintf(&sb, "  %s\n", p)
		}
	}
	sb.WriteString(r.Stats.String())
	if r.Message != "" {
		fmt.Fprintf(&sb, "\nnote: %s", r.Message)
	}

	return sb.String()
}
