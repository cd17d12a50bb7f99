package fit

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/optimize"

	"github.com/nanite-go/nanite/errs"
)

// Method selects the optimization algorithm.
type Method int

const (
	// MethodNelderMead is the derivative-free downhill simplex. It is the default.
	MethodNelderMead Method = iota
	// MethodLBFGS is limited-memory BFGS with finite-difference gradients.
	MethodLBFGS
	// MethodBFGS is BFGS with finite-difference gradients.
	MethodBFGS
	// MethodGradientDescent is steepest descent with finite-difference gradients.
	MethodGradientDescent
)

var methodNames = map[Method]string{
	MethodNelderMead:      "nelder-mead",
	MethodLBFGS:           "lbfgs",
	MethodBFGS:            "bfgs",
	MethodGradientDescent: "gradient-descent",
}

// String returns the method name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return "unknown"
}

// IsValid reports whether m is a known method.
func (m Method) IsValid() bool {
	_, ok := methodNames[m]
	return ok
}

var methodFromString = map[string]Method{
	"nelder-mead":      MethodNelderMead,
	"neldermead":       MethodNelderMead,
	"lbfgs":            MethodLBFGS,
	"bfgs":             MethodBFGS,
	"gradient-descent": MethodGradientDescent,
	"gradient":         MethodGradientDescent,
}

// MethodFromString returns the Method for a name such as "nelder-mead" or
// "lbfgs". Names are case-insensitive.
func MethodFromString(name string) (Method, error) {
	if m, ok := methodFromString[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}

	return -1, fmt.Errorf("%w: %q. Supported methods: nelder-mead, lbfgs, bfgs, gradient-descent",
		errs.ErrUnknownMethod, name)
}

// usesGradient reports whether the method needs Problem.Grad.
func (m Method) usesGradient() bool {
	return m != MethodNelderMead
}

func (m Method) optimizer() optimize.Method {
	switch m {
	case MethodLBFGS:
		return &optimize.LBFGS{}
	case MethodBFGS:
		return &optimize.BFGS{}
	case MethodGradientDescent:
		return &optimize.GradientDescent{}
	default:
		return &optimize.NelderMead{}
	}
}
