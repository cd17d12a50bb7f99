package model

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/nanite-go/nanite/errs"
)

// Parameter is a named, bounded fit parameter.
//
// Min and Max are inclusive; use math.Inf for an open side. Vary reports
// whether an optimizer may change Value.
type Parameter struct {
	// Key is the identifier used for lookups, e.g. "contact_point".
	Key string
	// Name is the human-readable label, e.g. "Contact Point".
	Name string
	// Unit is the physical unit of Value; empty for dimensionless parameters.
	Unit string
	// Value is the initial value before a fit and the best value after it.
	Value float64
	// Min is the lower bound.
	Min float64
	// Max is the upper bound.
	Max float64
	// Vary marks the parameter as free (true) or fixed (false).
	Vary bool
}

// InBounds reports whether Value lies within [Min, Max].
func (p Parameter) InBounds() bool {
	return p.Value >= p.Min && p.Value <= p.Max
}

// Clamp limits v to [Min, Max].
func (p Parameter) Clamp(v float64) float64 {
	return math.Min(math.Max(v, p.Min), p.Max)
}

// String returns a compact representation used in logs and CLI output.
func (p Parameter) String() string {
	state := "fixed"
	if p.Vary {
		state = "free"
	}

	return fmt.Sprintf("%s=%g %s [%g, %g] (%s)", p.Key, p.Value, p.Unit, p.Min, p.Max, state)
}

// Parameters is an ordered set of fit parameters with key lookup.
//
// Iteration follows insertion order, which for a model's defaults matches the
// order of its metadata key, name and unit lists. A Parameters value is not
// safe for concurrent mutation; clone it before handing it to another fit.
type Parameters struct {
	items []Parameter
	index map[string]int
}

// NewParameters creates an empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{index: make(map[string]int)}
}

// Add appends p to the set.
//
// Returns:
//   - errs.ErrDuplicateParameter if p.Key is already present
//   - errs.ErrInvalidBounds if p.Min > p.Max or a bound is NaN
func (ps *Parameters) Add(p Parameter) error {
	if _, exists := ps.index[p.Key]; exists {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateParameter, p.Key)
	}
	if math.IsNaN(p.Min) || math.IsNaN(p.Max) || p.Min > p.Max {
		return fmt.Errorf("%w: %q has min %g > max %g", errs.ErrInvalidBounds, p.Key, p.Min, p.Max)
	}

	ps.index[p.Key] = len(ps.items)
	ps.items = append(ps.items, p)

	return nil
}

// mustAdd is used when building sets from static tables.
func (ps *Parameters) mustAdd(p Parameter) {
	if err := ps.Add(p); err != nil {
		panic(err)
	}
}

// Len returns the number of parameters.
func (ps *Parameters) Len() int {
	return len(ps.items)
}

// Get returns the parameter stored under key.
func (ps *Parameters) Get(key string) (Parameter, bool) {
	i, ok := ps.index[key]
	if !ok {
		return Parameter{}, false
	}

	return ps.items[i], true
}

// Value returns the current value of key.
func (ps *Parameters) Value(key string) (float64, error) {
	i, ok := ps.index[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownParameter, key)
	}

	return ps.items[i].Value, nil
}

// SetValue sets the value of key. Bounds are not enforced here; the fit host
// keeps free parameters inside them.
func (ps *Parameters) SetValue(key string, v float64) error {
	i, ok := ps.index[key]
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownParameter, key)
	}
	ps.items[i].Value = v

	return nil
}

// SetVary marks key as free or fixed.
func (ps *Parameters) SetVary(key string, vary bool) error {
	i, ok := ps.index[key]
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownParameter, key)
	}
	ps.items[i].Vary = vary

	return nil
}

// SetBounds replaces the bounds of key.
func (ps *Parameters) SetBounds(key string, lower, upper float64) error {
	i, ok := ps.index[key]
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownParameter, key)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return fmt.Errorf("%w: %q has min %g > max %g", errs.ErrInvalidBounds, key, lower, upper)
	}
	ps.items[i].Min = lower
	ps.items[i].Max = upper

	return nil
}

// Keys returns the parameter keys in order.
func (ps *Parameters) Keys() []string {
	keys := make([]string, len(ps.items))
	for i, p := range ps.items {
		keys[i] = p.Key
	}

	return keys
}

// FreeKeys returns the keys of parameters with Vary set, in order.
func (ps *Parameters) FreeKeys() []string {
	var keys []string
	for _, p := range ps.items {
		if p.Vary {
			keys = append(keys, p.Key)
		}
	}

	return keys
}

// All iterates over the parameters in order.
func (ps *Parameters) All() iter.Seq2[string, Parameter] {
	return func(yield func(string, Parameter) bool) {
		for _, p := range ps.items {
			if !yield(p.Key, p) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the set.
func (ps *Parameters) Clone() *Parameters {
	out := &Parameters{
		items: slices.Clone(ps.items),
		index: make(map[string]int, len(ps.index)),
	}
	for k, i := range ps.index {
		out.index[k] = i
	}

	return out
}
