package model_test

import (
	"fmt"
	"log"

	"github.com/nanite-go/nanite/model"
)

func ExampleHertzParaboloidalForce() {
	delta := []float64{-1e-6, 0, 1e-6}
	force := model.HertzParaboloidalForce(delta, 3000, 10e-6, 0.5, 0, 0)

	for i, f := range force {
		fmt.Printf("delta=%+.0e m -> F=%.4e N\n", delta[i], f)
	}

	// Output:
	// delta=-1e-06 m -> F=1.6865e-08 N
	// delta=+0e+00 m -> F=0.0000e+00 N
	// delta=+1e-06 m -> F=0.0000e+00 N
}

func ExampleHertzParaboloidalDefaults() {
	for _, p := range model.HertzParaboloidalDefaults().All() {
		fmt.Printf("%-13s value=%-6g vary=%v\n", p.Key, p.Value, p.Vary)
	}

	// Output:
	// E             value=3000   vary=true
	// R             value=1e-05  vary=false
	// nu            value=0.5    vary=false
	// contact_point value=0      vary=true
	// baseline      value=0      vary=true
}

func ExampleHertzParaboloidal_Residual() {
	m, err := model.Get(model.HertzParaboloidalKey)
	if err != nil {
		log.Fatal(err)
	}

	params := m.Defaults()
	delta := []float64{1e-6, 0, -1e-6}
	force := []float64{0, 0, 2e-8}

	resid, err := m.Residual(params, delta, force, model.WithoutWeighting())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.3e\n", resid)

	// Output:
	// [0.000e+00 0.000e+00 3.135e-09]
}
