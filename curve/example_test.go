package curve_test

import (
	"fmt"

	"github.com/katalvlaran/thermact/curve"
	"github.com/katalvlaran/thermact/unifac"
	"github.com/katalvlaran/thermact/unifac/datasets"
)

// ExampleBinary sweeps ethanol + water in two steps; the ends give the
// infinite-dilution coefficients.
func ExampleBinary() {
	table, _ := datasets.VLE()
	reg, _ := datasets.Substances("ethanol", "water")
	eng, _ := unifac.New(table, reg)

	points, err := curve.Binary(eng, 298.15, 2)
	if err != nil {
		panic(err)
	}
	for _, p := range points {
		fmt.Printf("x1=%.1f γ=(%.4f, %.4f)\n", p.X1, p.Gamma[0], p.Gamma[1])
	}
	// Output:
	// x1=0.0 γ=(7.6238, 1.0000)
	// x1=0.5 γ=(1.2037, 1.4967)
	// x1=1.0 γ=(1.0000, 2.6628)
}
