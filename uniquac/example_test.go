package uniquac_test

import (
	"fmt"

	"github.com/katalvlaran/thermact/uniquac"
)

// Example evaluates water + acetone + methyl acetate at 25 °C.
func Example() {
	m, err := uniquac.New(
		[]float64{0.92, 2.1055, 3.1878},
		[]float64{1.4, 1.972, 2.4},
		[][]uniquac.Tau{
			{{0, 0}, {0, 526.02}, {0, 309.64}},
			{{0, -318.06}, {0, 0}, {0, -91.532}},
			{{0, 1325.1}, {0, 302.57}, {0, 0}},
		})
	if err != nil {
		panic(err)
	}
	gamma, err := m.Coefficients([]float64{0.7273, 0.0909, 0.1818}, 298.15)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f %.4f %.4f\n", gamma[0], gamma[1], gamma[2])
	// Output:
	// 1.5704 0.2948 18.1143
}
