// Package uniquac implements the UNIQUAC local-composition activity model.
//
// Unlike unifac it needs no group decomposition: every component carries its
// own volume r and surface q, and every ordered component pair (i, j) carries
// two coefficients giving tᵢⱼ = exp(−(c₀ + c₁/T)). The t matrix is cached per
// temperature exactly like the UNIFAC ψ matrix.
//
//	m, err := uniquac.New(
//		[]float64{0.92, 2.1055, 3.1878},
//		[]float64{1.4, 1.972, 2.4},
//		[][]uniquac.Tau{
//			{{0, 0}, {0, 526.02}, {0, 309.64}},
//			{{0, -318.06}, {0, 0}, {0, -91.532}},
//			{{0, 1325.1}, {0, 302.57}, {0, 0}},
//		})
//	gamma, err := m.Coefficients([]float64{0.7273, 0.0909, 0.1818}, 298.15)
package uniquac
