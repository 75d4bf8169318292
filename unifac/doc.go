// Package unifac computes liquid-phase activity coefficients with the
// UNIFAC group-contribution method and its variants.
//
// 🚀 What is UNIFAC?
//
//	A molecule is described as a bag of functional sub-groups (CH3, CH2,
//	OH, H2O, ...). Each sub-group carries a van der Waals volume R and
//	surface Q; each pair of main groups carries interaction energies. From
//	these, ln γᵢ = ln γᶜᵢ (size/shape, "combinatorial") + ln γʳᵢ (energy,
//	"residual") for every component of any mixture built from known groups.
//
// ✨ Contents:
//   - ParameterTable — sub-groups, main groups, interaction coefficients;
//     loaded with Parse/ParseFile or built with NewTable.
//   - Registry       — substance name → group decomposition ("2*CH3 4*CH2"),
//     ordered; LoadYAML reads a name → declaration mapping.
//   - Engine         — γ, a, ln γ parts and GE/RT for one mixture; Classic or
//     Modified combinatorial term bound at construction.
//   - WeightFraction — the same model on a weight-fraction basis.
//   - NewFreeVolume  — r, q normalized by molar mass (polymer solutions).
//   - ExcessEnergy   — GE/RT for viscosity correlations.
//
// ⚙️ Usage:
//
//	table, err := unifac.ParseFile("vle.txt")
//	reg := unifac.NewRegistry()
//	_ = reg.Add("ethanol", "1*CH3 1*CH2 1*OH")
//	_ = reg.Add("water", "1*H2O")
//	eng, err := unifac.New(table, reg)
//	gamma, err := eng.Coefficients([]float64{0.3, 0.7}, 298.15)
//
// Caching:
//
//	ψ(m,k) = exp(−(a₀+a₁T+a₂T²)/T) and the pure-component reference
//	ln Γₖ⁽ⁱ⁾ depend on T only. They are recomputed when T differs from the
//	cached value and reused otherwise, so repeated calls at one temperature
//	cost O(n·G + G²).
//
// Concurrency:
//
//	An Engine mutates its cache on temperature change and must not be
//	shared between goroutines without activity.Synchronized.
//
// Errors are the activity sentinels: ErrFormat (dataset or declaration),
// ErrUnknownGroup, ErrMissingInteraction, ErrDimensionMismatch, ErrNumeric,
// ErrEmptyMixture.
package unifac
