package unifac

import "math"

// Kind selects the combinatorial formula a parameter table was fitted with.
type Kind int

const (
	// KindClassic is the original UNIFAC (Staverman–Guggenheim) combinatorial term.
	KindClassic Kind = iota

	// KindModified is the modified UNIFAC (Dortmund) term with r^(3/4) volume fractions.
	KindModified
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindModified {
		return "modified"
	}

	return "classic"
}

// MainGroup is one entry of the main-group list. ID is the integer the
// sub-group and interaction sections refer to.
type MainGroup struct {
	ID   int
	Name string
}

// Subgroup holds the van der Waals parameters of one functional group.
//   - Main — main-group id; indexes the interaction table.
//   - R    — relative van der Waals volume.
//   - Q    — relative van der Waals surface area.
type Subgroup struct {
	Name string
	Main int
	R    float64
	Q    float64
}

// Coefficients are the (a₀, a₁, a₂) terms of the interaction energy
// a(T) = a₀ + a₁·T + a₂·T² between two main groups, in K.
type Coefficients [3]float64

// psi returns ψ = exp(−a(T)/T).
func (c Coefficients) psi(T float64) float64 {
	return math.Exp(-(c[0] + c[1]*T + c[2]*T*T) / T)
}

// Interaction is one row of the interaction section: coefficients for
// I→J and for J→I.
type Interaction struct {
	I, J int
	IJ   Coefficients
	JI   Coefficients
}

// GroupCount is one "count*group" token of a substance declaration.
type GroupCount struct {
	Group string
	Count float64
}
