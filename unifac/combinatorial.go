package unifac

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Combinatorial evaluates ln γᶜ for every component into out, given the
// composition x and the component van der Waals sums r, q. All four slices
// have the component count as length.
//
// A strategy is bound once when an engine is built; the hot path never
// branches on the formula.
type Combinatorial func(x, r, q, out []float64)

// Classic is the original UNIFAC combinatorial term:
//
//	ln γᶜᵢ = 1 − φᵢ + ln φᵢ − 5·qᵢ·(1 − φᵢ/θᵢ + ln(φᵢ/θᵢ))
//	φᵢ = rᵢ / Σⱼ rⱼxⱼ,   θᵢ = qᵢ / Σⱼ qⱼxⱼ
func Classic(x, r, q, out []float64) {
	sr := floats.Dot(r, x)
	sq := floats.Dot(q, x)
	for i := range out {
		phi := r[i] / sr
		theta := q[i] / sq
		out[i] = 1 - phi + math.Log(phi) - 5*q[i]*(1-phi/theta+math.Log(phi/theta))
	}
}

// Modified is the Dortmund variant: the leading 1 − φ + ln φ part uses
// φ'ᵢ = rᵢ^¾ / Σⱼ rⱼ^¾xⱼ, the surface correction keeps φᵢ.
func Modified(x, r, q, out []float64) {
	sr := floats.Dot(r, x)
	sq := floats.Dot(q, x)
	var s34 float64
	for j := range x {
		s34 += math.Pow(r[j], 0.75) * x[j]
	}
	for i := range out {
		phiM := math.Pow(r[i], 0.75) / s34
		phi := r[i] / sr
		theta := q[i] / sq
		out[i] = 1 - phiM + math.Log(phiM) - 5*q[i]*(1-phi/theta+math.Log(phi/theta))
	}
}
