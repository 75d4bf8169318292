package unifac

import (
	"math"

	"github.com/katalvlaran/thermact/activity"
)

// refresh recomputes ψ and the pure-component reference when T differs from
// the cached temperature. On failure the cache is left invalid.
func (e *Engine) refresh(T float64) error {
	if e.cache.valid && e.cache.T == T {
		return nil
	}
	e.cache.valid = false

	// Stage 1: ψ(m,k) = exp(−(a₀ + a₁T + a₂T²)/T).
	G := len(e.groups)
	for m := 0; m < G; m++ {
		row := e.cache.psi.RawRowView(m)
		for k := 0; k < G; k++ {
			row[k] = e.inter[m*G+k].psi(T)
		}
		if err := activity.CheckFinite("ψ", row); err != nil {
			return err
		}
	}

	// Stage 2: ln Γₖ⁽ⁱ⁾ for each substance alone (xᵢ = 1).
	unit := make([]float64, len(e.names))
	for i := range e.names {
		unit[i] = 1
		if err := e.groupGamma(unit, e.cache.pure.RawRowView(i)); err != nil {
			return err
		}
		unit[i] = 0
	}

	e.cache.T = T
	e.cache.valid = true

	return nil
}

// residual writes ln γʳᵢ = Σₖ νᵢₖ·(ln Γₖ(x) − ln Γₖ⁽ⁱ⁾) into out.
// Requires a valid cache.
func (e *Engine) residual(x, out []float64) error {
	lnG := make([]float64, len(e.groups))
	if err := e.groupGamma(x, lnG); err != nil {
		return err
	}
	for i := range out {
		nu := e.nu.RawRowView(i)
		pure := e.cache.pure.RawRowView(i)
		var s float64
		for k, n := range nu {
			if n == 0 {
				continue
			}
			s += n * (lnG[k] - pure[k])
		}
		out[i] = s
	}

	return activity.CheckFinite("residual ln γ", out)
}

// groupGamma evaluates the group activity coefficients
//
//	ln Γₖ = Qₖ·(1 − ln Sₖ − Σₘ Θₘ·ψ(k,m)/Sₘ),   Sₘ = Σₙ Θₙ·ψ(n,m)
//
// with surface fractions Θₘ = Qₘ·Xₘ / Σₙ Qₙ·Xₙ and group amounts
// Xₘ = Σᵢ νᵢₘ·xᵢ. The column sums Sₘ are formed once, so the cost is
// O(G²) rather than O(G³).
func (e *Engine) groupGamma(x, out []float64) error {
	G := len(e.groups)
	psi := e.cache.psi

	// Stage 1: group amounts and surface fractions.
	theta := make([]float64, G)
	var total float64
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		nu := e.nu.RawRowView(i)
		for k, n := range nu {
			theta[k] += n * xi
		}
	}
	for k := range theta {
		theta[k] *= e.Q[k]
		total += theta[k]
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return &activity.NumericError{Op: "Σ Q·X", Index: -1, Value: total}
	}
	for k := range theta {
		theta[k] /= total
	}

	// Stage 2: Sₘ = Σₙ Θₙ·ψ(n,m), one pass over ψ rows.
	S := make([]float64, G)
	for n := 0; n < G; n++ {
		if theta[n] == 0 {
			continue
		}
		row := psi.RawRowView(n)
		for m := range S {
			S[m] += theta[n] * row[m]
		}
	}

	// Stage 3: ln Γₖ.
	for k := 0; k < G; k++ {
		row := psi.RawRowView(k)
		var s2 float64
		for m := 0; m < G; m++ {
			if theta[m] == 0 {
				continue
			}
			s2 += theta[m] * row[m] / S[m]
		}
		out[k] = e.Q[k] * (1 - math.Log(S[k]) - s2)
	}

	return activity.CheckFinite("ln Γ", out)
}
