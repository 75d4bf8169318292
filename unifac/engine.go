package unifac

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/thermact/activity"
)

// Engine is a group-contribution (UNIFAC) activity-coefficient model bound
// to one mixture.
//
// Construction derives everything that does not depend on composition or
// temperature: the active group set (groups present in at least one
// substance, first-seen order), the occurrence matrix ν (components × groups),
// per-group R and Q, the interaction triples restricted to the active groups
// and stored densely, and the per-component sums rᵢ = Σ R·ν, qᵢ = Σ Q·ν.
//
// Temperature-dependent state (ψ and the pure-component reference) lives in
// a cache that is refreshed only when the requested T differs from the
// cached one. An Engine is not safe for concurrent use.
type Engine struct {
	names   []string
	groups  []string
	mainIDs []int

	nu    *mat.Dense     // n × G occurrence counts
	R, Q  []float64      // per active group
	inter []Coefficients // G × G, row-major: inter[m*G+k] is main(m) acting on main(k)
	r, q  []float64      // per component

	comb   Combinatorial
	sumTol float64
	cache  tempCache
}

// tempCache holds everything that depends on T alone.
type tempCache struct {
	valid bool
	T     float64
	psi   *mat.Dense // G × G
	pure  *mat.Dense // n × G, ln Γₖ with component i alone
}

// New builds an engine for the substances in reg using the parameters in t.
//
// Errors:
//   - ErrEmptyMixture        — reg is nil or empty.
//   - *activity.GroupError   — a substance uses a group absent from t.
//   - ErrMissingInteraction  — two active main groups have no coefficients.
//   - ErrDimensionMismatch / ErrNumeric — bad WithFreeVolume molar masses.
func New(t *ParameterTable, reg *Registry, opts ...Option) (*Engine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if t == nil || reg == nil || reg.Len() == 0 {
		return nil, engineErrorf("New", activity.ErrEmptyMixture)
	}

	// Stage 1: active group set in first-seen order.
	e := &Engine{names: reg.Names(), sumTol: o.sumTol}
	var subIdx []int
	local := make(map[string]int)
	for _, name := range e.names {
		gcs, _ := reg.Groups(name)
		for _, gc := range gcs {
			if _, seen := local[gc.Group]; seen {
				continue
			}
			idx, ok := t.SubgroupIndex(gc.Group)
			if !ok {
				return nil, engineErrorf("New", &activity.GroupError{Substance: name, Group: gc.Group})
			}
			local[gc.Group] = len(e.groups)
			e.groups = append(e.groups, gc.Group)
			subIdx = append(subIdx, idx)
		}
	}
	n, G := len(e.names), len(e.groups)

	// Stage 2: per-group parameters and occurrence matrix.
	e.R = make([]float64, G)
	e.Q = make([]float64, G)
	e.mainIDs = make([]int, G)
	for k, idx := range subIdx {
		sg := t.subgroups[idx]
		e.R[k], e.Q[k], e.mainIDs[k] = sg.R, sg.Q, sg.Main
	}
	e.nu = mat.NewDense(n, G, nil)
	for i, name := range e.names {
		gcs, _ := reg.Groups(name)
		for _, gc := range gcs {
			e.nu.Set(i, local[gc.Group], gc.Count)
		}
	}

	// Stage 3: dense interaction triples over the active groups.
	e.inter = make([]Coefficients, G*G)
	for m := 0; m < G; m++ {
		for k := 0; k < G; k++ {
			c, ok := t.Interaction(e.mainIDs[m], e.mainIDs[k])
			if !ok {
				return nil, engineErrorf("New", fmt.Errorf("%s (main %d) → %s (main %d): %w",
					e.groups[m], e.mainIDs[m], e.groups[k], e.mainIDs[k], activity.ErrMissingInteraction))
			}
			e.inter[m*G+k] = c
		}
	}

	// Stage 4: van der Waals sums per component.
	var rv, qv mat.VecDense
	rv.MulVec(e.nu, mat.NewVecDense(G, e.R))
	qv.MulVec(e.nu, mat.NewVecDense(G, e.Q))
	e.r = append([]float64(nil), rv.RawVector().Data...)
	e.q = append([]float64(nil), qv.RawVector().Data...)

	// Stage 5: strategy binding.
	e.comb = t.Combinatorial()
	if o.comb != nil {
		e.comb = o.comb
	}
	if o.freeVolume {
		if len(o.molarMass) != n {
			return nil, engineErrorf("New", fmt.Errorf("%d molar masses for %d substances: %w",
				len(o.molarMass), n, activity.ErrDimensionMismatch))
		}
		if err := activity.ValidatePositive("molar mass", o.molarMass); err != nil {
			return nil, engineErrorf("New", err)
		}
		floats.Div(e.r, o.molarMass)
		floats.Div(e.q, o.molarMass)
		e.comb = Classic
	}

	e.cache.psi = mat.NewDense(G, G, nil)
	e.cache.pure = mat.NewDense(n, G, nil)

	return e, nil
}

func engineErrorf(op string, err error) error {
	return fmt.Errorf("unifac: %s: %w", op, err)
}

// Coefficients returns γ for the mole fractions x at temperature T [K].
func (e *Engine) Coefficients(x []float64, T float64) ([]float64, error) {
	comb, res, err := e.LnCoefficients(x, T)
	if err != nil {
		return nil, err
	}
	y := comb
	for i := range y {
		y[i] = math.Exp(comb[i] + res[i])
	}
	if err = activity.CheckFinite("γ", y); err != nil {
		return nil, engineErrorf("Coefficients", err)
	}

	return y, nil
}

// Activities returns γ ⊙ x.
func (e *Engine) Activities(x []float64, T float64) ([]float64, error) {
	y, err := e.Coefficients(x, T)
	if err != nil {
		return nil, err
	}

	return activity.Activities(y, x)
}

// LnCoefficients returns the combinatorial and residual parts of ln γ
// separately. Both slices are freshly allocated.
//
// Implementation:
//   - Stage 1: validate x and T.
//   - Stage 2: refresh the {T, ψ, pure} cache if T changed.
//   - Stage 3: combinatorial term via the bound strategy.
//   - Stage 4: residual term Σₖ νᵢₖ·(ln Γₖ(x) − ln Γₖ⁽ⁱ⁾).
//
// Any non-finite intermediate is reported as *activity.NumericError.
func (e *Engine) LnCoefficients(x []float64, T float64) (comb, res []float64, err error) {
	if err = activity.ValidateComposition(x, len(e.names), e.sumTol); err != nil {
		return nil, nil, engineErrorf("LnCoefficients", err)
	}
	if err = activity.ValidateTemperature(T); err != nil {
		return nil, nil, engineErrorf("LnCoefficients", err)
	}
	if err = e.refresh(T); err != nil {
		return nil, nil, engineErrorf("LnCoefficients", err)
	}

	comb = make([]float64, len(e.names))
	e.comb(x, e.r, e.q, comb)
	if err = activity.CheckFinite("combinatorial ln γ", comb); err != nil {
		return nil, nil, engineErrorf("LnCoefficients", err)
	}

	res = make([]float64, len(e.names))
	if err = e.residual(x, res); err != nil {
		return nil, nil, engineErrorf("LnCoefficients", err)
	}

	return comb, res, nil
}

// ExcessGibbsRT returns the molar excess Gibbs energy in the form used by
// viscosity correlations: Σᵢ xᵢ·ln γᶜᵢ − Σᵢ xᵢ·ln γʳᵢ.
func (e *Engine) ExcessGibbsRT(x []float64, T float64) (float64, error) {
	comb, res, err := e.LnCoefficients(x, T)
	if err != nil {
		return 0, err
	}
	ge := floats.Dot(x, comb) - floats.Dot(x, res)
	if math.IsNaN(ge) || math.IsInf(ge, 0) {
		return 0, engineErrorf("ExcessGibbsRT", &activity.NumericError{Op: "GE/RT", Index: -1, Value: ge})
	}

	return ge, nil
}

// ResetCache drops the temperature cache; the next call recomputes ψ and
// the pure-component reference.
func (e *Engine) ResetCache() { e.cache.valid = false }

// Temperature returns the cached temperature and whether the cache is valid.
func (e *Engine) Temperature() (float64, bool) { return e.cache.T, e.cache.valid }

// Components returns the number of substances.
func (e *Engine) Components() int { return len(e.names) }

// Names returns the substance names in component order.
func (e *Engine) Names() []string { return append([]string(nil), e.names...) }

// Groups returns the active sub-group names in local index order.
func (e *Engine) Groups() []string { return append([]string(nil), e.groups...) }

// VanDerWaals returns copies of the per-component r and q actually used by
// the combinatorial term (mass-normalized for free-volume engines).
func (e *Engine) VanDerWaals() (r, q []float64) {
	return append([]float64(nil), e.r...), append([]float64(nil), e.q...)
}
