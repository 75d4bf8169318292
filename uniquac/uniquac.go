package uniquac

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/thermact/activity"
	"github.com/katalvlaran/thermact/unifac"
)

// Tau holds the two coefficients of the temperature polynomial for one
// ordered component pair: tᵢⱼ = exp(−(c₀ + c₁/T)).
type Tau [2]float64

// Model is the UNIQUAC local-composition model on component-level r, q and
// a full n×n matrix of Tau coefficients. Not safe for concurrent use.
type Model struct {
	r, q []float64
	tau  []Tau // n × n, row-major

	sumTol float64
	cache  struct {
		valid bool
		T     float64
		t     *mat.Dense
	}
}

// Option configures a Model.
type Option func(*Model)

// WithSumTolerance enables the composition-sum check (see activity.ValidateComposition).
func WithSumTolerance(tol float64) Option {
	return func(m *Model) { m.sumTol = tol }
}

// New stores r, q and tau (tau[i][j] for component i acting on j).
//
// Errors:
//   - ErrEmptyMixture      — no components.
//   - ErrDimensionMismatch — len(q) ≠ len(r) or tau is not n×n.
//   - ErrNumeric           — r or q has a non-positive or non-finite entry.
func New(r, q []float64, tau [][]Tau, opts ...Option) (*Model, error) {
	n := len(r)
	if n == 0 {
		return nil, uniquacErrorf("New", activity.ErrEmptyMixture)
	}
	if len(q) != n {
		return nil, uniquacErrorf("New", fmt.Errorf("%d r values, %d q values: %w", n, len(q), activity.ErrDimensionMismatch))
	}
	if len(tau) != n {
		return nil, uniquacErrorf("New", fmt.Errorf("tau has %d rows for %d components: %w", len(tau), n, activity.ErrDimensionMismatch))
	}
	if err := activity.ValidatePositive("r", r); err != nil {
		return nil, uniquacErrorf("New", err)
	}
	if err := activity.ValidatePositive("q", q); err != nil {
		return nil, uniquacErrorf("New", err)
	}

	m := &Model{
		r:   append([]float64(nil), r...),
		q:   append([]float64(nil), q...),
		tau: make([]Tau, 0, n*n),
	}
	for i, row := range tau {
		if len(row) != n {
			return nil, uniquacErrorf("New", fmt.Errorf("tau row %d has %d entries for %d components: %w",
				i, len(row), n, activity.ErrDimensionMismatch))
		}
		m.tau = append(m.tau, row...)
	}
	m.cache.t = mat.NewDense(n, n, nil)
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func uniquacErrorf(op string, err error) error {
	return fmt.Errorf("uniquac: %s: %w", op, err)
}

// refresh recomputes tᵢⱼ when T differs from the cached temperature.
func (m *Model) refresh(T float64) error {
	if m.cache.valid && m.cache.T == T {
		return nil
	}
	m.cache.valid = false
	n := len(m.r)
	for i := 0; i < n; i++ {
		row := m.cache.t.RawRowView(i)
		for j := 0; j < n; j++ {
			c := m.tau[i*n+j]
			row[j] = math.Exp(-(c[0] + c[1]/T))
		}
		if err := activity.CheckFinite("t", row); err != nil {
			return err
		}
	}
	m.cache.T = T
	m.cache.valid = true

	return nil
}

// Coefficients returns γ for mole fractions x at temperature T [K]:
//
//	ln γᵢ = ln γᶜᵢ + qᵢ·(1 − ln(Σⱼ qⱼxⱼtⱼᵢ / Σⱼ qⱼxⱼ) − Σⱼ qⱼxⱼtᵢⱼ / Σₖ qₖxₖtₖⱼ)
//
// with the same combinatorial term as classic UNIFAC on the given r, q.
func (m *Model) Coefficients(x []float64, T float64) ([]float64, error) {
	n := len(m.r)
	if err := activity.ValidateComposition(x, n, m.sumTol); err != nil {
		return nil, uniquacErrorf("Coefficients", err)
	}
	if err := activity.ValidateTemperature(T); err != nil {
		return nil, uniquacErrorf("Coefficients", err)
	}
	if err := m.refresh(T); err != nil {
		return nil, uniquacErrorf("Coefficients", err)
	}

	comb := make([]float64, n)
	unifac.Classic(x, m.r, m.q, comb)

	// Stage 1: qx = q⊙x, S = Σ qx, Sⱼ = Σₖ qxₖ·tₖⱼ (column sums).
	t := m.cache.t
	qx := make([]float64, n)
	var s float64
	for j := range qx {
		qx[j] = m.q[j] * x[j]
		s += qx[j]
	}
	col := make([]float64, n)
	for k := 0; k < n; k++ {
		row := t.RawRowView(k)
		for j := range col {
			col[j] += qx[k] * row[j]
		}
	}

	// Stage 2: residual and γ.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		row := t.RawRowView(i)
		var s2 float64
		for j := 0; j < n; j++ {
			s2 += qx[j] * row[j] / col[j]
		}
		res := m.q[i] * (1 - math.Log(col[i]/s) - s2)
		y[i] = math.Exp(comb[i] + res)
	}
	if err := activity.CheckFinite("γ", y); err != nil {
		return nil, uniquacErrorf("Coefficients", err)
	}

	return y, nil
}

// Activities returns γ ⊙ x.
func (m *Model) Activities(x []float64, T float64) ([]float64, error) {
	y, err := m.Coefficients(x, T)
	if err != nil {
		return nil, err
	}

	return activity.Activities(y, x)
}

// Components returns the number of components.
func (m *Model) Components() int { return len(m.r) }

// ResetCache forces the next call to recompute the t matrix.
func (m *Model) ResetCache() { m.cache.valid = false }
