package activity

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// R is the molar gas constant in J/(mol·K).
const R = 8.314462618

// Model is the contract shared by every activity-coefficient model.
//
// Coefficients returns γ for the composition x (one fraction per component,
// in the model's component order) at absolute temperature T [K].
// Activities returns a = γ ⊙ x for the same arguments.
//
// Implementations keep a temperature-keyed cache and are NOT safe for
// concurrent use; wrap with Synchronized to share one instance.
type Model interface {
	Coefficients(x []float64, T float64) ([]float64, error)
	Activities(x []float64, T float64) ([]float64, error)
	Components() int
}

// Activities multiplies coefficients by fractions elementwise into a new slice.
func Activities(y, x []float64) ([]float64, error) {
	if len(y) != len(x) {
		return nil, fmt.Errorf("Activities: %w", ErrDimensionMismatch)
	}

	return floats.MulTo(make([]float64, len(y)), y, x), nil
}

// ExcessGibbsRT returns GE/(RT) = Σ xᵢ·ln γᵢ for any model.
func ExcessGibbsRT(m Model, x []float64, T float64) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	y, err := m.Coefficients(x, T)
	if err != nil {
		return 0, err
	}
	lny := make([]float64, len(y))
	for i, v := range y {
		lny[i] = math.Log(v)
	}
	ge := floats.Dot(x, lny)
	if math.IsNaN(ge) || math.IsInf(ge, 0) {
		return 0, &NumericError{Op: "ExcessGibbsRT", Index: -1, Value: ge}
	}

	return ge, nil
}

// ExcessGibbs returns the molar excess Gibbs energy GE in J/mol.
func ExcessGibbs(m Model, x []float64, T float64) (float64, error) {
	ge, err := ExcessGibbsRT(m, x, T)
	if err != nil {
		return 0, err
	}

	return R * T * ge, nil
}

// MoleFractions converts weight fractions w to mole fractions with molar
// masses M: xᵢ = (wᵢ/Mᵢ) / Σⱼ wⱼ/Mⱼ.
//
// It also returns the per-component basis factors sᵢ = Mᵢ·Σⱼ wⱼ/Mⱼ, which
// turn a mole-basis coefficient into a weight-basis one (γʷᵢ = γˣᵢ / sᵢ).
// Both are evaluated as sᵢ = Σⱼ wⱼ·(Mᵢ/Mⱼ), xᵢ = wᵢ/sᵢ, so equal molar
// masses reproduce w and unit factors without rounding.
func MoleFractions(w, M []float64) (x, scale []float64, err error) {
	if len(w) != len(M) {
		return nil, nil, fmt.Errorf("MoleFractions: %d fractions, %d molar masses: %w", len(w), len(M), ErrDimensionMismatch)
	}
	if err = ValidatePositive("molar mass", M); err != nil {
		return nil, nil, fmt.Errorf("MoleFractions: %w", err)
	}
	x = make([]float64, len(w))
	scale = make([]float64, len(w))
	for i := range w {
		var s float64
		for j := range w {
			s += w[j] * (M[i] / M[j])
		}
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, nil, fmt.Errorf("MoleFractions: %w", &NumericError{Op: "Σ w·M/M", Index: i, Value: s})
		}
		scale[i] = s
		x[i] = w[i] / s
	}

	return x, scale, nil
}

// WeightFractions converts mole fractions x to weight fractions with molar
// masses M: wᵢ = xᵢ·Mᵢ / Σⱼ xⱼ·Mⱼ.
func WeightFractions(x, M []float64) ([]float64, error) {
	if len(x) != len(M) {
		return nil, fmt.Errorf("WeightFractions: %d fractions, %d molar masses: %w", len(x), len(M), ErrDimensionMismatch)
	}
	if err := ValidatePositive("molar mass", M); err != nil {
		return nil, fmt.Errorf("WeightFractions: %w", err)
	}
	w := floats.MulTo(make([]float64, len(x)), x, M)
	s := floats.Sum(w)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("WeightFractions: %w", &NumericError{Op: "Σ x·M", Index: -1, Value: s})
	}
	floats.Scale(1/s, w)

	return w, nil
}

// synchronized serializes every call on the wrapped model.
type synchronized struct {
	mu sync.Mutex
	m  Model
}

// Synchronized returns a Model safe for concurrent use: calls are
// serialized with a mutex, so the wrapped model's temperature cache never
// sees interleaved updates.
func Synchronized(m Model) Model {
	return &synchronized{m: m}
}

func (s *synchronized) Coefficients(x []float64, T float64) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.Coefficients(x, T)
}

func (s *synchronized) Activities(x []float64, T float64) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.Activities(x, T)
}

func (s *synchronized) Components() int { return s.m.Components() }
