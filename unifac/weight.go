package unifac

import (
	"fmt"

	"github.com/katalvlaran/thermact/activity"
)

// WeightFraction adapts an Engine to weight-fraction input.
//
// Coefficients converts w to mole fractions with the molar masses, asks the
// engine for γˣ and rescales to the weight basis:
//
//	xᵢ = (wᵢ/Mᵢ) / Σⱼ wⱼ/Mⱼ,   γʷᵢ = γˣᵢ / (Mᵢ·Σⱼ wⱼ/Mⱼ)
//
// so that γʷᵢ·wᵢ equals the mole-basis activity γˣᵢ·xᵢ.
type WeightFraction struct {
	e *Engine
	m []float64
}

// NewWeightFraction wraps e. molarMass follows the engine's component order.
func NewWeightFraction(e *Engine, molarMass []float64) (*WeightFraction, error) {
	if e == nil {
		return nil, engineErrorf("NewWeightFraction", activity.ErrNilModel)
	}
	if len(molarMass) != e.Components() {
		return nil, engineErrorf("NewWeightFraction", fmt.Errorf("%d molar masses for %d substances: %w",
			len(molarMass), e.Components(), activity.ErrDimensionMismatch))
	}
	if err := activity.ValidatePositive("molar mass", molarMass); err != nil {
		return nil, engineErrorf("NewWeightFraction", err)
	}

	return &WeightFraction{e: e, m: append([]float64(nil), molarMass...)}, nil
}

// Coefficients returns weight-basis γ for weight fractions w at T.
func (wf *WeightFraction) Coefficients(w []float64, T float64) ([]float64, error) {
	if err := activity.ValidateComposition(w, len(wf.m), wf.e.sumTol); err != nil {
		return nil, engineErrorf("WeightFraction", err)
	}
	x, scale, err := activity.MoleFractions(w, wf.m)
	if err != nil {
		return nil, engineErrorf("WeightFraction", err)
	}
	y, err := wf.e.Coefficients(x, T)
	if err != nil {
		return nil, err
	}
	for i := range y {
		y[i] /= scale[i]
	}

	return y, nil
}

// Activities returns γʷ ⊙ w.
func (wf *WeightFraction) Activities(w []float64, T float64) ([]float64, error) {
	y, err := wf.Coefficients(w, T)
	if err != nil {
		return nil, err
	}

	return activity.Activities(y, w)
}

// Components returns the number of substances.
func (wf *WeightFraction) Components() int { return len(wf.m) }

// Engine returns the wrapped mole-fraction engine.
func (wf *WeightFraction) Engine() *Engine { return wf.e }
