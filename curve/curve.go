// Package curve sweeps a binary mixture across the whole composition range
// and exports the resulting γ and GE/RT curves as CSV or as a plot.
package curve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/thermact/activity"
)

// ErrNoPoints is returned when an export is asked for an empty sweep.
var ErrNoPoints = errors.New("curve: no points")

// Point is one composition of a binary sweep.
type Point struct {
	X1      float64   // fraction of the first component, in the model's basis
	Gamma   []float64 // γ per component
	LnGamma []float64 // ln γ per component
	GERT    float64   // GE/RT; Σ xᵢ·ln γᵢ unless WithExcess is given
}

// ExcessFunc returns GE/RT of a mixture at composition x and temperature T.
// x is in the same basis as the model's Coefficients input.
type ExcessFunc func(x []float64, T float64) (float64, error)

// SweepOption configures Binary.
type SweepOption func(*sweepConfig)

type sweepConfig struct {
	excess ExcessFunc
}

// WithExcess replaces the default Σ x·ln γ with fn for the GERT column.
// Models whose input is not a mole fraction, or whose excess energy is
// defined differently, must pass their own function.
func WithExcess(fn ExcessFunc) SweepOption {
	return func(c *sweepConfig) {
		c.excess = fn
	}
}

func curveErrorf(op string, err error) error {
	return fmt.Errorf("curve: %s: %w", op, err)
}

// Binary evaluates m at steps+1 evenly spaced compositions
// x₁ = 0, 1/steps, ..., 1 (x₂ = 1 − x₁) at temperature T.
// Both ends are included, so the first and last points carry the infinite
// dilution coefficients.
func Binary(m activity.Model, T float64, steps int, opts ...SweepOption) ([]Point, error) {
	if m == nil {
		return nil, curveErrorf("Binary", activity.ErrNilModel)
	}
	if m.Components() != 2 {
		return nil, curveErrorf("Binary", fmt.Errorf("%d components: %w", m.Components(), activity.ErrDimensionMismatch))
	}
	if steps < 1 {
		return nil, curveErrorf("Binary", fmt.Errorf("steps = %d: %w", steps, ErrNoPoints))
	}

	var cfg sweepConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x1 := float64(i) / float64(steps)
		x := []float64{x1, 1 - x1}
		y, err := m.Coefficients(x, T)
		if err != nil {
			return nil, curveErrorf("Binary", fmt.Errorf("x1 = %g: %w", x1, err))
		}
		ln := make([]float64, len(y))
		for k, v := range y {
			ln[k] = math.Log(v)
		}
		ge := floats.Dot(x, ln)
		if cfg.excess != nil {
			if ge, err = cfg.excess(x, T); err != nil {
				return nil, curveErrorf("Binary", fmt.Errorf("x1 = %g: %w", x1, err))
			}
		}
		out = append(out, Point{X1: x1, Gamma: y, LnGamma: ln, GERT: ge})
	}

	return out, nil
}
