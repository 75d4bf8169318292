package unifac

// NewFreeVolume builds the free-volume variant used for polymer–solvent
// systems: rᵢ and qᵢ are divided by the substance molar mass before the
// combinatorial term is evaluated, and only the classic term is defined.
// The residual term is the regular group-interaction term.
func NewFreeVolume(t *ParameterTable, reg *Registry, molarMass []float64, opts ...Option) (*Engine, error) {
	return New(t, reg, append(opts, WithFreeVolume(molarMass))...)
}

// ExcessEnergy exposes the scalar GE/RT of a mixture instead of
// per-component coefficients, as viscosity correlations (UNIFAC-VISCO)
// consume it. It shares the combinatorial and residual machinery and the
// temperature cache of the underlying Engine.
type ExcessEnergy struct {
	e *Engine
}

// NewExcessEnergy builds the engine and wraps it.
func NewExcessEnergy(t *ParameterTable, reg *Registry, opts ...Option) (*ExcessEnergy, error) {
	e, err := New(t, reg, opts...)
	if err != nil {
		return nil, err
	}

	return &ExcessEnergy{e: e}, nil
}

// GERT returns Σᵢ xᵢ·ln γᶜᵢ − Σᵢ xᵢ·ln γʳᵢ. See Engine.ExcessGibbsRT.
func (v *ExcessEnergy) GERT(x []float64, T float64) (float64, error) {
	return v.e.ExcessGibbsRT(x, T)
}

// Components returns the number of substances.
func (v *ExcessEnergy) Components() int { return v.e.Components() }

// Engine returns the underlying engine.
func (v *ExcessEnergy) Engine() *Engine { return v.e }
