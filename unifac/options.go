package unifac

// Option configures an Engine at construction.
type Option func(*options)

type options struct {
	comb       Combinatorial
	molarMass  []float64
	freeVolume bool
	sumTol     float64
}

// WithCombinatorial overrides the combinatorial term selected by the
// parameter table's Kind. Ignored by free-volume engines, which are only
// defined with the classic term.
func WithCombinatorial(c Combinatorial) Option {
	return func(o *options) { o.comb = c }
}

// WithFreeVolume divides every component's r and q by its molar mass
// (same order as the registry) and binds the classic combinatorial term.
func WithFreeVolume(molarMass []float64) Option {
	return func(o *options) {
		o.molarMass = append([]float64(nil), molarMass...)
		o.freeVolume = true
	}
}

// WithSumTolerance rejects compositions whose sum deviates from 1 by more
// than tol (ErrNotNormalized). The default, 0, trusts the caller.
func WithSumTolerance(tol float64) Option {
	return func(o *options) { o.sumTol = tol }
}
