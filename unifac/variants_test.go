package unifac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermact/activity"
	"github.com/katalvlaran/thermact/unifac"
)

func TestWeightFraction(t *testing.T) {
	t.Parallel()

	wf, err := unifac.NewWeightFraction(ethanolWaterEngine(t), ethanolWaterMolarMass)
	require.NoError(t, err)
	assert.Equal(t, 2, wf.Components())

	w := []float64{0.5, 0.5}
	y, err := wf.Coefficients(w, 298.15)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.9526638548871385, 1.7458914391272327}, y, tol)

	a, err := wf.Activities(w, 298.15)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.4763319274435692, 0.8729457195636163}, a, tol)

	// Weight- and mole-basis activities agree.
	x, _, err := activity.MoleFractions(w, ethanolWaterMolarMass)
	require.NoError(t, err)
	ax, err := wf.Engine().Activities(x, 298.15)
	require.NoError(t, err)
	assert.InDeltaSlice(t, ax, a, 1e-14)
}

// TestWeightFraction_EqualMasses: with equal molar masses the adapter is the
// mole-fraction engine, bit for bit.
func TestWeightFraction_EqualMasses(t *testing.T) {
	t.Parallel()

	e := ethanolWaterEngine(t)
	wf, err := unifac.NewWeightFraction(e, []float64{30, 30})
	require.NoError(t, err)

	for _, x := range [][]float64{{0.3, 0.7}, {0.5, 0.5}, {0.9, 0.1}} {
		yw, err := wf.Coefficients(x, 310)
		require.NoError(t, err)
		yx, err := e.Coefficients(x, 310)
		require.NoError(t, err)
		assert.Equal(t, yx, yw)
	}
}

func TestWeightFraction_Errors(t *testing.T) {
	t.Parallel()

	e := ethanolWaterEngine(t)
	_, err := unifac.NewWeightFraction(nil, ethanolWaterMolarMass)
	require.ErrorIs(t, err, activity.ErrNilModel)
	_, err = unifac.NewWeightFraction(e, []float64{46.069})
	require.ErrorIs(t, err, activity.ErrDimensionMismatch)
	_, err = unifac.NewWeightFraction(e, []float64{46.069, 0})
	require.ErrorIs(t, err, activity.ErrNumeric)

	wf, err := unifac.NewWeightFraction(e, ethanolWaterMolarMass)
	require.NoError(t, err)
	_, err = wf.Coefficients([]float64{1}, 298.15)
	require.ErrorIs(t, err, activity.ErrDimensionMismatch)
	_, err = wf.Coefficients([]float64{-0.1, 1.1}, 298.15)
	require.ErrorIs(t, err, activity.ErrNumeric)
	_, err = wf.Coefficients([]float64{0.5, 0.5}, -1)
	require.ErrorIs(t, err, activity.ErrNumeric)
}

func TestFreeVolume(t *testing.T) {
	t.Parallel()

	table := mustParse(t, ethanolWater)
	reg := mustRegistry(t, "ethanol", "1*CH3 1*CH2 1*OH", "water", "1*H2O")
	e, err := unifac.NewFreeVolume(table, reg, ethanolWaterMolarMass)
	require.NoError(t, err)

	y, err := e.Coefficients([]float64{0.3, 0.7}, 298.15)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5046293546970346, 1.1712953820675192}, y, tol)

	r, q := e.VanDerWaals()
	assert.InDelta(t, 0.92/18.015, r[1], 1e-15)
	assert.InDelta(t, 1.4/18.015, q[1], 1e-15)

	// The residual part is the regular one.
	plain := ethanolWaterEngine(t)
	_, resFV, err := e.LnCoefficients([]float64{0.3, 0.7}, 298.15)
	require.NoError(t, err)
	_, res, err := plain.LnCoefficients([]float64{0.3, 0.7}, 298.15)
	require.NoError(t, err)
	assert.Equal(t, res, resFV)

	// Only the classic term is defined: a Modified override is ignored.
	forced, err := unifac.NewFreeVolume(table, reg, ethanolWaterMolarMass, unifac.WithCombinatorial(unifac.Modified))
	require.NoError(t, err)
	y2, err := forced.Coefficients([]float64{0.3, 0.7}, 298.15)
	require.NoError(t, err)
	assert.Equal(t, y, y2)
}

func TestFreeVolume_Errors(t *testing.T) {
	t.Parallel()

	table := mustParse(t, ethanolWater)
	reg := mustRegistry(t, "ethanol", "1*CH3 1*CH2 1*OH", "water", "1*H2O")

	_, err := unifac.NewFreeVolume(table, reg, []float64{46.069})
	require.ErrorIs(t, err, activity.ErrDimensionMismatch)
	_, err = unifac.NewFreeVolume(table, reg, []float64{46.069, -18})
	require.ErrorIs(t, err, activity.ErrNumeric)
}

func TestExcessEnergy(t *testing.T) {
	t.Parallel()

	v, err := unifac.NewExcessEnergy(mustParse(t, ethanolWater),
		mustRegistry(t, "ethanol", "1*CH3 1*CH2 1*OH", "water", "1*H2O"))
	require.NoError(t, err)
	assert.Equal(t, 2, v.Components())

	ge, err := v.GERT([]float64{0.3, 0.7}, 298.15)
	require.NoError(t, err)
	assert.InDelta(t, -0.16282582125056386, ge, tol)

	// Pure component: both parts vanish.
	ge, err = v.GERT([]float64{1, 0}, 298.15)
	require.NoError(t, err)
	assert.InDelta(t, 0, ge, 1e-15)

	_, err = v.GERT([]float64{0.3}, 298.15)
	require.ErrorIs(t, err, activity.ErrDimensionMismatch)

	_, err = unifac.NewExcessEnergy(mustParse(t, ethanolWater), unifac.NewRegistry())
	require.ErrorIs(t, err, activity.ErrEmptyMixture)
	require.NotNil(t, v.Engine())
}

func TestCombinatorial(t *testing.T) {
	t.Parallel()

	// Equal r and q: both terms vanish.
	out := make([]float64, 2)
	for _, c := range []unifac.Combinatorial{unifac.Classic, unifac.Modified} {
		c([]float64{0.4, 0.6}, []float64{2, 2}, []float64{1.5, 1.5}, out)
		assert.InDeltaSlice(t, []float64{0, 0}, out, 1e-15)
	}

	// r = q·const: the surface correction vanishes and only 1 − φ + ln φ stays.
	x, r, q := []float64{0.5, 0.5}, []float64{1, 3}, []float64{2, 6}
	unifac.Classic(x, r, q, out)
	assert.InDelta(t, 1-0.5+(-0.6931471805599453), out[0], 1e-15)
}

var (
	_ activity.Model = (*unifac.WeightFraction)(nil)
)
