package unifac_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermact/unifac"
)

// ethanolWater is a classic table with just the groups of ethanol and water.
const ethanolWater = `UNIFAC_parameters
-type
  classic

-list_of_main_groups
  1 CH2
  5 OH
  7 H2O

-list_of_sub_groups
  1 CH3 1 CH2 0.9011 0.848
  2 CH2 1 CH2 0.6744 0.540
  14 OH 5 OH 1.0 1.2
  16 H2O 7 H2O 0.92 1.4

-list_of_interaction_parameters
  1 5 986.5 0 0 156.4 0 0
  1 7 1318 0 0 300 0 0
  5 7 353.5 0 0 -229.1 0 0
`

// hexaneButanone is a modified (Dortmund) table for n-hexane + butanone-2.
const hexaneButanone = `UNIFAC_parameters
-type
  modified

-list_of_main_groups
  1 CH2
  9 CH2CO

-list_of_sub_groups
  1 CH3 1 CH2 0.6325 1.0608
  2 CH2 1 CH2 0.6325 0.7081
  18 CH3CO 9 CH2CO 1.7048 1.67

-list_of_interaction_parameters
  1 9 433.6 0.1473 0 199.0 -0.8709 0
`

var (
	ethanolWaterMolarMass = []float64{46.069, 18.015}
)

func mustParse(t testing.TB, src string) *unifac.ParameterTable {
	t.Helper()
	table, err := unifac.Parse(strings.NewReader(src))
	require.NoError(t, err)

	return table
}

func mustRegistry(t testing.TB, pairs ...string) *unifac.Registry {
	t.Helper()
	reg := unifac.NewRegistry()
	for i := 0; i+1 < len(pairs); i += 2 {
		require.NoError(t, reg.Add(pairs[i], pairs[i+1]))
	}

	return reg
}

func ethanolWaterEngine(t testing.TB, opts ...unifac.Option) *unifac.Engine {
	t.Helper()
	e, err := unifac.New(
		mustParse(t, ethanolWater),
		mustRegistry(t, "ethanol", "1*CH3 1*CH2 1*OH", "water", "1*H2O"),
		opts...)
	require.NoError(t, err)

	return e
}

func hexaneButanoneEngine(t testing.TB) *unifac.Engine {
	t.Helper()
	e, err := unifac.New(
		mustParse(t, hexaneButanone),
		mustRegistry(t, "n-hexane", "2*CH3 4*CH2", "butanone-2", "1*CH3 1*CH2 1*CH3CO"))
	require.NoError(t, err)

	return e
}
