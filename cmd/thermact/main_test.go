package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermact/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thermact.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

const ethanolWater = `
substances:
  ethanol: 1*CH3 1*CH2 1*OH
  water: 1*H2O
molar_masses: [46.069, 18.015]
temperature: 298.15
composition: [0.3, 0.7]
`

func TestRun_Models(t *testing.T) {
	t.Parallel()

	tests := []struct {
		model string
		want  []string
	}{
		{config.ModelUNIFAC, []string{"ethanol", "1.62098", "1.23654", "GE/RT = 0.29353"}},
		{config.ModelVisco, []string{"ethanol", "1.62098", "GE/RT = -0.162826"}},
		{config.ModelFreeVolume, []string{"water", "1.50463", "1.1713"}},
		{config.ModelWeight, []string{"component  w", "water"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.model, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, "model: "+tc.model+"\n"+ethanolWater)
			var out bytes.Buffer
			require.NoError(t, run([]string{"-config", path}, &out))
			for _, w := range tc.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRun_UNIQUAC(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
model: uniquac
uniquac:
  names: [water, acetone, methyl-acetate]
  r: [0.92, 2.1055, 3.1878]
  q: [1.4, 1.972, 2.4]
  tau:
    - [[0, 0], [0, 526.02], [0, 309.64]]
    - [[0, -318.06], [0, 0], [0, -91.532]]
    - [[0, 1325.1], [0, 302.57], [0, 0]]
`)
	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-x", "0.7273, 0.0909, 0.1818"}, &out))
	assert.Contains(t, out.String(), "methyl-acetate")
	assert.Contains(t, out.String(), "18.1143")
}

// TestRun_Overrides: flags win over the file and the sweep is written.
func TestRun_Overrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "substances: [ethanol, water]\n")
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sweep.csv")
	pngPath := filepath.Join(dir, "sweep.png")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-T", "350", "-x", "0.5,0.5", "-plot", csvPath}, &out))
	assert.Contains(t, out.String(), "T = 350 K")
	assert.Contains(t, out.String(), "1.23102")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 52, strings.Count(string(data), "\n"), "header + 51 points")

	require.NoError(t, run([]string{"-config", path, "-plot", pngPath, "-v"}, &out))
	_, err = os.Stat(pngPath)
	require.NoError(t, err)
}

// TestRun_SweepExcess: the ge_rt column of the sweep agrees with the GE/RT
// line of the report for models whose excess energy is not Σ x·ln γ.
func TestRun_SweepExcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		model string
		basis string
		want  float64
	}{
		{config.ModelWeight, "w1", 0.2878337625622841},
		{config.ModelVisco, "x1", -0.1750910014998284},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.model, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, "model: "+tc.model+"\n"+ethanolWater)
			csvPath := filepath.Join(t.TempDir(), "sweep.csv")

			var out bytes.Buffer
			require.NoError(t, run([]string{"-config", path, "-x", "0.5,0.5", "-plot", csvPath}, &out))
			_, line, ok := strings.Cut(out.String(), "GE/RT = ")
			require.True(t, ok, out.String())
			reported, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, reported, 1e-6)

			f, err := os.Open(csvPath)
			require.NoError(t, err)
			defer f.Close()
			rows, err := csv.NewReader(f).ReadAll()
			require.NoError(t, err)
			require.Len(t, rows, 52)
			assert.Equal(t, tc.basis, rows[0][0])
			assert.Equal(t, "ge_rt", rows[0][5])

			mid := rows[26] // 25/50
			assert.Equal(t, "0.5", mid[0])
			ge, err := strconv.ParseFloat(mid[5], 64)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, ge, 1e-9)
			assert.InDelta(t, reported, ge, 1e-6)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.Error(t, run(nil, &out))
	require.Error(t, run([]string{"-nope"}, &out))
	require.Error(t, run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &out))

	bad := writeConfig(t, "substances: [ethanol, water]\n")
	require.Error(t, run([]string{"-config", bad, "-x", "0.5,abc"}, &out))
	require.ErrorIs(t, run([]string{"-config", bad, "-x", "1"}, &out), config.ErrInvalid)

	unknown := writeConfig(t, "substances:\n  benzene: 6*ACH\n  mystery: 1*XYZ\n")
	require.Error(t, run([]string{"-config", unknown}, &out))

	out.Reset()
	require.NoError(t, run([]string{"-version"}, &out))
	assert.Equal(t, "thermact "+version+"\n", out.String())
}
