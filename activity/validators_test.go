// SPDX-License-Identifier: MIT
// Package activity_test contains unit tests for the shared validators.
package activity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermact/activity"
)

// TestValidateComposition covers length, entry and sum checks in order.
func TestValidateComposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		x       []float64
		n       int
		tol     float64
		wantErr error
	}{
		{"ok", []float64{0.3, 0.7}, 2, 0, nil},
		{"ok with tolerance", []float64{0.3, 0.7}, 2, 1e-9, nil},
		{"short", []float64{1}, 2, 0, activity.ErrDimensionMismatch},
		{"long", []float64{0.2, 0.3, 0.5}, 2, 0, activity.ErrDimensionMismatch},
		{"negative", []float64{-0.1, 1.1}, 2, 0, activity.ErrNumeric},
		{"nan", []float64{math.NaN(), 1}, 2, 0, activity.ErrNumeric},
		{"inf", []float64{math.Inf(1), 0}, 2, 0, activity.ErrNumeric},
		{"unnormalized trusted", []float64{0.3, 0.3}, 2, 0, nil},
		{"unnormalized checked", []float64{0.3, 0.3}, 2, 1e-6, activity.ErrNotNormalized},
		{"length wins over sum", []float64{0.5}, 2, 1e-6, activity.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := activity.ValidateComposition(tc.x, tc.n, tc.tol)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateComposition_NumericIndex checks the offending index is reported.
func TestValidateComposition_NumericIndex(t *testing.T) {
	t.Parallel()

	err := activity.ValidateComposition([]float64{0.5, 0.5, -1}, 3, 0)
	var ne *activity.NumericError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, 2, ne.Index)
	require.Equal(t, -1.0, ne.Value)
}

func TestValidateTemperature(t *testing.T) {
	t.Parallel()

	require.NoError(t, activity.ValidateTemperature(298.15))
	for _, T := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		require.ErrorIs(t, activity.ValidateTemperature(T), activity.ErrNumeric, "T = %v", T)
	}
}

func TestValidatePositive(t *testing.T) {
	t.Parallel()

	require.NoError(t, activity.ValidatePositive("M", []float64{18.015, 46.069}))
	require.ErrorIs(t, activity.ValidatePositive("M", []float64{18.015, 0}), activity.ErrNumeric)
	require.ErrorIs(t, activity.ValidatePositive("M", []float64{math.NaN()}), activity.ErrNumeric)
}

func TestCheckFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, activity.CheckFinite("γ", []float64{0, -1, 1e300}))

	err := activity.CheckFinite("γ", []float64{1, math.Inf(-1)})
	var ne *activity.NumericError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, "γ", ne.Op)
	require.Equal(t, 1, ne.Index)
}

// TestErrorTypes checks the context-carrying errors unwrap to their sentinels.
func TestErrorTypes(t *testing.T) {
	t.Parallel()

	fe := &activity.FormatError{Line: 3, Text: "  1 CH3", Reason: "short line"}
	require.ErrorIs(t, fe, activity.ErrFormat)
	require.Contains(t, fe.Error(), "line 3")

	ge := &activity.GroupError{Substance: "ethanol", Group: "CH9"}
	require.ErrorIs(t, ge, activity.ErrUnknownGroup)
	require.Contains(t, ge.Error(), "ethanol")
	require.Contains(t, (&activity.GroupError{Group: "CH9"}).Error(), "CH9")

	ne := &activity.NumericError{Op: "ψ", Index: -1, Value: math.Inf(1)}
	require.ErrorIs(t, ne, activity.ErrNumeric)
	require.NotContains(t, ne.Error(), "index")
}
