// SPDX-License-Identifier: MIT
// Package: activity
//
// Purpose:
//   - Single source of truth for the argument checks every model performs
//     before touching a composition or temperature.
//   - Return wrapped sentinels so call sites can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing; O(n) in the vector length.

package activity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateComposition checks a composition vector against the component
// count n.
//
// Order of checks: length → entries finite and non-negative → sum.
// The sum check runs only when tol > 0; with tol <= 0 the caller is trusted
// to pass a normalized vector.
//
// Errors: ErrDimensionMismatch, *NumericError, ErrNotNormalized.
func ValidateComposition(x []float64, n int, tol float64) error {
	if len(x) != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateComposition: got %d fractions for %d components", len(x), n),
			ErrDimensionMismatch)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return validatorErrorf("ValidateComposition", &NumericError{Op: "composition", Index: i, Value: v})
		}
	}
	if tol > 0 {
		if s := floats.Sum(x); math.Abs(s-1) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateComposition: sum %g", s), ErrNotNormalized)
		}
	}

	return nil
}

// ValidateTemperature requires a finite, strictly positive absolute temperature.
func ValidateTemperature(T float64) error {
	if math.IsNaN(T) || math.IsInf(T, 0) || T <= 0 {
		return validatorErrorf("ValidateTemperature", &NumericError{Op: "temperature", Index: -1, Value: T})
	}

	return nil
}

// ValidatePositive requires every entry of v to be finite and > 0.
// Used for molar masses and van der Waals parameters.
func ValidatePositive(op string, v []float64) error {
	for i, s := range v {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return validatorErrorf("ValidatePositive", &NumericError{Op: op, Index: i, Value: s})
		}
	}

	return nil
}

// CheckFinite returns a *NumericError for the first NaN or ±Inf in v.
func CheckFinite(op string, v []float64) error {
	for i, s := range v {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return &NumericError{Op: op, Index: i, Value: s}
		}
	}

	return nil
}
