// SPDX-License-Identifier: MIT
// Package activity: sentinel error set shared by every model package.
// All models MUST return (or wrap) these sentinels and tests MUST check them
// via errors.Is. No model panics on a user-triggered condition.

package activity

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "activity: ..." so failures coming out of
// unifac, uniquac or curve can be grepped uniformly. Packages add context by
// wrapping: fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrFormat reports a malformed dataset line or substance declaration.
	ErrFormat = errors.New("activity: malformed input")

	// ErrUnknownGroup reports a group name absent from the parameter table.
	ErrUnknownGroup = errors.New("activity: unknown group")

	// ErrMissingInteraction reports two active main groups without
	// interaction coefficients in the parameter table.
	ErrMissingInteraction = errors.New("activity: missing interaction parameters")

	// ErrDimensionMismatch reports a composition or molar-mass vector whose
	// length differs from the component count.
	ErrDimensionMismatch = errors.New("activity: dimension mismatch")

	// ErrNumeric reports a non-finite result or an argument outside the
	// domain of a logarithm or ratio.
	ErrNumeric = errors.New("activity: non-finite result")

	// ErrNotNormalized reports a composition whose sum deviates from 1 by
	// more than the configured tolerance.
	ErrNotNormalized = errors.New("activity: composition is not normalized")

	// ErrEmptyMixture reports a model built without any component.
	ErrEmptyMixture = errors.New("activity: mixture has no components")

	// ErrDuplicate reports a substance or group declared twice.
	ErrDuplicate = errors.New("activity: duplicate declaration")

	// ErrNilModel reports a nil Model passed to a helper.
	ErrNilModel = errors.New("activity: model is nil")
)

// FormatError carries the position of a malformed line.
// Line is 1-based; zero means the position is unknown (e.g. a substance
// declaration not read from a file).
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("activity: line %d %q: %s", e.Line, e.Text, e.Reason)
	}

	return fmt.Sprintf("activity: %q: %s", e.Text, e.Reason)
}

// Unwrap lets errors.Is match ErrFormat.
func (e *FormatError) Unwrap() error { return ErrFormat }

// GroupError names the group (and, when known, the substance that
// referenced it) missing from a parameter table.
type GroupError struct {
	Substance string
	Group     string
}

func (e *GroupError) Error() string {
	if e.Substance == "" {
		return fmt.Sprintf("activity: unknown group %q", e.Group)
	}

	return fmt.Sprintf("activity: substance %q references unknown group %q", e.Substance, e.Group)
}

// Unwrap lets errors.Is match ErrUnknownGroup.
func (e *GroupError) Unwrap() error { return ErrUnknownGroup }

// NumericError reports the first non-finite value met while evaluating Op.
// Index is the component (or group) index, -1 for scalars.
type NumericError struct {
	Op    string
	Index int
	Value float64
}

func (e *NumericError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("activity: %s: non-finite value %g", e.Op, e.Value)
	}

	return fmt.Sprintf("activity: %s: non-finite value %g at index %d", e.Op, e.Value, e.Index)
}

// Unwrap lets errors.Is match ErrNumeric.
func (e *NumericError) Unwrap() error { return ErrNumeric }
