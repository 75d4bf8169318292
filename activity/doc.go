// Package activity defines the contract shared by every liquid-phase
// activity-coefficient model in thermact, together with the error set,
// argument validators and a few model-independent helpers.
//
// What is an activity coefficient?
//
//	In a non-ideal liquid mixture a component behaves as if its
//	concentration were aᵢ = γᵢ·xᵢ instead of xᵢ. γᵢ (the activity
//	coefficient) is what phase-equilibrium and process-simulation codes
//	need from a thermodynamic model.
//
// Contents:
//   - Model                — Coefficients (γ), Activities (γ⊙x), Components.
//   - Synchronized         — mutex wrapper for sharing one model across goroutines.
//   - ExcessGibbsRT / ExcessGibbs — GE/RT = Σ xᵢ ln γᵢ and GE in J/mol.
//   - MoleFractions / WeightFractions — basis normalization with molar masses.
//   - ValidateComposition / ValidateTemperature — uniform guards.
//   - Sentinel errors: ErrFormat, ErrUnknownGroup, ErrDimensionMismatch,
//     ErrNumeric and friends, plus FormatError, GroupError, NumericError.
//
// Implementations live in sibling packages:
//
//	unifac/  — group-contribution models (classic, modified, weight basis,
//	           free volume, excess energy)
//	uniquac/ — local-composition model on component parameters
//
// Concurrency:
//
//	Models cache temperature-dependent matrices and are not safe for
//	concurrent use. Either keep one instance per goroutine or wrap it:
//
//	shared := activity.Synchronized(model)
package activity
