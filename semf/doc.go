// SPDX-License-Identifier: MIT

// Package semf evaluates the semi-empirical (Bethe–Weizsäcker) mass formula
// for nuclear binding energy.
//
// What:
//
//   - BindingEnergy(A, Z) with the default liquid-drop coefficients.
//   - Decompose(A, Z) returns the signed contribution of every term.
//   - BindingEnergyPerNucleon(A, Z) returns B/A.
//   - Coefficients carries a custom parameterization; all functions exist as
//     methods on it as well.
//
// Formula:
//
//	B(A,Z) = a1·A − a2·A^(2/3) − a3·Z²/A^(1/3) − a4·(A−2Z)²/A − a5/√A
//
//	a1 = 15.67 (volume)      a2 = 17.23 (surface)
//	a3 = 0.75  (Coulomb)     a4 = 93.2  (asymmetry)
//
// Pairing (a5), evaluated in this order:
//
//  1. A odd           → a5 = 0
//  2. otherwise Z even → a5 = +12.0
//  3. otherwise        → a5 = −12.0
//
// Z parity is never looked at when A is odd. Inputs are float64 and the
// parity tests use math.Mod, so non-integer values are accepted and follow
// the same branches.
//
// Errors:
//
//   - ErrNonFinite: A or Z is NaN or ±Inf.
//   - ErrMassNumber: A ≤ 0 (division by zero or root of a negative base).
//   - ErrCoefficients: a coefficient is NaN or ±Inf.
//   - ErrOverflow: the evaluation itself left the finite range.
//
// All of them match nucleon.ErrDomain via errors.Is.
//
// Complexity: O(1) time and memory for every function.
package semf
