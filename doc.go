// Package nucleon is a small calculator for textbook nuclear physics:
// binding energies from the semi-empirical mass formula, idealized
// fission and fusion energy release, and exponential radioactive decay.
//
// 🚀 What is nucleon?
//
//	A pure-Go, stateless set of closed-form formulas:
//		• semf/     — Bethe–Weizsäcker binding energy, per-term breakdown, B/A
//		• reaction/ — symmetric fission and two-body fusion (Z = A/2 model)
//		• decay/    — exponential decay law, decay constant, mean lifetime
//		• calc/     — request/result evaluator for scripted and batch use
//
// ✨ Why nucleon?
//
//   - Every operation is O(1) scalar arithmetic on float64.
//   - No shared state: all functions are safe for concurrent use.
//   - Undefined evaluations (A ≤ 0, zero half-life, NaN/Inf) are returned as
//     errors that match ErrDomain, never as silent NaN or ±Inf values.
//
// Units are the caller's business. With the default coefficients energies
// come out in MeV; masses and times are dimensionless scalars that only need
// to be consistent with each other.
//
// Quick example:
//
//	b, err := semf.BindingEnergy(56, 26) // iron-56
//	if errors.Is(err, nucleon.ErrDomain) {
//		// invalid input, not an extreme physical result
//	}
//
// The cmd/nucleon binary exposes the same operations on the command line.
package nucleon
