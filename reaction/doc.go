// Package reaction models idealized fission and fusion on top of the
// semi-empirical mass formula.
//
// Model:
//
//   - Fission(m): the nucleus splits into two equal fragments of m/2 and
//     releases B(m, m/2)·m.
//   - Fusion(m1, m2): the nuclei merge into m1+m2 and release
//     B(m1+m2, (m1+m2)/2)·(m1+m2).
//
// Both treat the mass as the mass number A and take Z = A/2, i.e. an N = Z
// nucleus. That is a deliberate textbook simplification, not an oversight.
//
// Errors from semf (ErrMassNumber, ErrNonFinite, ErrOverflow, ErrCoefficients)
// are returned wrapped with the operation name; ErrOverflow is also returned
// when the final product B·A leaves the finite range. Either a full result
// pair or an error is returned, never a partial result.
package reaction
