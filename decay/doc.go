// Package decay implements the exponential radioactive decay law.
//
//	N(t) = N₀ · 0.5^(t / T½)
//
// What:
//
//   - Remaining(N₀, T½, t): quantity left after t.
//   - Fraction(T½, t): the surviving fraction 0.5^(t/T½).
//   - Constant(T½): decay constant λ = ln 2 / T½.
//   - MeanLifetime(T½): τ = T½ / ln 2 = 1/λ.
//   - Elapsed(N₀, N, T½): time needed to go from N₀ to N.
//
// Quantities and times are plain float64 values; the caller keeps T½ and t
// in the same unit. A negative t extrapolates backwards and is allowed.
//
// Errors:
//
//   - ErrHalfLife: T½ == 0, the decay rate is undefined (for every t, t = 0 included).
//   - ErrNonFinite: an argument is NaN or ±Inf.
//   - ErrMassRatio: Elapsed needs N₀ > 0 and N > 0.
//   - ErrOverflow: the result left the finite range (e.g. a huge negative t).
//
// All of them match nucleon.ErrDomain via errors.Is.
package decay
