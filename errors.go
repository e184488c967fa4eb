package nucleon

import "errors"

// ErrDomain marks an input for which a formula is mathematically undefined
// (division by zero, fractional power of a non-positive base, non-finite
// operands or results).
//
// Every package-level sentinel in semf, reaction and decay wraps ErrDomain,
// so callers can tell "invalid input" apart from a valid but extreme result
// with a single errors.Is check:
//
//	if errors.Is(err, nucleon.ErrDomain) { ... }
var ErrDomain = errors.New("nucleon: domain error")
