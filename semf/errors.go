// SPDX-License-Identifier: MIT

package semf

import (
	"fmt"

	"github.com/katalvlaran/nucleon"
)

// Every message is prefixed with "semf: ..." and wraps nucleon.ErrDomain.
// Callers match either the specific sentinel or the shared domain error.
var (
	// ErrNonFinite indicates a NaN or ±Inf mass number or atomic number.
	ErrNonFinite = fmt.Errorf("semf: A and Z must be finite: %w", nucleon.ErrDomain)

	// ErrMassNumber indicates A ≤ 0; A^(1/3) and √A would divide by zero
	// or take a fractional power of a negative number.
	ErrMassNumber = fmt.Errorf("semf: mass number A must be > 0: %w", nucleon.ErrDomain)

	// ErrCoefficients indicates a NaN or ±Inf coefficient in a custom
	// parameterization.
	ErrCoefficients = fmt.Errorf("semf: coefficients must be finite: %w", nucleon.ErrDomain)

	// ErrOverflow indicates that finite inputs produced a non-finite energy.
	ErrOverflow = fmt.Errorf("semf: binding energy is not finite: %w", nucleon.ErrDomain)
)
