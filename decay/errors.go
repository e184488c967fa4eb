package decay

import (
	"fmt"

	"github.com/katalvlaran/nucleon"
)

var (
	// ErrHalfLife indicates a zero half-life.
	ErrHalfLife = fmt.Errorf("decay: half-life must be non-zero: %w", nucleon.ErrDomain)

	// ErrNonFinite indicates a NaN or ±Inf argument.
	ErrNonFinite = fmt.Errorf("decay: arguments must be finite: %w", nucleon.ErrDomain)

	// ErrMassRatio indicates a non-positive initial or remaining quantity in Elapsed.
	ErrMassRatio = fmt.Errorf("decay: initial and remaining quantities must be > 0: %w", nucleon.ErrDomain)

	// ErrOverflow indicates a non-finite result from finite arguments.
	ErrOverflow = fmt.Errorf("decay: result is not finite: %w", nucleon.ErrDomain)
)
