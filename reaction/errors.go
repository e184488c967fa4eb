package reaction

import (
	"fmt"

	"github.com/katalvlaran/nucleon"
)

// ErrOverflow indicates that B·A, the released energy, is not finite even
// though the binding energy itself was.
var ErrOverflow = fmt.Errorf("reaction: released energy is not finite: %w", nucleon.ErrDomain)
