package calc

import "errors"

var (
	// ErrUnknownOp indicates a Request whose Op is not one of Ops.
	ErrUnknownOp = errors.New("calc: unknown operation")

	// ErrFormat indicates an unsupported request file format.
	ErrFormat = errors.New("calc: unsupported format")
)
