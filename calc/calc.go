package calc

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nucleon/decay"
	"github.com/katalvlaran/nucleon/reaction"
	"github.com/katalvlaran/nucleon/semf"
)

// Calculator evaluates Requests with a fixed mass-formula parameterization.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	coeffs semf.Coefficients
}

// New returns a Calculator for c, or semf.ErrCoefficients if c is not finite.
func New(c semf.Coefficients) (*Calculator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{coeffs: c}, nil
}

// Default returns a Calculator using semf.DefaultCoefficients.
func Default() *Calculator {
	return &Calculator{coeffs: semf.DefaultCoefficients()}
}

// Coefficients returns the parameterization in use.
func (c *Calculator) Coefficients() semf.Coefficients {
	return c.coeffs
}

// Evaluate dispatches one request. ctx is only checked before the work
// starts; every operation is O(1).
func (c *Calculator) Evaluate(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Name: req.Name, Op: req.Op}
	switch req.Op {
	case OpBinding:
		terms, err := c.coeffs.Decompose(req.A, req.Z)
		if err != nil {
			return Result{}, err
		}
		res.Energy = ptr(terms.Total())
		if req.Terms {
			res.Terms = &terms
		}

	case OpFission:
		fragment, energy, err := reaction.FissionWith(c.coeffs, req.Mass)
		if err != nil {
			return Result{}, err
		}
		res.Mass, res.Energy = ptr(fragment), ptr(energy)

	case OpFusion:
		fused, energy, err := reaction.FusionWith(c.coeffs, req.Mass1, req.Mass2)
		if err != nil {
			return Result{}, err
		}
		res.Mass, res.Energy = ptr(fused), ptr(energy)

	case OpDecay:
		left, err := decay.Remaining(req.Initial, req.HalfLife, req.Elapsed)
		if err != nil {
			return Result{}, err
		}
		res.Remaining = ptr(left)

	default:
		return Result{}, fmt.Errorf("%q: %w", req.Op, ErrUnknownOp)
	}

	return res, nil
}

// EvaluateAll evaluates reqs in order and stops at the first error or when
// ctx is cancelled. On error no results are returned.
func (c *Calculator) EvaluateAll(ctx context.Context, reqs []Request) ([]Result, error) {
	out := make([]Result, 0, len(reqs))
	for i, req := range reqs {
		res, err := c.Evaluate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("request %d (%s): %w", i, label(req), err)
		}
		res.Index = i
		out = append(out, res)
	}

	return out, nil
}

func label(req Request) string {
	if req.Name != "" {
		return req.Name
	}

	return string(req.Op)
}

func ptr(v float64) *float64 { return &v }
