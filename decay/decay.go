package decay

import (
	"fmt"
	"math"
)

// Remaining returns initial · 0.5^(elapsed/halfLife).
//
// Example:
//
//	left, err := decay.Remaining(80, 10, 10) // 40
func Remaining(initial, halfLife, elapsed float64) (float64, error) {
	if err := finite(initial); err != nil {
		return 0, err
	}
	f, err := Fraction(halfLife, elapsed)
	if err != nil {
		return 0, err
	}

	return checked(initial * f)
}

// Fraction returns the surviving fraction 0.5^(elapsed/halfLife).
func Fraction(halfLife, elapsed float64) (float64, error) {
	if err := finite(halfLife, elapsed); err != nil {
		return 0, err
	}
	if halfLife == 0 {
		return 0, fmt.Errorf("elapsed=%v: %w", elapsed, ErrHalfLife)
	}

	return checked(math.Pow(0.5, elapsed/halfLife))
}

// Constant returns the decay constant λ = ln 2 / halfLife.
func Constant(halfLife float64) (float64, error) {
	if err := validHalfLife(halfLife); err != nil {
		return 0, err
	}

	return checked(math.Ln2 / halfLife)
}

// MeanLifetime returns τ = halfLife / ln 2.
func MeanLifetime(halfLife float64) (float64, error) {
	if err := validHalfLife(halfLife); err != nil {
		return 0, err
	}

	return checked(halfLife / math.Ln2)
}

// Elapsed inverts Remaining: the time after which initial has decayed to
// remaining, halfLife · log₂(initial/remaining). A remaining quantity larger
// than initial gives a negative time.
func Elapsed(initial, remaining, halfLife float64) (float64, error) {
	if err := finite(initial, remaining); err != nil {
		return 0, err
	}
	if err := validHalfLife(halfLife); err != nil {
		return 0, err
	}
	if initial <= 0 || remaining <= 0 {
		return 0, fmt.Errorf("initial=%v remaining=%v: %w", initial, remaining, ErrMassRatio)
	}

	return checked(halfLife * math.Log2(initial/remaining))
}

func validHalfLife(halfLife float64) error {
	if err := finite(halfLife); err != nil {
		return err
	}
	if halfLife == 0 {
		return ErrHalfLife
	}

	return nil
}

func finite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%v: %w", x, ErrNonFinite)
		}
	}

	return nil
}

func checked(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrOverflow
	}

	return x, nil
}
