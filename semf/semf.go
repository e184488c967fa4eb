// SPDX-License-Identifier: MIT

package semf

import (
	"fmt"
	"math"
)

// BindingEnergy returns the total binding energy B(A, Z) in MeV using
// DefaultCoefficients.
//
// Errors: ErrNonFinite, ErrMassNumber, ErrOverflow.
//
// Example:
//
//	b, err := semf.BindingEnergy(56, 26)
func BindingEnergy(a, z float64) (float64, error) {
	return DefaultCoefficients().BindingEnergy(a, z)
}

// BindingEnergyPerNucleon returns B(A, Z)/A using DefaultCoefficients.
func BindingEnergyPerNucleon(a, z float64) (float64, error) {
	return DefaultCoefficients().BindingEnergyPerNucleon(a, z)
}

// Decompose returns the per-term contributions using DefaultCoefficients.
func Decompose(a, z float64) (Terms, error) {
	return DefaultCoefficients().Decompose(a, z)
}

// PairingTerm returns the signed a5 chosen by the parity rules for the
// default pairing magnitude: 0 for odd A, +12 for even A with even Z and
// −12 for even A with odd Z. It does not validate its inputs.
func PairingTerm(a, z float64) float64 {
	return DefaultCoefficients().PairingTerm(a, z)
}

// Validate reports ErrCoefficients if any coefficient is NaN or ±Inf.
func (c Coefficients) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"volume", c.Volume},
		{"surface", c.Surface},
		{"coulomb", c.Coulomb},
		{"asymmetry", c.Asymmetry},
		{"pairing", c.Pairing},
	}
	for _, f := range fields {
		if isNonFinite(f.v) {
			return fmt.Errorf("%s=%v: %w", f.name, f.v, ErrCoefficients)
		}
	}

	return nil
}

// PairingTerm returns the signed a5 for (A, Z).
//
// The branch order is fixed: an odd A short-circuits to 0 before Z is
// inspected, so only even-A nuclei reach the Z-parity test.
func (c Coefficients) PairingTerm(a, z float64) float64 {
	switch {
	case math.Mod(a, 2) == 1:
		return 0
	case math.Mod(z, 2) == 0:
		return c.Pairing
	default:
		return -c.Pairing
	}
}

// Decompose evaluates every term of the formula for (A, Z).
//
// Implementation:
//   - Stage 1: reject non-finite coefficients and inputs, then A ≤ 0.
//   - Stage 2: compute A^(1/3), A^(2/3) and √A once.
//   - Stage 3: fill Terms with signed contributions; verify the sum is finite.
//
// Errors: ErrCoefficients, ErrNonFinite, ErrMassNumber, ErrOverflow.
func (c Coefficients) Decompose(a, z float64) (Terms, error) {
	if err := c.Validate(); err != nil {
		return Terms{}, err
	}
	if err := validateNucleus(a, z); err != nil {
		return Terms{}, err
	}

	cbrtA := math.Pow(a, 1.0/3.0)
	asym := a - 2*z
	t := Terms{
		Volume:    c.Volume * a,
		Surface:   -(c.Surface * math.Pow(a, 2.0/3.0)),
		Coulomb:   -(c.Coulomb * (z * z / cbrtA)),
		Asymmetry: -(c.Asymmetry * (asym * asym / a)),
		Pairing:   -(c.PairingTerm(a, z) / math.Sqrt(a)),
	}
	if isNonFinite(t.Total()) {
		return Terms{}, fmt.Errorf("A=%v Z=%v: %w", a, z, ErrOverflow)
	}

	return t, nil
}

// BindingEnergy returns B(A, Z) for this parameterization.
func (c Coefficients) BindingEnergy(a, z float64) (float64, error) {
	t, err := c.Decompose(a, z)
	if err != nil {
		return 0, err
	}

	return t.Total(), nil
}

// BindingEnergyPerNucleon returns B(A, Z)/A for this parameterization.
func (c Coefficients) BindingEnergyPerNucleon(a, z float64) (float64, error) {
	b, err := c.BindingEnergy(a, z)
	if err != nil {
		return 0, err
	}

	return b / a, nil
}

// validateNucleus checks finiteness first, then the sign of A.
func validateNucleus(a, z float64) error {
	if isNonFinite(a) || isNonFinite(z) {
		return fmt.Errorf("A=%v Z=%v: %w", a, z, ErrNonFinite)
	}
	if a <= 0 {
		return fmt.Errorf("A=%v: %w", a, ErrMassNumber)
	}

	return nil
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
