package reaction

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nucleon/semf"
)

// Fission splits nucleusMass symmetrically using semf.DefaultCoefficients.
// Returns (mass of one fragment, total energy released).
//
// Example:
//
//	fragment, energy, err := reaction.Fission(200) // fragment == 100
func Fission(nucleusMass float64) (fragmentMass, energyReleased float64, err error) {
	return FissionWith(semf.DefaultCoefficients(), nucleusMass)
}

// FissionWith is Fission with a custom mass-formula parameterization.
func FissionWith(c semf.Coefficients, nucleusMass float64) (fragmentMass, energyReleased float64, err error) {
	energyReleased, err = released(c, nucleusMass)
	if err != nil {
		return 0, 0, fmt.Errorf("fission(%v): %w", nucleusMass, err)
	}

	return nucleusMass / 2, energyReleased, nil
}

// Fusion merges two nuclei using semf.DefaultCoefficients.
// Returns (combined mass, total energy released).
//
// Example:
//
//	fused, energy, err := reaction.Fusion(2, 3) // fused == 5
func Fusion(mass1, mass2 float64) (fusedMass, energyReleased float64, err error) {
	return FusionWith(semf.DefaultCoefficients(), mass1, mass2)
}

// FusionWith is Fusion with a custom mass-formula parameterization.
func FusionWith(c semf.Coefficients, mass1, mass2 float64) (fusedMass, energyReleased float64, err error) {
	fusedMass = mass1 + mass2
	energyReleased, err = released(c, fusedMass)
	if err != nil {
		return 0, 0, fmt.Errorf("fusion(%v, %v): %w", mass1, mass2, err)
	}

	return fusedMass, energyReleased, nil
}

// released evaluates B(A, A/2)·A, the energy of an N = Z nucleus of mass A.
func released(c semf.Coefficients, a float64) (float64, error) {
	b, err := c.BindingEnergy(a, a/2)
	if err != nil {
		return 0, err
	}
	e := b * a
	if math.IsInf(e, 0) || math.IsNaN(e) {
		return 0, ErrOverflow
	}

	return e, nil
}
