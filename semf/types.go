// SPDX-License-Identifier: MIT

package semf

// Default liquid-drop coefficients, in MeV.
const (
	DefaultVolume    = 15.67
	DefaultSurface   = 17.23
	DefaultCoulomb   = 0.75
	DefaultAsymmetry = 93.2
	DefaultPairing   = 12.0
)

// Coefficients parameterizes the mass formula.
//
// Fields:
//   - Volume    — a1, multiplies A.
//   - Surface   — a2, multiplies A^(2/3).
//   - Coulomb   — a3, multiplies Z²/A^(1/3).
//   - Asymmetry — a4, multiplies (A−2Z)²/A.
//   - Pairing   — magnitude of a5; the sign comes from the parity rules.
//
// The zero value is valid but useless (B ≡ 0); start from
// DefaultCoefficients and override what you need:
//
//	c := semf.DefaultCoefficients()
//	c.Pairing = 11.2
//	b, err := c.BindingEnergy(238, 92)
type Coefficients struct {
	Volume    float64 `json:"volume" yaml:"volume" mapstructure:"volume"`
	Surface   float64 `json:"surface" yaml:"surface" mapstructure:"surface"`
	Coulomb   float64 `json:"coulomb" yaml:"coulomb" mapstructure:"coulomb"`
	Asymmetry float64 `json:"asymmetry" yaml:"asymmetry" mapstructure:"asymmetry"`
	Pairing   float64 `json:"pairing" yaml:"pairing" mapstructure:"pairing"`
}

// DefaultCoefficients returns a1=15.67, a2=17.23, a3=0.75, a4=93.2 and a
// pairing magnitude of 12.0.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Volume:    DefaultVolume,
		Surface:   DefaultSurface,
		Coulomb:   DefaultCoulomb,
		Asymmetry: DefaultAsymmetry,
		Pairing:   DefaultPairing,
	}
}

// Terms holds the signed contribution of each term of the formula.
// Subtracted terms are stored as negative numbers, so the binding energy is
// the plain sum (see Total).
type Terms struct {
	Volume    float64 `json:"volume" yaml:"volume"`
	Surface   float64 `json:"surface" yaml:"surface"`
	Coulomb   float64 `json:"coulomb" yaml:"coulomb"`
	Asymmetry float64 `json:"asymmetry" yaml:"asymmetry"`
	Pairing   float64 `json:"pairing" yaml:"pairing"`
}

// Total sums the terms left to right, in formula order.
func (t Terms) Total() float64 {
	return t.Volume + t.Surface + t.Coulomb + t.Asymmetry + t.Pairing
}
