// SPDX-License-Identifier: MIT

package semf_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nucleon"
	"github.com/katalvlaran/nucleon/semf"
)

// ExampleBindingEnergy evaluates helium-4 (even A, even Z → a5 = +12).
func ExampleBindingEnergy() {
	b, err := semf.BindingEnergy(4, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("B(4,2)=%.2f MeV\n", b)
	// Output:
	// B(4,2)=11.37 MeV
}

// ExampleDecompose shows the signed volume and pairing contributions.
func ExampleDecompose() {
	terms, _ := semf.Decompose(4, 2)
	fmt.Printf("volume=%.2f pairing=%.2f\n", terms.Volume, terms.Pairing)
	// Output:
	// volume=62.68 pairing=-6.00
}

// ExampleBindingEnergy_domainError shows that A=0 is reported, not computed.
func ExampleBindingEnergy_domainError() {
	_, err := semf.BindingEnergy(0, 0)
	fmt.Println(err)
	fmt.Println(errors.Is(err, nucleon.ErrDomain))
	// Output:
	// A=0: semf: mass number A must be > 0: nucleon: domain error
	// true
}
