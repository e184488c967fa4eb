// SPDX-License-Identifier: MIT

package semf_test

import (
	"testing"

	"github.com/katalvlaran/nucleon/semf"
)

// BenchmarkBindingEnergy measures one default-coefficient evaluation.
func BenchmarkBindingEnergy(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := semf.BindingEnergy(238, 92); err != nil {
			b.Fatalf("BindingEnergy failed: %v", err)
		}
	}
}

// BenchmarkDecompose measures the per-term breakdown.
func BenchmarkDecompose(b *testing.B) {
	c := semf.DefaultCoefficients()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decompose(56, 26); err != nil {
			b.Fatalf("Decompose failed: %v", err)
		}
	}
}
