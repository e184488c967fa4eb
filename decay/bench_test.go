package decay_test

import (
	"testing"

	"github.com/katalvlaran/nucleon/decay"
)

// BenchmarkRemaining measures one decay-law evaluation.
func BenchmarkRemaining(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := decay.Remaining(100, 5730, float64(i%10000)); err != nil {
			b.Fatalf("Remaining failed: %v", err)
		}
	}
}
