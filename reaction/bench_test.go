package reaction_test

import (
	"testing"

	"github.com/katalvlaran/nucleon/reaction"
)

// BenchmarkFission measures a single symmetric split.
func BenchmarkFission(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := reaction.Fission(236); err != nil {
			b.Fatalf("Fission failed: %v", err)
		}
	}
}

// BenchmarkFusion measures a single D+T style merge.
func BenchmarkFusion(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := reaction.Fusion(2, 3); err != nil {
			b.Fatalf("Fusion failed: %v", err)
		}
	}
}
