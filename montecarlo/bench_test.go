package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/percolate/montecarlo"
)

// BenchmarkExperiment measures a full 50×50, 20-trial experiment, rejection
// sampling included.
// Complexity: O(trials·n²·α(n²)) expected.
func BenchmarkExperiment(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := montecarlo.New(50, 20, montecarlo.DefaultOptions()); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkExperiment_Workers measures the same workload fanned out over four
// workers.
func BenchmarkExperiment_Workers(b *testing.B) {
	opts := montecarlo.Options{Seed: 1, Workers: 4}
	for i := 0; i < b.N; i++ {
		if _, err := montecarlo.New(50, 20, opts); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
