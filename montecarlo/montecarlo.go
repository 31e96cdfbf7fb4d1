package montecarlo

import (
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/percolate/percolation"
)

// Experiment holds the completed results of T independent percolation trials
// on an n×n grid. The sample is immutable once New returns; all statistics
// are derived from it on demand.
type Experiment struct {
	trials     int
	thresholds []float64 // one threshold estimate in (0,1] per trial
}

// New runs trials independent percolation experiments on fresh n×n grids and
// returns the completed Experiment.
// Returns ErrTrialCount if trials < 1, percolation.ErrGridSize if n ≤ 0;
// validation happens before any trial starts.
//
// Each trial opens uniformly random sites (rejecting already-open draws)
// until the grid percolates and records openSites/n². With opts.Workers > 1
// the trials are spread over that many goroutines; every worker owns its
// grids and RNGs outright and fills disjoint slots of the sample, joined by a
// WaitGroup before New returns. The sample depends only on Seed, n and
// trials, never on Workers.
// Complexity: O(trials·n²·α(n²)) expected.
func New(n, trials int, opts Options) (*Experiment, error) {
	if trials < 1 {
		return nil, ErrTrialCount
	}
	if n <= 0 {
		return nil, percolation.ErrGridSize
	}

	e := &Experiment{
		trials:     trials,
		thresholds: make([]float64, trials),
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	if workers == 1 {
		for i := 0; i < trials; i++ {
			e.thresholds[i] = runTrial(n, opts.Seed+int64(i))
		}

		return e, nil
	}

	// Fan trials out in strided batches: worker w owns indices w, w+workers,
	// w+2·workers, … so no two goroutines ever touch the same slot.
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < trials; i += workers {
				e.thresholds[i] = runTrial(n, opts.Seed+int64(i))
			}
		}(w)
	}
	wg.Wait()

	return e, nil
}

// runTrial opens random sites on a fresh n×n grid until it percolates and
// returns the open fraction. The trial RNG is derived from the base seed and
// the trial index, so a trial's outcome does not depend on scheduling.
// Termination is guaranteed: a fully open grid always percolates for n ≥ 1.
func runTrial(n int, seed int64) float64 {
	// n was validated by New, so the construction cannot fail.
	g, _ := percolation.New(n)
	rng := rand.New(rand.NewSource(seed))
	for !g.Percolates() {
		row := rng.Intn(n) + 1
		col := rng.Intn(n) + 1
		// Reject draws that hit an already-open site; do not sample without
		// replacement (see doc.go, Sampling).
		if open, _ := g.IsOpen(row, col); !open {
			_ = g.Open(row, col)
		}
	}

	return float64(g.NumberOfOpenSites()) / float64(n*n)
}

// Thresholds returns a copy of the per-trial threshold sample, in trial
// order. Mutating the returned slice does not affect the Experiment.
// Complexity: O(trials).
func (e *Experiment) Thresholds() []float64 {
	out := make([]float64, len(e.thresholds))
	copy(out, e.thresholds)

	return out
}

// Mean returns the arithmetic mean of the threshold sample.
// Complexity: O(trials).
func (e *Experiment) Mean() float64 {
	var sum float64
	for _, x := range e.thresholds {
		sum += x
	}

	return sum / float64(e.trials)
}

// Stddev returns the Bessel-corrected sample standard deviation of the
// threshold sample: √(Σ(xᵢ−mean)² / (trials−1)).
// A single-trial sample yields NaN (0/0); callers must treat NaN as
// "insufficient data" before using the confidence interval.
// Complexity: O(trials).
func (e *Experiment) Stddev() float64 {
	mean := e.Mean()
	var sum float64
	for _, x := range e.thresholds {
		d := x - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(e.trials-1))
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval for
// the mean threshold: mean − 1.96·stddev/√trials. Recomputed from the full
// sample on every call; NaN when trials == 1.
// Complexity: O(trials).
func (e *Experiment) ConfidenceLo() float64 {
	return e.Mean() - confidence95*e.Stddev()/math.Sqrt(float64(e.trials))
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval for
// the mean threshold: mean + 1.96·stddev/√trials. Recomputed from the full
// sample on every call; NaN when trials == 1.
// Complexity: O(trials).
func (e *Experiment) ConfidenceHi() float64 {
	return e.Mean() + confidence95*e.Stddev()/math.Sqrt(float64(e.trials))
}
