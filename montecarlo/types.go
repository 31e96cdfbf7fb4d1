package montecarlo

import "errors"

// Sentinel errors for montecarlo operations.
var (
	// ErrTrialCount indicates New was called with fewer than one trial.
	ErrTrialCount = errors.New("montecarlo: trial count must be at least one")
)

// confidence95 is the two-sided z-score of the 95% normal confidence interval.
const confidence95 = 1.96

// Options contains tunable parameters for an Experiment.
type Options struct {
	// Seed is the base of every trial's random number generator (trial i uses
	// Seed+i). Two experiments with equal Seed, grid size and trial count
	// produce equal samples, regardless of Workers.
	Seed int64
	// Workers is the number of goroutines running trials. Values below 1 run
	// sequentially; values above the trial count are clamped to it.
	Workers int
}

// DefaultOptions returns an Options with default settings:
// Seed=1, Workers=1 (sequential).
func DefaultOptions() Options {
	return Options{
		Seed:    1,
		Workers: 1,
	}
}
