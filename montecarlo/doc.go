// Package montecarlo estimates the percolation threshold of an n×n grid by
// running independent randomized trials.
//
// What:
//
//   - Experiment runs T trials; each opens uniformly random sites on a fresh
//     percolation.Grid until the system percolates, then records the open
//     fraction openSites/n² as that trial's threshold estimate.
//   - Mean, Stddev, ConfidenceLo and ConfidenceHi summarize the sample.
//   - Thresholds exposes a copy of the raw per-trial sample.
//
// Why:
//
//   - The critical open fraction p* of square-site percolation has no closed
//     form; Monte Carlo sampling is the standard estimator (p* ≈ 0.593 for
//     large n).
//   - The same harness doubles as a stress test for the grid model: every
//     trial exercises thousands of Open/Percolates calls.
//
// Sampling: each draw picks row and col independently and uniformly from
// [1..n]; draws that hit an already-open site are rejected and redrawn. The
// rejection scheme is intentional — it trades extra draws near saturation for
// a trivially correct uniform distribution over sites — and is part of the
// behavioral contract.
//
// Trials are sequential by default. Options.Workers > 1 fans trials out over
// that many goroutines; each worker owns a private grid and a private RNG
// derived from Options.Seed and the trial index, and writes only its own
// slots of the sample, so no synchronization beyond the final join is needed.
//
// Statistics:
//
//   - Mean: arithmetic mean of the sample.
//   - Stddev: Bessel-corrected sample standard deviation,
//     √(Σ(xᵢ−mean)² / (T−1)). A single-trial sample yields NaN (0/0);
//     callers must treat NaN as "insufficient data".
//   - ConfidenceLo/Hi: mean ∓ 1.96·stddev/√T (95% normal approximation).
//
// Complexity: New is O(T·n²·α(n²)) expected; each statistic is O(T).
//
// Errors:
//
//   - ErrTrialCount: New called with trials < 1.
//   - percolation.ErrGridSize: New called with n ≤ 0 (grid validation,
//     surfaced unchanged).
package montecarlo
