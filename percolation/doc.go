// Package percolation models an n×n grid of sites that open one at a time
// and answers whether an open path connects the top row to the bottom row.
//
// What:
//
//   - Grid holds the open/blocked state of every site, 1-indexed by
//     (row, col) in [1..n]×[1..n].
//   - Open marks a site open and links it to its already-open 4-neighbors.
//   - IsOpen reports a site's state; IsFull reports whether an open site is
//     reachable from the top row.
//   - Percolates reports whether the system as a whole conducts top-to-bottom.
//
// Why:
//
//   - Phase-transition studies: the fraction of open sites at which a random
//     system first percolates is a sharp threshold worth estimating
//     (see percolate/montecarlo).
//   - Porous-media and conductivity models: "does fluid poured on top reach
//     the bottom?" maps directly onto Percolates.
//
// Design: connectivity is delegated to a unionfind.UnionFind over n²+2
// indices. Site (row, col) maps row-major to (row−1)·n + (col−1) + 1; index 0
// is a virtual top terminal and index n²+1 a virtual bottom terminal, each
// pre-merged with its entire border row at construction. The percolation test
// is then a single Connected(top, bottom) query instead of up to n² pairwise
// row checks, and the union-find universe never grows. The same two-sentinel
// pattern serves any two-region reachability test over a grid.
//
// Complexity:
//
//   - New:                O(n²) time and memory.
//   - Open/IsFull:        O(α(n²)) amortized.
//   - IsOpen/NumberOfOpenSites/Percolates: O(1) / O(1) / O(α(n²)) amortized.
//
// Errors:
//
//   - ErrGridSize: New called with n ≤ 0.
//   - ErrSiteRange: row or col outside [1..n] passed to Open, IsOpen, IsFull.
//
// Known limit: after the system percolates, IsFull can report true for open
// sites that touch the bottom row but not the top ("backwash"), because both
// terminals share one union-find. Percolates and NumberOfOpenSites are exact.
package percolation
