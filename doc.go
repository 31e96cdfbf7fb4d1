// Package percolate models the percolation phase transition on an n×n grid
// and estimates the percolation threshold by Monte Carlo simulation.
//
// 🚀 What is percolate?
//
//	A small, focused library built around one question: if sites on a square
//	grid open one at a time, when does an open path first connect the top row
//	to the bottom row?
//		• unionfind/    — weighted quick-union with path compression
//		• percolation/  — the n×n grid model with virtual top/bottom terminals
//		• montecarlo/   — independent random trials + threshold statistics
//		• cmd/percstats — command-line driver printing mean, stddev and the
//		  95% confidence interval
//
// ✨ Why choose percolate?
//
//   - Near-constant-time queries — one union-find lookup answers "does the
//     system percolate?", regardless of grid size
//   - Virtual terminal trick — two sentinel nodes pre-connected to the border
//     rows replace O(n) pairwise top/bottom checks with a single query
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic experiments — seedable trials, optional worker fan-out
//
// Quick ASCII example (3×3, ■ blocked, □ open):
//
//	■ □ ■
//	■ □ □
//	■ ■ □
//
// The middle column of opens links the top row to the bottom row, so the
// system percolates after the sixth site opens.
//
// Dive into each subpackage's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/percolate
package percolate
