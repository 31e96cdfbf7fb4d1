// Package unionfind implements a disjoint-set (union-find) structure over a
// fixed integer universe [0, size).
//
// What:
//
//   - UnionFind tracks a partition of {0, …, size−1} into disjoint components.
//   - Union(p, q) merges the components containing p and q.
//   - Connected(p, q) reports whether p and q share a component.
//   - Find(p) returns the canonical root of p's component.
//   - Count() returns the current number of components.
//
// Why:
//
//   - Incremental connectivity: answer "are these two connected?" after each
//     of a stream of merges, without ever rebuilding.
//   - Grid reachability: map cells to indices and merge neighbors as they
//     become passable (see percolate/percolation).
//   - Kruskal-style cycle detection when growing spanning structures.
//
// Implementation: weighted quick-union (union by size) with iterative
// grandparent path compression. Storage is two flat []int arenas — parent and
// component size — addressed by index, never pointer-linked nodes.
//
// Complexity:
//
//   - Union / Connected / Find: O(α(size)) amortized (inverse Ackermann,
//     effectively constant). Memory: O(size).
//
// Errors:
//
//   - ErrZeroSize: New called with size ≤ 0.
//   - ErrIndexRange: an index outside [0, size) passed to Union, Connected,
//     or Find.
package unionfind
