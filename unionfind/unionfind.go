package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrZeroSize indicates New was called with a non-positive universe size.
	ErrZeroSize = errors.New("unionfind: size must be at least one")
	// ErrIndexRange indicates an index outside [0, size).
	ErrIndexRange = errors.New("unionfind: index out of range")
)

// UnionFind is a disjoint-set structure over the fixed universe [0, size).
// The zero value is not usable; construct with New.
type UnionFind struct {
	parent []int // parent[i] is the parent of i; roots satisfy parent[i] == i
	size   []int // size[r] is the component size for root r
	count  int   // current number of disjoint components
}

// New constructs a UnionFind over [0, size) with every element in its own
// component. Returns ErrZeroSize if size ≤ 0.
// Complexity: O(size) time and memory.
func New(size int) (*UnionFind, error) {
	if size <= 0 {
		return nil, ErrZeroSize
	}
	uf := &UnionFind{
		parent: make([]int, size),
		size:   make([]int, size),
		count:  size,
	}
	for i := 0; i < size; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the size of the universe.
// Complexity: O(1).
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint components. It starts at the
// universe size and decreases by one for each effective Union.
// Complexity: O(1).
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the canonical root of p's component.
// Returns ErrIndexRange if p lies outside [0, size).
// Complexity: O(α(size)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if p < 0 || p >= len(uf.parent) {
		return 0, ErrIndexRange
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same component.
// Returns ErrIndexRange if either index lies outside [0, size).
// Complexity: O(α(size)) amortized.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if p < 0 || p >= len(uf.parent) || q < 0 || q >= len(uf.parent) {
		return false, ErrIndexRange
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the components containing p and q. Merging two elements that
// already share a component is a no-op.
// Returns ErrIndexRange if either index lies outside [0, size).
// Complexity: O(α(size)) amortized.
func (uf *UnionFind) Union(p, q int) error {
	if p < 0 || p >= len(uf.parent) || q < 0 || q >= len(uf.parent) {
		return ErrIndexRange
	}
	pRoot := uf.root(p)
	qRoot := uf.root(q)
	if pRoot == qRoot {
		return nil
	}
	// Attach the smaller component under the larger root.
	if uf.size[pRoot] < uf.size[qRoot] {
		uf.parent[pRoot] = qRoot
		uf.size[qRoot] += uf.size[pRoot]
	} else {
		uf.parent[qRoot] = pRoot
		uf.size[pRoot] += uf.size[qRoot]
	}
	uf.count--

	return nil
}

// root walks up to the component root, halving the path as it goes:
// each visited element is re-pointed at its grandparent.
func (uf *UnionFind) root(i int) int {
	for i != uf.parent[i] {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}
