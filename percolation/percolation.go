package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrGridSize indicates New was called with a non-positive grid size.
	ErrGridSize = errors.New("percolation: grid size must be at least one")
	// ErrSiteRange indicates a row or column outside [1..n].
	ErrSiteRange = errors.New("percolation: site coordinates out of range")
)

// topIndex is the virtual terminal pre-merged with the whole top row.
const topIndex = 0

// Grid is an n×n percolation system. All sites start blocked; once opened a
// site never re-closes. Grid is not safe for concurrent use.
type Grid struct {
	n         int
	open      [][]bool
	openCount int
	uf        *unionfind.UnionFind
	bottom    int // virtual terminal index n²+1
}

// New constructs an n×n Grid with every site blocked.
// Returns ErrGridSize if n ≤ 0.
//
// The union-find universe holds n²+2 indices: one per site plus the two
// virtual terminals. Both terminals are merged with their border rows here,
// before any Open call, and that pre-merge is never undone.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, ErrGridSize
	}
	open := make([][]bool, n)
	for r := range open {
		open[r] = make([]bool, n)
	}
	size := n*n + 2
	uf, err := unionfind.New(size)
	if err != nil {
		return nil, err
	}
	g := &Grid{
		n:      n,
		open:   open,
		uf:     uf,
		bottom: size - 1,
	}
	// Merge the top terminal with row 1 and the bottom terminal with row n.
	// Indices are in range by construction, so the unions cannot fail.
	for col := 1; col <= n; col++ {
		_ = g.uf.Union(topIndex, g.siteIndex(1, col))
		_ = g.uf.Union(g.bottom, g.siteIndex(n, col))
	}

	return g, nil
}

// Size returns the grid dimension n.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.n
}

// Open marks site (row, col) open and merges it with each already-open
// 4-neighbor. Opening an already-open site is a no-op. All four neighbors are
// checked on every effective open: a neighbor opened earlier only becomes
// linked to this site now, so the check must be bidirectional at open time.
// Returns ErrSiteRange if row or col lies outside [1..n]; the grid is
// unchanged on error.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	if !g.inRange(row, col) {
		return ErrSiteRange
	}
	if g.open[row-1][col-1] {
		return nil
	}
	g.open[row-1][col-1] = true
	g.openCount++

	site := g.siteIndex(row, col)
	if col > 1 && g.open[row-1][col-2] {
		_ = g.uf.Union(site, site-1)
	}
	if col < g.n && g.open[row-1][col] {
		_ = g.uf.Union(site, site+1)
	}
	if row > 1 && g.open[row-2][col-1] {
		_ = g.uf.Union(site, site-g.n)
	}
	if row < g.n && g.open[row][col-1] {
		_ = g.uf.Union(site, site+g.n)
	}

	return nil
}

// IsOpen reports whether site (row, col) is open. Pure query.
// Returns ErrSiteRange if row or col lies outside [1..n].
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if !g.inRange(row, col) {
		return false, ErrSiteRange
	}

	return g.open[row-1][col-1], nil
}

// IsFull reports whether site (row, col) is full: open and connected to the
// top row. Full is a strict refinement of open.
// Returns ErrSiteRange if row or col lies outside [1..n].
// Complexity: O(α(n²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if !g.inRange(row, col) {
		return false, ErrSiteRange
	}
	if !g.open[row-1][col-1] {
		return false, nil
	}
	conn, _ := g.uf.Connected(topIndex, g.siteIndex(row, col))

	return conn, nil
}

// NumberOfOpenSites returns the running count of open sites.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Percolates reports whether an open path connects the top row to the bottom
// row: at least one site is open and the two virtual terminals are connected.
// The open-site guard covers n = 1, where both terminals are pre-merged with
// the same (initially blocked) site.
// Complexity: O(α(n²)) amortized; never re-scans the grid.
func (g *Grid) Percolates() bool {
	if g.openCount == 0 {
		return false
	}
	conn, _ := g.uf.Connected(topIndex, g.bottom)

	return conn
}

// inRange reports whether (row, col) lies within [1..n]×[1..n].
func (g *Grid) inRange(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// siteIndex maps 1-based (row, col) to its row-major union-find index:
// (row−1)·n + (col−1) + 1. Index 0 and n²+1 are the virtual terminals.
func (g *Grid) siteIndex(row, col int) int {
	return (row-1)*g.n + (col - 1) + 1
}
