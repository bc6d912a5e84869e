// Package dsu implements a disjoint-set union over dense integer ids.
package dsu

import "VanEmdeBoas/errutil"

// DSU partitions the ids 0..Len()-1 into disjoint sets. Queries compress
// paths, so even read-only use mutates it: not thread-safe.
type DSU struct {
	parent []int
	size   []int
	sets   int
}

// New creates n singleton sets.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	d.Clear()
	return d
}

// Clear splits every id back into its own set.
func (d *DSU) Clear() {
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	d.sets = len(d.parent)
}

// Len returns the number of ids.
func (d *DSU) Len() int { return len(d.parent) }

// SetsCount returns the number of disjoint sets.
func (d *DSU) SetsCount() int { return d.sets }

// AddSet appends a new singleton and returns its id.
func (d *DSU) AddSet() int {
	id := len(d.parent)
	d.parent = append(d.parent, id)
	d.size = append(d.size, 1)
	d.sets++
	return id
}

// Find returns the representative of x's set. The representative only
// changes when the set is merged into a larger one.
func (d *DSU) Find(x int) int {
	errutil.BugOn(x < 0 || x >= len(d.parent), "dsu: id %d out of range [0, %d)", x, len(d.parent))
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Unite merges the sets of x and y, the smaller under the larger. It
// reports whether they were separate.
func (d *DSU) Unite(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	errutil.BugOn(d.sets < 2, "dsu: uniting with a single set left")
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.sets--
	return true
}

// AreUnited reports whether x and y share a set.
func (d *DSU) AreUnited(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// SetSize returns the size of x's set.
func (d *DSU) SetSize(x int) int {
	return d.size[d.Find(x)]
}
