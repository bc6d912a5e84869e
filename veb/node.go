package veb

import (
	"sync/atomic"

	"VanEmdeBoas/errutil"

	"github.com/google/btree"
)

const (
	// denseWidth is the widest universe kept in a dense node. Anything
	// wider keeps its buckets in a B-tree.
	denseWidth = 16

	// DefaultBTreeDegree is the degree of the B-trees inside sparse nodes.
	DefaultBTreeDegree = 16

	// DefaultFreeListSize bounds the recycled B-tree nodes kept per set.
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// node is one level of the recursion. Values passed in are always inside
// the node's universe.
type node interface {
	isEmpty() bool
	insert(v uint64) bool
	erase(v uint64) bool
	contains(v uint64) bool
	min() uint64
	max() uint64
	next(v uint64) (uint64, bool)
	prev(v uint64) (uint64, bool)
}

// Levels returns the number of dense or sparse nodes on any path from a
// root of the given width down to a leaf.
func Levels(width uint) int {
	if width <= leafWidth {
		return 0
	}
	return 1 + Levels(width/2)
}

// allocator owns the pools of one set and counts node visits. Read-only
// queries bump visits too, so it is atomic.
type allocator struct {
	leaves   pool[leaf]
	denses   pool[dense]
	freelist *btree.FreeListG[bucket]
	degree   int
	sparses  int
	visits   atomic.Uint64
}

func newAllocator(o options) *allocator {
	return &allocator{
		leaves:   newPool[leaf](o.chunkSize),
		denses:   newPool[dense](o.chunkSize),
		freelist: btree.NewFreeListG[bucket](o.freeListSize),
		degree:   o.degree,
	}
}

// newEmpty creates an empty node covering width bits.
func (a *allocator) newEmpty(width uint) node {
	switch {
	case width <= leafWidth:
		return a.leaves.get()
	case width <= denseWidth:
		d := a.denses.get()
		d.init(a, width)
		return d
	default:
		s := &sparse{}
		s.init(a, width)
		a.sparses++
		return s
	}
}

// newSeeded creates a node holding exactly v. Seeding sets the cached
// extremes directly, it is not counted as a visit.
func (a *allocator) newSeeded(width uint, v uint64) node {
	switch n := a.newEmpty(width).(type) {
	case *leaf:
		n.insert(v)
		return n
	case *dense:
		n.used, n.lo, n.hi = true, v, v
		return n
	case *sparse:
		n.used, n.lo, n.hi = true, v, v
		return n
	default:
		errutil.Bug("unexpected node type %T", n)
		return nil
	}
}

// release hands an empty node back to its pool.
func (a *allocator) release(n node) {
	errutil.BugOn(!n.isEmpty(), "releasing a non-empty node")
	switch n := n.(type) {
	case *leaf:
		a.leaves.put(n)
	case *dense:
		a.denses.put(n)
	case *sparse:
		n.dropChildren()
		a.sparses--
	}
}

// reset forgets every node handed out so far.
func (a *allocator) reset() {
	a.leaves.reset()
	a.denses.reset()
	a.sparses = 0
}
