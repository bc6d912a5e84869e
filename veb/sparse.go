package veb

import (
	"VanEmdeBoas/bits"

	"github.com/google/btree"
)

// bucket maps a high half to the child holding its low halves.
type bucket struct {
	high  uint64
	child node
}

func bucketLess(a, b bucket) bool {
	return a.high < b.high
}

// sparse covers universes wider than 16 bits. A slot per high bucket
// would cost O(2^(width/2)) words, so populated buckets live in a B-tree
// whose ordered walks replace the summary.
type sparse struct {
	a        *allocator
	width    uint8
	lower    uint8
	used     bool
	lo, hi   uint64
	children *btree.BTreeG[bucket] // nil until the first child
}

func (n *sparse) init(a *allocator, width uint) {
	n.a = a
	n.width = uint8(width)
	n.lower = uint8(width / 2)
}

func (n *sparse) split(v uint64) (high, low uint64) {
	return bits.Split(v, uint(n.lower))
}

func (n *sparse) join(high, low uint64) uint64 {
	return bits.Join(high, low, uint(n.lower))
}

func (n *sparse) isEmpty() bool { return !n.used }
func (n *sparse) min() uint64   { return n.lo }
func (n *sparse) max() uint64   { return n.hi }

func (n *sparse) hasChildren() bool {
	return n.children != nil && n.children.Len() > 0
}

func (n *sparse) child(high uint64) node {
	if n.children == nil {
		return nil
	}
	b, ok := n.children.Get(bucket{high: high})
	if !ok {
		return nil
	}
	return b.child
}

func (n *sparse) addChild(high uint64, child node) {
	if n.children == nil {
		n.children = btree.NewWithFreeListG(n.a.degree, bucketLess, n.a.freelist)
	}
	n.children.ReplaceOrInsert(bucket{high: high, child: child})
}

// nextBucket returns the first populated bucket above high.
func (n *sparse) nextBucket(high uint64) (found bucket, ok bool) {
	if n.children == nil {
		return
	}
	n.children.AscendGreaterOrEqual(bucket{high: high + 1}, func(b bucket) bool {
		found, ok = b, true
		return false
	})
	return
}

// prevBucket returns the last populated bucket below high.
func (n *sparse) prevBucket(high uint64) (found bucket, ok bool) {
	if n.children == nil || high == 0 {
		return
	}
	n.children.DescendLessOrEqual(bucket{high: high - 1}, func(b bucket) bool {
		found, ok = b, true
		return false
	})
	return
}

func (n *sparse) dropChildren() {
	if n.children != nil {
		n.children.Clear(true)
		n.children = nil
	}
}

func (n *sparse) insert(v uint64) bool {
	n.a.visits.Add(1)
	if !n.used {
		n.used, n.lo, n.hi = true, v, v
		return true
	}
	if v == n.lo || v == n.hi {
		return false
	}
	if n.lo == n.hi {
		if v < n.lo {
			n.lo = v
		} else {
			n.hi = v
		}
		return true
	}
	if v < n.lo {
		v, n.lo = n.lo, v
	} else if v > n.hi {
		v, n.hi = n.hi, v
	}

	high, low := n.split(v)
	child := n.child(high)
	if child == nil {
		n.addChild(high, n.a.newSeeded(uint(n.lower), low))
		return true
	}
	return child.insert(low)
}

func (n *sparse) erase(v uint64) bool {
	n.a.visits.Add(1)
	if !n.used {
		return false
	}
	if n.lo == n.hi {
		if v != n.lo {
			return false
		}
		n.used, n.lo, n.hi = false, 0, 0
		return true
	}

	switch {
	case v == n.lo:
		if !n.hasChildren() {
			n.lo = n.hi
			return true
		}
		first, _ := n.children.Min()
		low := first.child.min()
		n.lo = n.join(first.high, low)
		n.eraseChild(first, low)
		return true

	case v == n.hi:
		if !n.hasChildren() {
			n.hi = n.lo
			return true
		}
		last, _ := n.children.Max()
		low := last.child.max()
		n.hi = n.join(last.high, low)
		n.eraseChild(last, low)
		return true

	case v < n.lo || v > n.hi:
		return false
	}

	high, low := n.split(v)
	child := n.child(high)
	if child == nil {
		return false
	}
	return n.eraseChild(bucket{high: high, child: child}, low)
}

// eraseChild removes low from b's child and prunes the bucket once empty.
func (n *sparse) eraseChild(b bucket, low uint64) bool {
	ok := b.child.erase(low)
	if b.child.isEmpty() {
		n.children.Delete(b)
		n.a.release(b.child)
		if n.children.Len() == 0 {
			n.dropChildren()
		}
	}
	return ok
}

func (n *sparse) contains(v uint64) bool {
	n.a.visits.Add(1)
	if !n.used {
		return false
	}
	if v == n.lo || v == n.hi {
		return true
	}
	high, low := n.split(v)
	child := n.child(high)
	return child != nil && child.contains(low)
}

func (n *sparse) next(v uint64) (uint64, bool) {
	n.a.visits.Add(1)
	if !n.used || v >= n.hi {
		return 0, false
	}
	if v < n.lo {
		return n.lo, true
	}

	high, low := n.split(v)
	if child := n.child(high); child != nil && low < child.max() {
		l, _ := child.next(low)
		return n.join(high, l), true
	}
	b, ok := n.nextBucket(high)
	if !ok {
		return n.hi, true
	}
	return n.join(b.high, b.child.min()), true
}

func (n *sparse) prev(v uint64) (uint64, bool) {
	n.a.visits.Add(1)
	if !n.used || v <= n.lo {
		return 0, false
	}
	if v > n.hi {
		return n.hi, true
	}

	high, low := n.split(v)
	if child := n.child(high); child != nil && low > child.min() {
		l, _ := child.prev(low)
		return n.join(high, l), true
	}
	b, ok := n.prevBucket(high)
	if !ok {
		return n.lo, true
	}
	return n.join(b.high, b.child.max()), true
}
