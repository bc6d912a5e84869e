package veb

import "VanEmdeBoas/bits"

// dense covers universes of 9 to 16 bits. Both halves of a split fit a
// leaf, so children and summary are leaf bitmaps and the slot array has
// a fixed size, which lets every dense node come out of the same pool.
//
// lo and hi are never stored in a child.
type dense struct {
	a        *allocator
	width    uint8
	lower    uint8 // bits addressed inside a child
	used     bool
	lo, hi   uint64
	summary  leaf
	// Sized for the widest split (16 bits). Narrower nodes waste slots
	// (W=9 uses 32 of 256) so that all dense nodes share one block size.
	children [1 << leafWidth]*leaf
}

func (n *dense) init(a *allocator, width uint) {
	n.a = a
	n.width = uint8(width)
	n.lower = uint8(width / 2)
}

func (n *dense) split(v uint64) (high, low uint64) {
	return bits.Split(v, uint(n.lower))
}

func (n *dense) join(high, low uint64) uint64 {
	return bits.Join(high, low, uint(n.lower))
}

func (n *dense) isEmpty() bool { return !n.used }
func (n *dense) min() uint64   { return n.lo }
func (n *dense) max() uint64   { return n.hi }

func (n *dense) insert(v uint64) bool {
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
	child := n.children[high]
	if child == nil {
		child = n.a.leaves.get()
		child.insert(low)
		n.children[high] = child
		n.summary.insert(high)
		return true
	}
	return child.insert(low)
}

func (n *dense) erase(v uint64) bool {
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
		if n.summary.isEmpty() {
			n.lo = n.hi
			return true
		}
		high := n.summary.min()
		low := n.children[high].min()
		n.lo = n.join(high, low)
		n.eraseChild(high, low)
		return true

	case v == n.hi:
		if n.summary.isEmpty() {
			n.hi = n.lo
			return true
		}
		high := n.summary.max()
		low := n.children[high].max()
		n.hi = n.join(high, low)
		n.eraseChild(high, low)
		return true

	case v < n.lo || v > n.hi:
		return false
	}

	high, low := n.split(v)
	if n.children[high] == nil {
		return false
	}
	return n.eraseChild(high, low)
}

// eraseChild removes low from the child at high and prunes it once empty.
func (n *dense) eraseChild(high, low uint64) bool {
	child := n.children[high]
	ok := child.erase(low)
	if child.isEmpty() {
		n.children[high] = nil
		n.summary.erase(high)
		n.a.leaves.put(child)
	}
	return ok
}

func (n *dense) contains(v uint64) bool {
	n.a.visits.Add(1)
	if !n.used {
		return false
	}
	if v == n.lo || v == n.hi {
		return true
	}
	high, low := n.split(v)
	child := n.children[high]
	return child != nil && child.contains(low)
}

func (n *dense) next(v uint64) (uint64, bool) {
	n.a.visits.Add(1)
	if !n.used || v >= n.hi {
		return 0, false
	}
	if v < n.lo {
		return n.lo, true
	}

	high, low := n.split(v)
	if child := n.children[high]; child != nil && low < child.max() {
		l, _ := child.next(low)
		return n.join(high, l), true
	}
	nextHigh, ok := n.summary.next(high)
	if !ok {
		return n.hi, true
	}
	return n.join(nextHigh, n.children[nextHigh].min()), true
}

func (n *dense) prev(v uint64) (uint64, bool) {
	n.a.visits.Add(1)
	if !n.used || v <= n.lo {
		return 0, false
	}
	if v > n.hi {
		return n.hi, true
	}

	high, low := n.split(v)
	if child := n.children[high]; child != nil && low > child.min() {
		l, _ := child.prev(low)
		return n.join(high, l), true
	}
	prevHigh, ok := n.summary.prev(high)
	if !ok {
		return n.lo, true
	}
	return n.join(prevHigh, n.children[prevHigh].max()), true
}

// count returns the number of stored values.
func (n *dense) count() int {
	if !n.used {
		return 0
	}
	c := 1
	if n.lo != n.hi {
		c++
	}
	for _, child := range n.children {
		if child != nil {
			c += child.count()
		}
	}
	return c
}
