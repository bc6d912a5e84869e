package veb

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"unsafe"

	"VanEmdeBoas/bits"
	"VanEmdeBoas/errutil"

	"golang.org/x/exp/constraints"
)

// Key is the set of key types a Set can hold.
type Key interface {
	constraints.Unsigned
}

// ErrInvalidWidth is returned by New for a universe width outside
// [1, 64] or wider than the key type.
var ErrInvalidWidth = errors.New("veb: invalid universe width")

// Set is an ordered set of integers from [0, 2^width).
//
// The representation is picked once from the width: a bitmap for up to 8
// bits, dense nodes with fixed slot arrays for up to 16 bits and sparse
// nodes that index their buckets with a B-tree above that.
//
// A Set is not safe for concurrent mutation. Concurrent read-only queries
// are safe as long as nobody writes.
type Set[K Key] struct {
	width    uint
	universe uint64
	size     int
	opts     options
	a        *allocator
	root     node
}

// New creates an empty set over [0, 2^width).
func New[K Key](width uint, opts ...Option) (*Set[K], error) {
	keyBits := uint(unsafe.Sizeof(K(0))) * 8
	if width == 0 || width > 64 || width > keyBits {
		return nil, fmt.Errorf("%w: %d bits for a %d-bit key", ErrInvalidWidth, width, keyBits)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Set[K]{
		width:    width,
		universe: bits.LowMask(width),
		opts:     o,
	}
	s.Clear()
	return s, nil
}

// MustNew is like New but panics on an invalid width.
func MustNew[K Key](width uint, opts ...Option) *Set[K] {
	s, err := New[K](width, opts...)
	errutil.FatalIf(err)
	return s
}

// Width returns the number of bits of the universe.
func (s *Set[K]) Width() uint { return s.width }

// Universe returns the largest value the set can hold.
func (s *Set[K]) Universe() uint64 { return s.universe }

// Levels returns the number of dense or sparse nodes an operation may
// pass through.
func (s *Set[K]) Levels() int { return Levels(s.width) }

// Len returns the number of stored values.
func (s *Set[K]) Len() int { return s.size }

// Empty reports whether the set holds no value.
func (s *Set[K]) Empty() bool { return s.size == 0 }

func (s *Set[K]) checkRange(v K) {
	if uint64(v) > s.universe {
		errutil.Bug("veb: value %d outside universe of width %d", uint64(v), s.width)
	}
}

// Insert adds v. Inserting a present value is a no-op.
func (s *Set[K]) Insert(v K) {
	s.checkRange(v)
	if s.root.insert(uint64(v)) {
		s.size++
		return
	}
	if errutil.Debug() {
		slog.Debug("veb: value already present", "value", uint64(v), "width", s.width)
	}
}

// Erase removes v. Erasing an absent value is a no-op.
func (s *Set[K]) Erase(v K) {
	s.checkRange(v)
	if s.root.erase(uint64(v)) {
		s.size--
		return
	}
	if errutil.Debug() {
		slog.Debug("veb: erase of absent value", "value", uint64(v), "width", s.width)
	}
}

// Contains reports whether v is stored.
func (s *Set[K]) Contains(v K) bool {
	s.checkRange(v)
	return s.root.contains(uint64(v))
}

// Min returns the smallest value, 0 for an empty set.
func (s *Set[K]) Min() K {
	errutil.BugOn(s.size == 0, "veb: Min of an empty set")
	return K(s.root.min())
}

// Max returns the largest value, 0 for an empty set.
func (s *Set[K]) Max() K {
	errutil.BugOn(s.size == 0, "veb: Max of an empty set")
	return K(s.root.max())
}

// Next returns the smallest stored value strictly greater than v.
func (s *Set[K]) Next(v K) (K, bool) {
	s.checkRange(v)
	n, ok := s.root.next(uint64(v))
	return K(n), ok
}

// Prev returns the largest stored value strictly less than v.
func (s *Set[K]) Prev(v K) (K, bool) {
	s.checkRange(v)
	p, ok := s.root.prev(uint64(v))
	return K(p), ok
}

// All yields the values in ascending order. The set must not be modified
// during iteration.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s.root.isEmpty() {
			return
		}
		for v, ok := s.root.min(), true; ok; v, ok = s.root.next(v) {
			if !yield(K(v)) {
				return
			}
		}
	}
}

// Backward yields the values in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s.root.isEmpty() {
			return
		}
		for v, ok := s.root.max(), true; ok; v, ok = s.root.prev(v) {
			if !yield(K(v)) {
				return
			}
		}
	}
}

// Clear removes every value and releases all pooled nodes.
func (s *Set[K]) Clear() {
	if s.a == nil {
		s.a = newAllocator(s.opts)
	} else {
		s.a.reset()
	}
	s.root = s.a.newEmpty(s.width)
	s.size = 0
}

const stringLimit = 32

func (s *Set[K]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "veb.Set[width=%d len=%d]{", s.width, s.size)
	i := 0
	for v := range s.All() {
		if i == stringLimit {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
		i++
	}
	sb.WriteByte('}')
	return sb.String()
}
