package veb

import (
	mathbits "math/bits"

	"VanEmdeBoas/bits"
)

// leafWidth is the widest universe a leaf bitmap covers.
const leafWidth = 8

// leaf is a bitmap over [0..255], the bottom of every recursion.
//
// i>>6 selects the word and i&63 the bit, [x&3] lets the compiler drop
// the bounds check. Values above 255 are a caller bug.
type leaf [4]uint64

func (l *leaf) isEmpty() bool {
	return l[0]|l[1]|l[2]|l[3] == 0
}

func (l *leaf) insert(v uint64) bool {
	w, m := v>>6&3, uint64(1)<<(v&63)
	if l[w]&m != 0 {
		return false
	}
	l[w] |= m
	return true
}

func (l *leaf) erase(v uint64) bool {
	w, m := v>>6&3, uint64(1)<<(v&63)
	if l[w]&m == 0 {
		return false
	}
	l[w] &^= m
	return true
}

func (l *leaf) contains(v uint64) bool {
	return l[v>>6&3]&(1<<(v&63)) != 0
}

// min returns the first set bit, 0 for an empty leaf.
func (l *leaf) min() uint64 {
	for w, word := range l {
		if word != 0 {
			return uint64(w<<6 + bits.LeastSignificantBit(word))
		}
	}
	return 0
}

// max returns the last set bit, 0 for an empty leaf.
func (l *leaf) max() uint64 {
	for w := 3; w >= 0; w-- {
		if word := l[w]; word != 0 {
			return uint64(w<<6 + bits.MostSignificantBit(word))
		}
	}
	return 0
}

// next returns the first set bit strictly above v.
func (l *leaf) next(v uint64) (uint64, bool) {
	if v >= 255 {
		return 0, false
	}
	start := v + 1
	w := int(start >> 6)

	// first (maybe partial) word
	if word := l[w&3] >> (start & 63); word != 0 {
		return start + uint64(bits.LeastSignificantBit(word)), true
	}
	for w++; w < 4; w++ {
		if word := l[w]; word != 0 {
			return uint64(w<<6 + bits.LeastSignificantBit(word)), true
		}
	}
	return 0, false
}

// prev returns the last set bit strictly below v.
func (l *leaf) prev(v uint64) (uint64, bool) {
	if v == 0 {
		return 0, false
	}
	if v > 256 {
		v = 256
	}
	end := v - 1
	w := int(end >> 6)

	// bits 0..end&63 of the first word
	if word := l[w&3] & (^uint64(0) >> (63 - end&63)); word != 0 {
		return uint64(w<<6 + bits.MostSignificantBit(word)), true
	}
	for w--; w >= 0; w-- {
		if word := l[w]; word != 0 {
			return uint64(w<<6 + bits.MostSignificantBit(word)), true
		}
	}
	return 0, false
}

func (l *leaf) count() int {
	return mathbits.OnesCount64(l[0]) + mathbits.OnesCount64(l[1]) +
		mathbits.OnesCount64(l[2]) + mathbits.OnesCount64(l[3])
}
