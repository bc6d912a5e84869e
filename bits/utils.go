package bits

import "math/bits"

// MostSignificantBit returns the index of the most significant bit.
func MostSignificantBit(x uint64) int {
	if x == 0 {
		return -1
	}
	// 63 - bits.LeadingZeros64(x) behaves identically to
	// 63 - __builtin_clzll(x)
	return 63 - bits.LeadingZeros64(x)
}

// LeastSignificantBit returns the index of the least significant bit.
func LeastSignificantBit(x uint64) int {
	if x == 0 {
		return -1
	}
	return bits.TrailingZeros64(x)
}

// LowMask returns a word with the lowest width bits set.
func LowMask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Split cuts v into the bucket index above lowerWidth and the offset below it.
func Split(v uint64, lowerWidth uint) (high, low uint64) {
	return v >> lowerWidth, v & LowMask(lowerWidth)
}

// Join is the inverse of Split.
func Join(high, low uint64, lowerWidth uint) uint64 {
	return high<<lowerWidth | low
}

// WidthFor returns the number of bits needed to represent x, at least 1.
func WidthFor(x uint64) uint {
	return uint(max(1, bits.Len64(x)))
}
