// Package radixsort sorts slices in place by a 64-bit key using an
// MSD American-flag radix sort. Short inputs and short segments fall
// back to a comparison sort. The sort is not stable.
package radixsort

import (
	"cmp"
	"slices"
)

const (
	digitBits = 8
	buckets   = 1 << digitBits
	topShift  = 64 - digitBits

	minRadixSegment = buckets
	minRadixInput   = 1 << 12
)

type segment struct {
	lo, hi int
	shift  uint
}

// SortFunc sorts data by ascending key(x).
func SortFunc[T any](data []T, key func(T) uint64) {
	if len(data) < minRadixInput {
		sortByKey(data, key)
		return
	}
	msd(data, key)
}

// SortDescFunc sorts data by descending key(x).
func SortDescFunc[T any](data []T, key func(T) uint64) {
	SortFunc(data, func(x T) uint64 { return ^key(x) })
}

// Uint64s sorts data ascending.
func Uint64s(data []uint64) {
	SortFunc(data, func(x uint64) uint64 { return x })
}

func sortByKey[T any](data []T, key func(T) uint64) {
	slices.SortFunc(data, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

func msd[T any](data []T, key func(T) uint64) {
	var counts, heads [buckets]int
	stack := []segment{{lo: 0, hi: len(data), shift: topShift}}

	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		part := data[seg.lo:seg.hi]
		if len(part) < minRadixSegment {
			sortByKey(part, key)
			continue
		}

		shift := seg.shift
		digit := func(x T) int { return int(key(x)>>shift) & (buckets - 1) }

		counts = [buckets]int{}
		for _, x := range part {
			counts[digit(x)]++
		}

		// Every key shares this digit: go one digit deeper without moving anything.
		if counts[digit(part[0])] == len(part) {
			if shift > 0 {
				stack = append(stack, segment{lo: seg.lo, hi: seg.hi, shift: shift - digitBits})
			}
			continue
		}

		sum := 0
		for b, c := range counts {
			heads[b] = sum
			sum += c
		}

		// Buckets before b are complete, so an element found in bucket b's
		// region always moves forward.
		end := 0
		for b := 0; b < buckets; b++ {
			end += counts[b]
			for heads[b] < end {
				d := digit(part[heads[b]])
				if d == b {
					heads[b]++
					continue
				}
				part[heads[b]], part[heads[d]] = part[heads[d]], part[heads[b]]
				heads[d]++
			}
		}

		if shift == 0 {
			continue
		}
		start := seg.lo
		for _, c := range counts {
			if c > 1 {
				stack = append(stack, segment{lo: start, hi: start + c, shift: shift - digitBits})
			}
			start += c
		}
	}
}
