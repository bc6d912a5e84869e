package veb_test

import (
	"fmt"
	"slices"

	"VanEmdeBoas/veb"
)

func ExampleSet() {
	s := veb.MustNew[uint32](32)
	for _, v := range []uint32{30, 10, 20} {
		s.Insert(v)
	}

	next, ok := s.Next(15)
	fmt.Println(next, ok)
	prev, ok := s.Prev(10)
	fmt.Println(prev, ok)

	s.Erase(20)
	fmt.Println(slices.Collect(s.All()))
	fmt.Println(s.Len(), s.Min(), s.Max())
	// Output:
	// 20 true
	// 0 false
	// [10 30]
	// 2 10 30
}

func ExampleSet_Backward() {
	s := veb.MustNew[uint64](64)
	s.Insert(1 << 63)
	s.Insert(42)
	s.Insert(0)

	for v := range s.Backward() {
		fmt.Println(v)
	}
	// Output:
	// 9223372036854775808
	// 42
	// 0
}
