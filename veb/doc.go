// Package veb implements van Emde Boas sets: ordered sets of fixed-width
// unsigned integers. For a universe of W bits, insert, erase, membership
// and successor/predecessor pass through at most O(log W) nodes; min and
// max are O(1). Above 16 bits each node finds its child in a B-tree, which
// adds a logarithmic lookup in the number of populated buckets.
//
// A value is split into a high half that selects a child and a low half
// stored inside it. Every node caches its minimum and maximum outside its
// children, so successor and predecessor queries descend into exactly one
// child per level.
//
//	s := veb.MustNew[uint32](32)
//	s.Insert(10)
//	s.Insert(20)
//	next, ok := s.Next(10) // 20, true
//
// Leaf and dense nodes are recycled through pools owned by each set;
// sparse nodes index their children with github.com/google/btree.
package veb
