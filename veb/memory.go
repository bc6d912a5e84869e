package veb

import (
	"unsafe"

	"VanEmdeBoas/utils"
)

type nodeCensus struct {
	leaves  int
	dense   int
	sparse  int
	buckets int
	values  int
}

func (c *nodeCensus) walk(n node) {
	switch n := n.(type) {
	case *leaf:
		c.leaves++
		c.values += n.count()
	case *dense:
		c.dense++
		c.values += n.count()
		for _, child := range n.children {
			if child != nil {
				c.leaves++
			}
		}
	case *sparse:
		c.sparse++
		if !n.used {
			return
		}
		c.values++
		if n.lo != n.hi {
			c.values++
		}
		if n.children == nil {
			return
		}
		c.buckets += n.children.Len()
		n.children.Ascend(func(b bucket) bool {
			c.walk(b.child)
			return true
		})
	}
}

// ByteSize returns the approximate number of bytes held by the set.
func (s *Set[K]) ByteSize() int {
	return s.MemDetailed().TotalBytes
}

// MemDetailed breaks ByteSize down by node kind. Pool figures include
// carved but unused blocks; B-tree figures count items only.
func (s *Set[K]) MemDetailed() utils.MemReport {
	var c nodeCensus
	c.walk(s.root)

	report := utils.MemReport{
		Name:       "veb.Set",
		TotalBytes: int(unsafe.Sizeof(*s)) + int(unsafe.Sizeof(*s.a)),
		Count:      c.leaves + c.dense + c.sparse,
	}
	report.Add(utils.MemReport{
		Name:       "leaf pool",
		TotalBytes: s.a.leaves.byteSize(),
		Count:      c.leaves,
	})
	report.Add(utils.MemReport{
		Name:       "dense pool",
		TotalBytes: s.a.denses.byteSize(),
		Count:      c.dense,
	})
	report.Add(utils.MemReport{
		Name:       "sparse nodes",
		TotalBytes: c.sparse*int(unsafe.Sizeof(sparse{})) + c.buckets*int(unsafe.Sizeof(bucket{})),
		Count:      c.sparse,
	})
	return report
}
