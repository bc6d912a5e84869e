package veb

import "unsafe"

// DefaultPoolChunkSize is the number of blocks carved out of one chunk.
const DefaultPoolChunkSize = 256

// PoolStats describes one fixed-size block pool.
type PoolStats struct {
	BlockBytes int    // size of one block
	Chunks     int    // chunks currently held
	Live       int    // blocks handed out and not yet returned
	Free       int    // blocks waiting on the free list
	Gets       uint64 // historical: total blocks handed out
	Puts       uint64 // historical: total blocks returned
}

// pool hands out fixed-size blocks of T. Returned blocks go onto a free
// list and are reused before a new chunk is carved. Not safe for
// concurrent use; every Set owns its pools.
type pool[T any] struct {
	chunkSize int
	chunks    [][]T
	used      int // slots carved from the last chunk
	free      []*T
	gets      uint64
	puts      uint64
}

func newPool[T any](chunkSize int) pool[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultPoolChunkSize
	}
	return pool[T]{chunkSize: chunkSize}
}

// get returns a zeroed block.
func (p *pool[T]) get() *T {
	p.gets++
	if n := len(p.free); n > 0 {
		x := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return x
	}
	if len(p.chunks) == 0 || p.used == p.chunkSize {
		p.chunks = append(p.chunks, make([]T, p.chunkSize))
		p.used = 0
	}
	x := &p.chunks[len(p.chunks)-1][p.used]
	p.used++
	return x
}

// put zeroes x and pushes it onto the free list.
func (p *pool[T]) put(x *T) {
	var zero T
	*x = zero
	p.free = append(p.free, x)
	p.puts++
}

// reset releases every chunk. Blocks handed out earlier must not be used.
func (p *pool[T]) reset() {
	p.chunks = nil
	p.free = nil
	p.used = 0
}

func (p *pool[T]) stats() PoolStats {
	carved := 0
	if n := len(p.chunks); n > 0 {
		carved = (n-1)*p.chunkSize + p.used
	}
	var zero T
	return PoolStats{
		BlockBytes: int(unsafe.Sizeof(zero)),
		Chunks:     len(p.chunks),
		Live:       carved - len(p.free),
		Free:       len(p.free),
		Gets:       p.gets,
		Puts:       p.puts,
	}
}

func (p *pool[T]) byteSize() int {
	var zero T
	return len(p.chunks)*p.chunkSize*int(unsafe.Sizeof(zero)) + cap(p.free)*int(unsafe.Sizeof((*T)(nil)))
}
