package veb

type options struct {
	chunkSize    int
	degree       int
	freeListSize int
}

func defaultOptions() options {
	return options{
		chunkSize:    DefaultPoolChunkSize,
		degree:       DefaultBTreeDegree,
		freeListSize: DefaultFreeListSize,
	}
}

// Option configures a Set at construction.
type Option func(*options)

// WithPoolChunkSize sets how many leaf or dense nodes are carved out of
// one pool chunk. Non-positive values keep DefaultPoolChunkSize.
func WithPoolChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithBTreeDegree sets the degree of the B-trees that index the buckets
// of sparse nodes. Values below 2 keep DefaultBTreeDegree.
func WithBTreeDegree(d int) Option {
	return func(o *options) {
		if d >= 2 {
			o.degree = d
		}
	}
}

// WithFreeListSize bounds the number of B-tree nodes recycled per set.
func WithFreeListSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.freeListSize = n
		}
	}
}
