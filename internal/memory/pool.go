// Package memory implements encoding.MemoryPool, the allocation tracking
// collaborator DELTA_BYTE_ARRAY decoding uses for the per-value buffers it
// must own outright (see encoding/delta.ByteArrayDecoder).
package memory

import (
	"sync"
	"sync/atomic"

	"github.com/segmentio/parquet-decoding/internal/buffers"
)

// Pool is a size-classed free list of byte slices plus a running total of
// bytes currently checked out: round a request up to the next power of two
// and hand back a slice from that size class's free list when one is
// available, otherwise allocate fresh. The free-list hit and oversized
// (unbucketed) paths both resize through internal/buffers.Ensure rather
// than slicing or allocating directly.
type Pool struct {
	classes   [numClasses]sync.Pool
	allocated int64
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return new(Pool)
}

// Allocate returns a slice of exactly size bytes, reused from the pool's
// free list when possible.
func (p *Pool) Allocate(size int) []byte {
	atomic.AddInt64(&p.allocated, int64(size))
	class, capacity := sizeClass(size)
	if class < 0 {
		return buffers.Ensure(nil, size)
	}
	if v := p.classes[class].Get(); v != nil {
		return buffers.Ensure(v.([]byte), size)
	}
	return make([]byte, size, capacity)
}

// Release returns buf to the pool's free list, making it eligible to be
// handed back out by a later Allocate of the same size class. Callers must
// not use buf after calling Release.
func (p *Pool) Release(buf []byte) {
	atomic.AddInt64(&p.allocated, -int64(len(buf)))
	class, capacity := sizeClass(cap(buf))
	if class < 0 {
		return
	}
	p.classes[class].Put(buf[:0:capacity])
}

// Allocated reports the number of bytes currently checked out of the pool,
// i.e. allocated but not yet released.
func (p *Pool) Allocated() int64 {
	return atomic.LoadInt64(&p.allocated)
}

const numClasses = 20 // covers size classes up to 2^19 = 512Ki

// sizeClass returns the index of the smallest power-of-two size class that
// fits size, and that class's capacity. It returns (-1, 0) for sizes too
// large to bucket, in which case the caller allocates exactly size bytes
// and Release is a no-op for accounting purposes beyond the counter.
func sizeClass(size int) (class int, capacity int) {
	capacity = 1
	for class = 0; class < numClasses; class++ {
		if capacity >= size {
			return class, capacity
		}
		capacity <<= 1
	}
	return -1, 0
}
