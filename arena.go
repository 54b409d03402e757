package coll

const (
	// defaultArenaChunk is the number of nodes in the first chunk of a
	// chunkArena.
	defaultArenaChunk = 64

	// maxArenaChunk caps chunk growth.
	maxArenaChunk = 1024
)

// chunkArena is a typed chunked bump allocator. Nodes are handed out from
// the current chunk until it is full, then a new chunk twice the size of
// the previous one is added. Freed nodes are zeroed and recycled before
// the bump pointer advances again. Not goroutine-safe.
//
// Pointers returned by alloc stay valid until reset: chunks are never
// reallocated, only appended.
type chunkArena[T any] struct {
	chunks    [][]T
	offset    int // bump offset within the last chunk
	chunkSize int
	free      []*T
	inUse     int
}

// newChunkArena returns an arena whose first chunk holds chunkSize nodes.
// If chunkSize <= 0, defaultArenaChunk is used. No chunk is allocated until
// the first alloc.
func newChunkArena[T any](chunkSize int) *chunkArena[T] {
	if chunkSize <= 0 {
		chunkSize = defaultArenaChunk
	}
	return &chunkArena[T]{chunkSize: chunkSize}
}

// alloc returns a zeroed node.
func (a *chunkArena[T]) alloc() *T {
	a.inUse++
	if n := len(a.free); n > 0 {
		p := a.free[n-1]
		a.free[n-1] = nil
		a.free = a.free[:n-1]
		return p
	}

	// Fast path: room in the current chunk
	if ci := len(a.chunks) - 1; ci >= 0 && a.offset < len(a.chunks[ci]) {
		p := &a.chunks[ci][a.offset]
		a.offset++
		return p
	}

	return a.allocSlow()
}

// allocSlow adds a chunk and allocates from it.
func (a *chunkArena[T]) allocSlow() *T {
	a.grow()
	c := a.chunks[len(a.chunks)-1]
	a.offset = 1
	return &c[0]
}

// grow appends a new chunk, doubling the previous chunk size up to
// maxArenaChunk.
func (a *chunkArena[T]) grow() {
	size := a.chunkSize
	if n := len(a.chunks); n > 0 {
		size = 2 * len(a.chunks[n-1])
		if size > maxArenaChunk {
			size = max(maxArenaChunk, a.chunkSize)
		}
	}
	a.chunks = append(a.chunks, allocSlice[T](size))
}

// release zeroes p and makes it available to the next alloc.
// p must have come from this arena and must not be used afterwards.
func (a *chunkArena[T]) release(p *T) {
	var zero T
	*p = zero
	a.free = append(a.free, p)
	a.inUse--
}

// reset drops every chunk. All outstanding pointers become invalid.
func (a *chunkArena[T]) reset() {
	a.chunks = nil
	a.free = nil
	a.offset = 0
	a.inUse = 0
}

// numChunks returns the number of chunks allocated so far.
func (a *chunkArena[T]) numChunks() int {
	return len(a.chunks)
}

// capacity returns the total number of node slots across all chunks.
func (a *chunkArena[T]) capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c)
	}
	return sum
}
