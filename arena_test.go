package coll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type arenaNode struct {
	key  int64
	next *arenaNode
}

func TestNewChunkArena(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		expected  int
	}{
		{"default chunk size", 0, defaultArenaChunk},
		{"negative chunk size", -1, defaultArenaChunk},
		{"custom chunk size", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newChunkArena[arenaNode](tt.chunkSize)
			assert.Equal(t, tt.expected, a.chunkSize)
			assert.Equal(t, 0, a.numChunks(), "chunks are allocated lazily")
		})
	}
}

func TestChunkArenaAlloc(t *testing.T) {
	a := newChunkArena[arenaNode](4)

	ptrs := make([]*arenaNode, 0, 12)
	for i := 0; i < 12; i++ {
		p := a.alloc()
		require.NotNil(t, p)
		assert.Zero(t, *p)
		p.key = int64(i)
		ptrs = append(ptrs, p)
	}

	// chunks double: 4 + 8
	assert.Equal(t, 2, a.numChunks())
	assert.Equal(t, 12, a.capacity())
	assert.Equal(t, 12, a.inUse)

	for i, p := range ptrs {
		assert.Equal(t, int64(i), p.key, "node %d overwritten", i)
	}
}

func TestChunkArenaChunkCap(t *testing.T) {
	a := newChunkArena[int](512)
	for i := 0; i < 512+1024+1024+1; i++ {
		a.alloc()
	}
	assert.Equal(t, 4, a.numChunks())
	assert.Equal(t, []int{512, 1024, 1024, 1024}, []int{
		len(a.chunks[0]), len(a.chunks[1]), len(a.chunks[2]), len(a.chunks[3]),
	})
}

func TestChunkArenaRelease(t *testing.T) {
	a := newChunkArena[arenaNode](4)
	p := a.alloc()
	p.key = 42
	p.next = p

	a.release(p)
	assert.Zero(t, *p, "released node must be cleared")
	assert.Equal(t, 0, a.inUse)

	q := a.alloc()
	assert.Same(t, p, q, "freed node is reused first")
	assert.Equal(t, 4, a.capacity())
}

func TestChunkArenaReset(t *testing.T) {
	a := newChunkArena[arenaNode](4)
	for i := 0; i < 10; i++ {
		a.alloc()
	}
	a.release(a.alloc())

	a.reset()
	assert.Equal(t, 0, a.numChunks())
	assert.Equal(t, 0, a.capacity())
	assert.Equal(t, 0, a.inUse)
	assert.Empty(t, a.free)

	assert.NotNil(t, a.alloc())
	assert.Equal(t, 1, a.numChunks())
}

func BenchmarkChunkArenaVsBuiltin(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		b.ReportAllocs()
		a := newChunkArena[arenaNode](0)
		for i := 0; i < b.N; i++ {
			a.alloc().key = int64(i)
			if i%1000 == 999 {
				a.reset()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ReportAllocs()
		var sink *arenaNode
		for i := 0; i < b.N; i++ {
			sink = &arenaNode{key: int64(i)}
		}
		_ = sink
	})
}
