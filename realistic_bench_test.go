package coll

import (
	"container/list"
	"strconv"
	"testing"
)

// BenchmarkRealisticUsage compares the containers against their standard
// library counterparts on common workloads
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Append-heavy buffers
	b.Run("Push/Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			v := NewVector[int64]()
			for j := 0; j < 1000; j++ {
				v.Push(int64(j))
			}
		}
	})

	b.Run("Push/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []int64
			for j := 0; j < 1000; j++ {
				s = append(s, int64(j))
			}
			_ = s
		}
	})

	// Test 2: Front inserts (O(n) shifts)
	b.Run("InsertFront/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := VectorWithCapacity[int](256)
			for j := 0; j < 256; j++ {
				v.Insert(0, j)
			}
		}
	})

	// Test 3: Map with string keys
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}

	b.Run("MapInsertGet/Chained", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			m := NewMap[string, int]()
			for j, k := range keys {
				m.Insert(k, j)
			}
			for _, k := range keys {
				m.Get(k)
			}
		}
	})

	b.Run("MapInsertGet/ChainedXXHash", func(b *testing.B) {
		b.ReportAllocs()
		h := NewStringHasher(1)
		for i := 0; i < b.N; i++ {
			m := NewMap[string, int](WithHasher[string](h))
			for j, k := range keys {
				m.Insert(k, j)
			}
			for _, k := range keys {
				m.Get(k)
			}
		}
	})

	b.Run("MapInsertGet/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			m := map[string]int{}
			for j, k := range keys {
				m[k] = j
			}
			for _, k := range keys {
				_ = m[k]
			}
		}
	})

	// Test 4: Deque churn
	b.Run("Deque/List", func(b *testing.B) {
		b.ReportAllocs()
		l := NewList[int]()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
			l.PushFront(i)
			if l.Len() > 512 {
				l.PopFront()
				l.PopBack()
			}
		}
	})

	b.Run("Deque/ContainerList", func(b *testing.B) {
		b.ReportAllocs()
		l := list.New()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
			l.PushFront(i)
			if l.Len() > 512 {
				l.Remove(l.Front())
				l.Remove(l.Back())
			}
		}
	})
}

func BenchmarkListIteration(b *testing.B) {
	l := NewList[int]()
	for i := 0; i < 4096; i++ {
		if i%2 == 0 {
			l.PushBack(i)
		} else {
			l.PushFront(i)
		}
	}

	b.Run("Ordered", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for v := range l.All() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("Unordered", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum := 0
			for v := range l.IterUnordered() {
				sum += v
			}
			_ = sum
		}
	})
}
