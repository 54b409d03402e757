package main

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/pavanmanishd/coll"
)

// report is the outcome of one workload run.
type report struct {
	Container string              `json:"container"`
	Ops       int                 `json:"ops"`
	Seed      uint64              `json:"seed"`
	Len       int                 `json:"len"`
	Buffer    *coll.BufferMetrics `json:"buffer,omitempty"`
	Table     *coll.MapMetrics    `json:"table,omitempty"`
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// runVector mixes pushes, pops, inserts and removals, mirroring each one on
// a slice.
func runVector(n int, seed uint64) (report, error) {
	rng := newRand(seed)
	v := coll.NewVector[int]()
	var ref []int

	for op := 0; op < n; op++ {
		x := rng.Int()
		switch rng.IntN(6) {
		case 0, 1:
			v.Push(x)
			ref = append(ref, x)
		case 2:
			got, ok := v.Pop()
			if len(ref) == 0 {
				if ok {
					return report{}, fmt.Errorf("op %d: pop on empty vector returned %d", op, got)
				}
				continue
			}
			want := ref[len(ref)-1]
			ref = ref[:len(ref)-1]
			if !ok || got != want {
				return report{}, fmt.Errorf("op %d: pop returned %d, want %d", op, got, want)
			}
		case 3:
			i := rng.IntN(len(ref) + 1)
			if err := v.TryInsert(i, x); err != nil {
				return report{}, fmt.Errorf("op %d: %w", op, err)
			}
			ref = slices.Insert(ref, i, x)
		case 4:
			if len(ref) == 0 {
				if _, err := v.TryRemove(0); err == nil {
					return report{}, fmt.Errorf("op %d: remove on empty vector succeeded", op)
				}
				continue
			}
			i := rng.IntN(len(ref))
			got, err := v.TryRemove(i)
			if err != nil {
				return report{}, fmt.Errorf("op %d: %w", op, err)
			}
			if got != ref[i] {
				return report{}, fmt.Errorf("op %d: remove(%d) returned %d, want %d", op, i, got, ref[i])
			}
			ref = slices.Delete(ref, i, i+1)
		case 5:
			if len(ref) == 0 {
				continue
			}
			i := rng.IntN(len(ref))
			got, err := v.TrySwapRemove(i)
			if err != nil {
				return report{}, fmt.Errorf("op %d: %w", op, err)
			}
			if got != ref[i] {
				return report{}, fmt.Errorf("op %d: swap remove(%d) returned %d, want %d", op, i, got, ref[i])
			}
			ref[i] = ref[len(ref)-1]
			ref = ref[:len(ref)-1]
		}
	}
	if !slices.Equal(v.AsSlice(), ref) {
		return report{}, fmt.Errorf("final contents diverged after %d ops", n)
	}
	m := v.Metrics()
	return report{Container: "vector", Ops: n, Seed: seed, Len: v.Len(), Buffer: &m}, nil
}

// keySpace keeps keys dense enough that replaces and removals hit.
func keySpace(n int) int {
	return max(n/2, 16)
}

// runMap mixes inserts, removals and lookups, mirroring each one on a
// builtin map.
func runMap(n int, seed uint64) (report, error) {
	rng := newRand(seed)
	m := coll.NewMap[int, int]()
	ref := map[int]int{}
	space := keySpace(n)

	for op := 0; op < n; op++ {
		k, x := rng.IntN(space), rng.Int()
		switch rng.IntN(4) {
		case 0, 1:
			_, prev, replaced := m.Insert(k, x)
			want, had := ref[k]
			if replaced != had || (had && prev != want) {
				return report{}, fmt.Errorf("op %d: insert(%d) replaced=%v prev=%d, want %v %d", op, k, replaced, prev, had, want)
			}
			ref[k] = x
		case 2:
			got, ok := m.Remove(k)
			want, had := ref[k]
			if ok != had || got != want {
				return report{}, fmt.Errorf("op %d: remove(%d) = %d %v, want %d %v", op, k, got, ok, want, had)
			}
			delete(ref, k)
		case 3:
			got, ok := m.Get(k)
			want, had := ref[k]
			if ok != had || got != want {
				return report{}, fmt.Errorf("op %d: get(%d) = %d %v, want %d %v", op, k, got, ok, want, had)
			}
		}
		if m.Len() != len(ref) {
			return report{}, fmt.Errorf("op %d: len %d, want %d", op, m.Len(), len(ref))
		}
	}
	if !maps.Equal(maps.Collect(m.All()), ref) {
		return report{}, fmt.Errorf("final contents diverged after %d ops", n)
	}
	t := m.Metrics()
	return report{Container: "map", Ops: n, Seed: seed, Len: m.Len(), Table: &t}, nil
}

// runSet hashes string members with the seeded xxhash hasher.
func runSet(n int, seed uint64) (report, error) {
	rng := newRand(seed)
	s := coll.NewSet[string](coll.WithHasher[string](coll.NewStringHasher(seed)))
	ref := map[string]struct{}{}
	space := keySpace(n)

	for op := 0; op < n; op++ {
		key := fmt.Sprintf("member-%d", rng.IntN(space))
		_, had := ref[key]
		switch rng.IntN(3) {
		case 0:
			if _, replaced := s.Insert(key); replaced != had {
				return report{}, fmt.Errorf("op %d: insert(%q) replaced=%v, want %v", op, key, replaced, had)
			}
			ref[key] = struct{}{}
		case 1:
			if _, ok := s.Remove(key); ok != had {
				return report{}, fmt.Errorf("op %d: remove(%q) = %v, want %v", op, key, ok, had)
			}
			delete(ref, key)
		case 2:
			if s.Contains(key) != had {
				return report{}, fmt.Errorf("op %d: contains(%q) = %v, want %v", op, key, !had, had)
			}
		}
	}
	if s.Len() != len(ref) {
		return report{}, fmt.Errorf("final len %d, want %d", s.Len(), len(ref))
	}
	for key := range s.All() {
		if _, ok := ref[key]; !ok {
			return report{}, fmt.Errorf("unexpected member %q", key)
		}
	}
	t := s.Metrics()
	return report{Container: "set", Ops: n, Seed: seed, Len: s.Len(), Table: &t}, nil
}

// runList pushes and pops at both ends, mirroring each one on a slice used
// as a deque, and checks both traversal orders at the end.
func runList(n int, seed uint64) (report, error) {
	rng := newRand(seed)
	l := coll.NewList[int]()
	var ref []int

	for op := 0; op < n; op++ {
		x := rng.Int()
		switch rng.IntN(4) {
		case 0:
			l.PushBack(x)
			ref = append(ref, x)
		case 1:
			l.PushFront(x)
			ref = slices.Insert(ref, 0, x)
		case 2:
			got, ok := l.PopBack()
			if len(ref) == 0 {
				if ok {
					return report{}, fmt.Errorf("op %d: pop back on empty list returned %d", op, got)
				}
				continue
			}
			want := ref[len(ref)-1]
			ref = ref[:len(ref)-1]
			if !ok || got != want {
				return report{}, fmt.Errorf("op %d: pop back returned %d, want %d", op, got, want)
			}
		case 3:
			got, ok := l.PopFront()
			if len(ref) == 0 {
				if ok {
					return report{}, fmt.Errorf("op %d: pop front on empty list returned %d", op, got)
				}
				continue
			}
			want := ref[0]
			ref = ref[1:]
			if !ok || got != want {
				return report{}, fmt.Errorf("op %d: pop front returned %d, want %d", op, got, want)
			}
		}
	}
	if !slices.Equal(slices.Collect(l.All()), ref) {
		return report{}, fmt.Errorf("forward order diverged after %d ops", n)
	}
	back := slices.Collect(l.Backward())
	slices.Reverse(back)
	if !slices.Equal(back, ref) {
		return report{}, fmt.Errorf("backward order diverged after %d ops", n)
	}
	if got := len(slices.Collect(l.IterUnordered())); got != len(ref) {
		return report{}, fmt.Errorf("storage holds %d nodes, want %d", got, len(ref))
	}
	b := l.Metrics()
	return report{Container: "list", Ops: n, Seed: seed, Len: l.Len(), Buffer: &b}, nil
}
