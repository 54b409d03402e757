package coll

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popAll[T any](t *testing.T, pop func() (T, bool), n int) []T {
	t.Helper()
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, ok := pop()
		require.True(t, ok, "pop %d", i)
		out = append(out, v)
	}
	return out
}

func TestListBasics(t *testing.T) {
	tests := []struct {
		name string
		push func(*List[int], int)
		pop  func(*List[int]) (int, bool)
		want []int
	}{
		{"push back pop back", (*List[int]).PushBack, (*List[int]).PopBack, []int{3, 2, 1}},
		{"push back pop front", (*List[int]).PushBack, (*List[int]).PopFront, []int{1, 2, 3}},
		{"push front pop front", (*List[int]).PushFront, (*List[int]).PopFront, []int{3, 2, 1}},
		{"push front pop back", (*List[int]).PushFront, (*List[int]).PopBack, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList[int]()
			for _, v := range []int{1, 2, 3} {
				tt.push(l, v)
			}
			assert.Equal(t, 3, l.Len())

			got := popAll(t, func() (int, bool) { return tt.pop(l) }, 3)
			assert.Equal(t, tt.want, got)

			assert.True(t, l.IsEmpty())
			assert.Equal(t, nilIndex, l.head)
			assert.Equal(t, nilIndex, l.tail)
			_, ok := tt.pop(l)
			assert.False(t, ok)
		})
	}
}

func TestListReuseAfterEmpty(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PopBack()
	l.PushFront(2)
	l.PushBack(3)
	assert.Equal(t, []int{2, 3}, slices.Collect(l.All()))
	assert.Equal(t, []int{3, 2}, slices.Collect(l.Backward()))
}

func TestListFrontBack(t *testing.T) {
	l := NewList[string]()
	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)

	l.PushBack("b")
	l.PushFront("a")
	l.PushBack("c")
	front, _ := l.Front()
	back, _ := l.Back()
	assert.Equal(t, "a", front)
	assert.Equal(t, "c", back)
	assert.Equal(t, "[a b c]", l.String())
}

func TestListRemovalRelocatesLastSlot(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)  // slot 0
	l.PushBack(2)  // slot 1
	l.PushFront(0) // slot 2, now head

	// popping the tail frees slot 1; the head node moves there
	v, _ := l.PopBack()
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, l.buf.Len())
	assert.Equal(t, 1, l.head)
	assert.Equal(t, 0, l.tail)
	assert.Equal(t, []int{0, 1}, slices.Collect(l.All()))
	assert.Equal(t, []int{1, 0}, slices.Collect(l.Backward()))

	// popping the head at slot 1 removes the last slot directly
	v, _ = l.PopFront()
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, l.head)
	assert.Equal(t, 0, l.tail)
	assert.Equal(t, nilIndex, l.node(0).prev)
	assert.Equal(t, nilIndex, l.node(0).next)
}

func TestListRemovalNeighbourIsLast(t *testing.T) {
	// tail's predecessor sits in the last slot
	l := NewList[int]()
	l.PushBack(2)  // slot 0
	l.PushFront(1) // slot 1
	l.PushBack(3)  // slot 2
	l.PushFront(0) // slot 3

	l.PopFront() // removes slot 3 directly
	l.PushBack(4) // slot 3 again
	// list: 1(1) 2(0) 3(2) 4(3); pop the head, whose successor is not last
	v, _ := l.PopFront()
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3, 4}, slices.Collect(l.All()))
	assert.Equal(t, []int{4, 3, 2}, slices.Collect(l.Backward()))

	// list: 2(0) 3(2) 4(1); pop the tail at slot 1 while its predecessor
	// lives in the last slot
	v, _ = l.PopBack()
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{2, 3}, slices.Collect(l.All()))
	assert.Equal(t, []int{3, 2}, slices.Collect(l.Backward()))
	assert.Equal(t, 2, l.buf.Len())
}

func TestListIter(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	l := CollectList(slices.Values(items))

	assert.Equal(t, items, slices.Collect(l.All()))
	rev := slices.Clone(items)
	slices.Reverse(rev)
	assert.Equal(t, rev, slices.Collect(l.Backward()))

	it := l.Iter()
	assert.Equal(t, 5, it.Len())
	steps := []struct {
		back bool
		want int
	}{
		{false, 1}, {true, 5}, {false, 2}, {true, 4}, {false, 3},
	}
	for _, s := range steps {
		var got int
		var ok bool
		if s.back {
			got, ok = it.NextBack()
		} else {
			got, ok = it.Next()
		}
		require.True(t, ok)
		assert.Equal(t, s.want, got)
	}
	_, ok := it.NextBack()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, it.Len())
}

func TestListIterMut(t *testing.T) {
	l := CollectList(slices.Values([]int{1, 2, 3, 4, 5}))

	it := l.IterMut()
	seen := map[*int]bool{}
	for {
		front := it.Next()
		if front == nil {
			break
		}
		back := it.NextBack()
		require.False(t, seen[front], "front cursor aliased a yielded node")
		seen[front] = true
		*front *= 10
		if back == nil {
			break
		}
		require.NotSame(t, front, back)
		require.False(t, seen[back], "back cursor aliased a yielded node")
		seen[back] = true
		*back *= 100
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, []int{10, 20, 30, 400, 500}, slices.Collect(l.All()))
	assert.Nil(t, it.Next())
	assert.Nil(t, it.NextBack())
}

func TestListIntoIter(t *testing.T) {
	l := CollectList(slices.Values([]int{1, 2, 3, 4, 5}))
	it := l.Clone().IntoIter()
	assert.Equal(t, 5, it.Len())

	a, _ := it.Next()
	b, _ := it.NextBack()
	c, _ := it.Next()
	d, _ := it.NextBack()
	e, _ := it.Next()
	assert.Equal(t, []int{1, 5, 2, 4, 3}, []int{a, b, c, d, e})
	_, ok := it.NextBack()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)

	assert.Equal(t, 5, l.Len(), "clone is independent")
}

func TestListUnordered(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushFront(0)
	l.PushBack(2)

	assert.Equal(t, []int{1, 0, 2}, slices.Collect(l.IterUnordered()))

	for p := range l.IterMutUnordered() {
		*p += 1
	}
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))

	vals := l.IntoUnordered()
	assert.Equal(t, []int{2, 1, 3}, vals)
	assert.True(t, l.IsEmpty())
	l.PushBack(9)
	assert.Equal(t, []int{9}, slices.Collect(l.All()))
}

func TestListReserveMetrics(t *testing.T) {
	l := ListWithCapacity[int64](10)
	m := l.Metrics()
	assert.Equal(t, 0, m.Len)
	assert.GreaterOrEqual(t, m.Capacity, 10)
	assert.Greater(t, m.ElemSize, 8, "nodes carry two link indices")
}

// TestListRandomOps checks, after every step of a random push/pop sequence,
// that forward and backward traversal mirror each other, that both match a
// reference deque, and that storage holds exactly the live values.
func TestListRandomOps(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 5))
		l := NewList[int]()
		var want []int
		pushes, pops := 0, 0

		for step := 0; step < 400; step++ {
			switch rng.IntN(4) {
			case 0:
				x := rng.Int()
				l.PushBack(x)
				want = append(want, x)
				pushes++
			case 1:
				x := rng.Int()
				l.PushFront(x)
				want = slices.Insert(want, 0, x)
				pushes++
			case 2:
				got, ok := l.PopBack()
				if len(want) == 0 {
					require.False(t, ok)
					continue
				}
				require.Equal(t, want[len(want)-1], got)
				want = want[:len(want)-1]
				pops++
			case 3:
				got, ok := l.PopFront()
				if len(want) == 0 {
					require.False(t, ok)
					continue
				}
				require.Equal(t, want[0], got)
				want = want[1:]
				pops++
			}

			fwd := slices.Collect(l.All())
			back := slices.Collect(l.Backward())
			slices.Reverse(back)
			require.Equal(t, fwd, back, "seed %d step %d", seed, step)
			require.Len(t, fwd, pushes-pops)
			require.Equal(t, pushes-pops, l.Len())
			require.Equal(t, l.Len(), l.buf.Len())
			if len(want) > 0 {
				require.Equal(t, want, fwd)
			}

			unordered := slices.Sorted(l.IterUnordered())
			require.Equal(t, slices.Sorted(slices.Values(fwd)), unordered)
		}
	}
}
