package coll

import (
	"fmt"
	"iter"
)

// Vector is a growable contiguous sequence built on RawBuffer.
// Slots [0, Len()) hold live elements; [Len(), Cap()) are unused.
//
// The zero value is an empty vector ready to use. A Vector must not be
// copied after first use; use Clone.
type Vector[T any] struct {
	buf RawBuffer[T]
	len int
}

// NewVector returns an empty vector. It does not allocate.
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{}
}

// VectorWithCapacity returns an empty vector with room for at least n
// elements. If n <= 0 no allocation is made.
func VectorWithCapacity[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	if n > 0 {
		v.Reserve(n)
	}
	return v
}

// VectorFromSlice takes ownership of s. The vector's length and capacity
// are both len(s); the caller must not use s afterwards.
func VectorFromSlice[T any](s []T) *Vector[T] {
	v := &Vector[T]{}
	if len(s) == 0 {
		return v
	}
	s = s[:len(s):len(s)]
	v.buf = RawBuffer[T]{ptr: &s[0], cap: len(s)}
	v.len = len(s)
	return v
}

// CollectVector builds a vector from every value produced by seq.
func CollectVector[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}
	v.Extend(seq)
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.len }

// Cap returns the number of elements the vector can hold without growing.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool { return v.len == 0 }

// Push appends val, growing the buffer if it is full. O(1) amortized.
func (v *Vector[T]) Push(val T) {
	if v.len == v.buf.Cap() {
		v.buf.Grow()
	}
	v.buf.Write(v.len, val)
	v.len++
}

// Pop removes and returns the last element. It reports false if the
// vector is empty.
func (v *Vector[T]) Pop() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	return v.popUnchecked(), true
}

func (v *Vector[T]) popUnchecked() T {
	v.len--
	return v.buf.Read(v.len)
}

// TryInsert inserts val at index, shifting every later element one slot
// right. It returns an *IndexError if index > Len().
func (v *Vector[T]) TryInsert(index int, val T) error {
	if index < 0 || index > v.len {
		return &IndexError{Op: "insert", Index: index, Len: v.len}
	}
	if v.len == v.buf.Cap() {
		v.buf.Grow()
	}
	v.buf.Shift(index, index+1, v.len-index)
	v.buf.Write(index, val)
	v.len++
	return nil
}

// TryRemove removes and returns the element at index, shifting every later
// element one slot left. It returns an *IndexError if index >= Len().
func (v *Vector[T]) TryRemove(index int) (T, error) {
	if index < 0 || index >= v.len {
		var zero T
		return zero, &IndexError{Op: "remove", Index: index, Len: v.len}
	}
	out := v.buf.Read(index)
	v.len--
	v.buf.Shift(index+1, index, v.len-index)
	v.buf.Clear(v.len, 1)
	return out, nil
}

// TrySwapRemove removes the element at index by moving the last element
// into its place. O(1), but the order of the remaining elements changes.
// It returns an *IndexError if index >= Len().
func (v *Vector[T]) TrySwapRemove(index int) (T, error) {
	if index < 0 || index >= v.len {
		var zero T
		return zero, &IndexError{Op: "swap remove", Index: index, Len: v.len}
	}
	v.swapUnchecked(index, v.len-1)
	return v.popUnchecked(), nil
}

// Insert is TryInsert that panics on an out-of-range index.
func (v *Vector[T]) Insert(index int, val T) {
	mustIndex(v.TryInsert(index, val))
}

// Remove is TryRemove that panics on an out-of-range index.
func (v *Vector[T]) Remove(index int) T {
	out, err := v.TryRemove(index)
	mustIndex(err)
	return out
}

// SwapRemove is TrySwapRemove that panics on an out-of-range index.
func (v *Vector[T]) SwapRemove(index int) T {
	out, err := v.TrySwapRemove(index)
	mustIndex(err)
	return out
}

// Swap exchanges the elements at i and j. Panics if either is out of range.
func (v *Vector[T]) Swap(i, j int) {
	v.checkIndex(i)
	v.checkIndex(j)
	v.swapUnchecked(i, j)
}

func (v *Vector[T]) swapUnchecked(i, j int) {
	if i == j {
		return
	}
	a, b := v.buf.Ref(i), v.buf.Ref(j)
	*a, *b = *b, *a
}

// Get returns the element at index. It reports false if index is out of
// range.
func (v *Vector[T]) Get(index int) (T, bool) {
	if index < 0 || index >= v.len {
		var zero T
		return zero, false
	}
	return *v.buf.Ref(index), true
}

// At returns a pointer to the element at index. The pointer is valid until
// the vector next grows or shrinks. Panics if index is out of range.
func (v *Vector[T]) At(index int) *T {
	v.checkIndex(index)
	return v.buf.Ref(index)
}

// Set overwrites the element at index. Panics if index is out of range.
func (v *Vector[T]) Set(index int, val T) {
	v.checkIndex(index)
	v.buf.Write(index, val)
}

func (v *Vector[T]) checkIndex(index int) {
	if index < 0 || index >= v.len {
		panic(fmt.Sprintf("index was %d when len was %d", index, v.len))
	}
}

// Reserve makes room for at least additional more elements while keeping
// exponential growth. It is a no-op if the capacity already suffices.
func (v *Vector[T]) Reserve(additional int) {
	if additional <= v.buf.Cap()-v.len {
		return
	}
	v.buf.Reserve(v.len + additional - v.buf.Cap())
}

// ShrinkToFit reallocates the buffer to exactly Len() slots.
func (v *Vector[T]) ShrinkToFit() {
	v.buf.Resize(v.len)
}

// IntoSlice shrinks the vector to fit and hands its allocation to the
// caller as a slice with len == cap == Len(). The vector is left empty and
// holds no allocation.
func (v *Vector[T]) IntoSlice() []T {
	v.ShrinkToFit()
	buf := v.buf.take()
	v.len = 0
	return buf.Slice(buf.Cap())
}

// AsSlice returns a view of the live elements. The view shares storage with
// the vector and is invalidated by any operation that grows or shrinks it.
func (v *Vector[T]) AsSlice() []T {
	return v.buf.Slice(v.len)
}

// Truncate drops every element at index n and beyond. It is a no-op if
// n >= Len().
func (v *Vector[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.len {
		return
	}
	v.buf.Clear(n, v.len-n)
	v.len = n
}

// Clear removes all elements but keeps the allocation.
func (v *Vector[T]) Clear() {
	v.Truncate(0)
}

// Extend appends every value produced by seq.
func (v *Vector[T]) Extend(seq iter.Seq[T]) {
	for val := range seq {
		v.Push(val)
	}
}

// AppendSlice appends the elements of s, reserving room for all of them
// first.
func (v *Vector[T]) AppendSlice(s []T) {
	v.Reserve(len(s))
	for _, val := range s {
		v.Push(val)
	}
}

// All yields index/element pairs in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, *v.buf.Ref(i)) {
				return
			}
		}
	}
}

// Values yields elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(*v.buf.Ref(i)) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.len - 1; i >= 0; i-- {
			if !yield(i, *v.buf.Ref(i)) {
				return
			}
		}
	}
}

// Pointers yields index/pointer pairs in index order so elements can be
// modified in place. The vector must not grow or shrink during iteration.
func (v *Vector[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, v.buf.Ref(i)) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the vector with capacity Len().
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	out.buf.Resize(v.len)
	copy(out.buf.Slice(v.len), v.AsSlice())
	out.len = v.len
	return out
}

// String renders the live elements the way fmt renders a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.AsSlice())
}

// EqualVectors reports whether a and b hold equal elements in the same order.
func EqualVectors[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	as, bs := a.AsSlice(), b.AsSlice()
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// IntoIter transfers the vector's elements to an owning iterator. The
// vector is left empty and may be reused. The iterator reads each slot
// exactly once from either end.
func (v *Vector[T]) IntoIter() *VectorIntoIter[T] {
	it := &VectorIntoIter[T]{buf: v.buf.take(), end: v.len}
	v.len = 0
	return it
}

// VectorIntoIter is a double-ended owning iterator over the elements of a
// consumed vector.
type VectorIntoIter[T any] struct {
	buf     RawBuffer[T]
	current int
	end     int
}

// Next returns the front element. It reports false once the iterator is
// exhausted.
func (it *VectorIntoIter[T]) Next() (T, bool) {
	if it.current == it.end {
		var zero T
		return zero, false
	}
	val := it.buf.Read(it.current)
	it.current++
	return val, true
}

// NextBack returns the back element. It reports false once the iterator is
// exhausted.
func (it *VectorIntoIter[T]) NextBack() (T, bool) {
	if it.current == it.end {
		var zero T
		return zero, false
	}
	it.end--
	return it.buf.Read(it.end), true
}

// Len returns the number of elements not yet yielded.
func (it *VectorIntoIter[T]) Len() int {
	return it.end - it.current
}

// Seq drains the remaining elements front to back.
func (it *VectorIntoIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := it.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Close discards every element not yet yielded and releases the buffer.
// Calling Close more than once is safe.
func (it *VectorIntoIter[T]) Close() {
	for it.current != it.end {
		it.buf.Read(it.current)
		it.current++
	}
	it.buf.Release()
	it.current, it.end = 0, 0
}
