package coll

// RawBuffer owns one heap allocation sized for Cap() elements of T.
// It has no notion of how many slots are live; that is the owner's job.
//
// Write, Read, Shift and Clear are unchecked. The owner keeps every index
// inside [0, Cap()) and only reads slots it has written and not yet read.
// A RawBuffer must not be copied once it has allocated.
type RawBuffer[T any] struct {
	ptr *T
	cap int
}

// NewRawBuffer returns an empty buffer. It does not allocate.
func NewRawBuffer[T any]() RawBuffer[T] {
	return RawBuffer[T]{}
}

// Cap returns the number of element slots backed by the allocation.
func (b *RawBuffer[T]) Cap() int {
	return b.cap
}

// Grow makes room for at least one more element.
func (b *RawBuffer[T]) Grow() {
	b.Reserve(1)
}

// Reserve grows the buffer by at least additional slots while keeping
// exponential growth: the new capacity is the larger of twice the current
// capacity (or the start capacity for T when empty) and cap+additional.
func (b *RawBuffer[T]) Reserve(additional int) {
	newCap := startCapacity[T]()
	if b.cap != 0 {
		newCap = 2 * b.cap
	}
	if want := b.cap + additional; want > newCap || want < b.cap {
		newCap = want
	}
	b.Resize(newCap)
}

// Resize reallocates the buffer to exactly newCap slots, keeping the first
// min(Cap(), newCap) slots. Resizing to zero releases the allocation.
// Panics with *AllocError if newCap slots cannot be addressed.
func (b *RawBuffer[T]) Resize(newCap int) {
	checkLayout(newCap, sizeOf[T]())
	if newCap == b.cap {
		return
	}
	oldCap := b.cap
	next := allocSlice[T](newCap)
	copy(next, sliceAt(b.ptr, b.cap))
	if len(next) == 0 {
		b.ptr = nil
	} else {
		b.ptr = &next[0]
	}
	b.cap = newCap
	logResize(oldCap, newCap, sizeOf[T]())
}

// Write stores v in slot i. The previous contents of the slot are
// overwritten without being read.
func (b *RawBuffer[T]) Write(i int, v T) {
	*elemAt(b.ptr, i) = v
}

// Read moves the value out of slot i. The slot is zeroed so the buffer no
// longer references the value; reading it again yields the zero value.
func (b *RawBuffer[T]) Read(i int) T {
	p := elemAt(b.ptr, i)
	v := *p
	var zero T
	*p = zero
	return v
}

// Ref returns a pointer to slot i. The pointer is invalidated by the next
// Resize.
func (b *RawBuffer[T]) Ref(i int) *T {
	return elemAt(b.ptr, i)
}

// Shift relocates count elements from slot from to slot to.
// The ranges may overlap. Slots left behind keep stale copies until they
// are written or cleared.
func (b *RawBuffer[T]) Shift(from, to, count int) {
	if count <= 0 {
		return
	}
	s := sliceAt(b.ptr, b.cap)
	copy(s[to:to+count], s[from:from+count])
}

// Clear zeroes n slots starting at i.
func (b *RawBuffer[T]) Clear(i, n int) {
	if n <= 0 {
		return
	}
	clear(sliceAt(b.ptr, b.cap)[i : i+n])
}

// Slice returns a view of the first n slots. n must not exceed Cap().
func (b *RawBuffer[T]) Slice(n int) []T {
	return sliceAt(b.ptr, n)
}

// Release drops the allocation. The buffer is empty and reusable afterwards.
// Releasing an empty buffer is a no-op.
func (b *RawBuffer[T]) Release() {
	b.ptr = nil
	b.cap = 0
}

// take hands the allocation to the caller and leaves b empty.
func (b *RawBuffer[T]) take() RawBuffer[T] {
	out := *b
	*b = RawBuffer[T]{}
	return out
}
