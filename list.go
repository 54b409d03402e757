package coll

import (
	"fmt"
	"iter"
)

// nilIndex marks the absence of a node. It never names a storage slot.
const nilIndex = -1

// List is a doubly linked list whose nodes live in one dense Vector and
// link to each other by index. Storage never has holes: removing a node
// moves the last stored node into the freed slot and patches the links
// that pointed at it. Len() therefore always equals the storage length.
//
// The zero value is not usable; create lists with NewList.
type List[T any] struct {
	buf  Vector[listNode[T]]
	head int
	tail int
}

type listNode[T any] struct {
	val  T
	prev int
	next int
}

// NewList returns an empty list. It does not allocate.
func NewList[T any]() *List[T] {
	return &List[T]{head: nilIndex, tail: nilIndex}
}

// ListWithCapacity returns an empty list with room for at least n nodes.
func ListWithCapacity[T any](n int) *List[T] {
	l := NewList[T]()
	l.Reserve(n)
	return l
}

// CollectList builds a list holding every value produced by seq, in order.
func CollectList[T any](seq iter.Seq[T]) *List[T] {
	l := NewList[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of nodes.
func (l *List[T]) Len() int { return l.buf.Len() }

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool { return l.buf.Len() == 0 }

// Reserve makes room for at least additional more nodes.
func (l *List[T]) Reserve(additional int) { l.buf.Reserve(additional) }

func (l *List[T]) node(i int) *listNode[T] { return l.buf.At(i) }

func (l *List[T]) pushNode(n listNode[T]) int {
	i := l.buf.Len()
	l.buf.Push(n)
	return i
}

// PushBack appends val after the tail.
func (l *List[T]) PushBack(val T) {
	i := l.pushNode(listNode[T]{val: val, prev: l.tail, next: nilIndex})
	if l.head == nilIndex {
		l.head = i
	}
	if l.tail != nilIndex {
		l.node(l.tail).next = i
	}
	l.tail = i
}

// PushFront prepends val before the head.
func (l *List[T]) PushFront(val T) {
	i := l.pushNode(listNode[T]{val: val, prev: nilIndex, next: l.head})
	if l.tail == nilIndex {
		l.tail = i
	}
	if l.head != nilIndex {
		l.node(l.head).prev = i
	}
	l.head = i
}

// PopBack removes and returns the tail value. It reports false if the list
// is empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	n := l.removeNode(l.tail)
	l.tail = n.prev
	if l.tail != nilIndex {
		l.node(l.tail).next = nilIndex
	} else {
		l.head = nilIndex
	}
	return n.val, true
}

// PopFront removes and returns the head value. It reports false if the list
// is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	n := l.removeNode(l.head)
	l.head = n.next
	if l.head != nilIndex {
		l.node(l.head).prev = nilIndex
	} else {
		l.tail = nilIndex
	}
	return n.val, true
}

// Front returns the head value without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nilIndex {
		var zero T
		return zero, false
	}
	return l.node(l.head).val, true
}

// Back returns the tail value without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nilIndex {
		var zero T
		return zero, false
	}
	return l.node(l.tail).val, true
}

// removeNode unlinks nothing by itself: it moves the node stored in the
// last slot into slot i and returns the node that was at i. Whoever
// pointed at the last slot is repointed to i first, and head/tail follow
// the moved node. The caller fixes the links around the removed node.
func (l *List[T]) removeNode(i int) listNode[T] {
	last := l.buf.Len() - 1
	end := l.node(last)
	endPrev, endNext := end.prev, end.next

	if endPrev != nilIndex {
		l.node(endPrev).next = i
	}
	if endNext != nilIndex {
		l.node(endNext).prev = i
	}
	n := l.buf.SwapRemove(i)

	if l.head == last {
		l.head = i
	}
	if l.tail == last {
		l.tail = i
	}
	return n
}

// All yields values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != nilIndex; {
			n := l.node(i)
			if !yield(n.val) {
				return
			}
			i = n.next
		}
	}
}

// Backward yields values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.tail; i != nilIndex; {
			n := l.node(i)
			if !yield(n.val) {
				return
			}
			i = n.prev
		}
	}
}

// IterUnordered yields values in storage order, not list order.
func (l *List[T]) IterUnordered() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, n := range l.buf.All() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// IterMutUnordered yields pointers to values in storage order.
func (l *List[T]) IterMutUnordered() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, n := range l.buf.Pointers() {
			if !yield(&n.val) {
				return
			}
		}
	}
}

// IntoUnordered consumes the list and returns its values in storage order.
// The list is left empty.
func (l *List[T]) IntoUnordered() []T {
	out := make([]T, 0, l.buf.Len())
	it := l.buf.IntoIter()
	for n := range it.Seq() {
		out = append(out, n.val)
	}
	l.head, l.tail = nilIndex, nilIndex
	return out
}

// Clone returns a copy of the list with the same storage layout.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{buf: *l.buf.Clone(), head: l.head, tail: l.tail}
}

// String renders the values in list order the way fmt renders a slice.
func (l *List[T]) String() string {
	vals := make([]T, 0, l.Len())
	for v := range l.All() {
		vals = append(vals, v)
	}
	return fmt.Sprint(vals)
}

// Iter returns a double-ended cursor over the list's values.
func (l *List[T]) Iter() *ListIter[T] {
	return &ListIter[T]{list: l, head: l.head, tail: l.tail, remaining: l.Len()}
}

// IterMut returns a double-ended cursor yielding pointers to the list's
// values so they can be modified in place.
func (l *List[T]) IterMut() *ListIterMut[T] {
	return &ListIterMut[T]{ListIter[T]{list: l, head: l.head, tail: l.tail, remaining: l.Len()}}
}

// IntoIter consumes the list through an owning double-ended iterator.
func (l *List[T]) IntoIter() *ListIntoIter[T] {
	return &ListIntoIter[T]{list: l}
}

// ListIter walks a list from both ends. The two cursors are storage
// indices; remaining counts nodes not yet yielded from either end, so the
// ends stop as soon as they meet. The list must not be modified while the
// cursor is in use.
type ListIter[T any] struct {
	list      *List[T]
	head      int
	tail      int
	remaining int
}

// Next returns the next value from the front.
func (it *ListIter[T]) Next() (T, bool) {
	p := it.nextFront()
	if p == nil {
		var zero T
		return zero, false
	}
	return p.val, true
}

// NextBack returns the next value from the back.
func (it *ListIter[T]) NextBack() (T, bool) {
	p := it.nextBack()
	if p == nil {
		var zero T
		return zero, false
	}
	return p.val, true
}

// Len returns the number of values not yet yielded.
func (it *ListIter[T]) Len() int { return it.remaining }

func (it *ListIter[T]) nextFront() *listNode[T] {
	if it.remaining == 0 {
		return nil
	}
	it.remaining--
	n := it.list.node(it.head)
	it.head = n.next
	return n
}

func (it *ListIter[T]) nextBack() *listNode[T] {
	if it.remaining == 0 {
		return nil
	}
	it.remaining--
	n := it.list.node(it.tail)
	it.tail = n.prev
	return n
}

// ListIterMut is ListIter yielding pointers. Each node's pointer is handed
// out at most once across both ends.
type ListIterMut[T any] struct {
	ListIter[T]
}

// Next returns a pointer to the next value from the front, or nil.
func (it *ListIterMut[T]) Next() *T {
	if n := it.nextFront(); n != nil {
		return &n.val
	}
	return nil
}

// NextBack returns a pointer to the next value from the back, or nil.
func (it *ListIterMut[T]) NextBack() *T {
	if n := it.nextBack(); n != nil {
		return &n.val
	}
	return nil
}

// ListIntoIter pops values off a consumed list from either end.
type ListIntoIter[T any] struct {
	list *List[T]
}

// Next pops the front value.
func (it *ListIntoIter[T]) Next() (T, bool) { return it.list.PopFront() }

// NextBack pops the back value.
func (it *ListIntoIter[T]) NextBack() (T, bool) { return it.list.PopBack() }

// Len returns the number of values left.
func (it *ListIntoIter[T]) Len() int { return it.list.Len() }
