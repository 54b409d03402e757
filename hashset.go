package coll

import (
	"fmt"
	"iter"
	"strings"
)

// Set is a Map with no payload. Every operation delegates to the map.
type Set[T comparable] struct {
	inner Map[T, struct{}]
}

// NewSet returns an empty set. Options are those accepted by NewMap.
func NewSet[T comparable](opts ...MapOption[T]) *Set[T] {
	return &Set[T]{inner: *NewMap[T, struct{}](opts...)}
}

// CollectSet builds a set from every value produced by seq.
func CollectSet[T comparable](seq iter.Seq[T], opts ...MapOption[T]) *Set[T] {
	s := NewSet[T](opts...)
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// Len returns the number of members.
func (s *Set[T]) Len() int { return s.inner.Len() }

// IsEmpty reports whether the set has no members.
func (s *Set[T]) IsEmpty() bool { return s.inner.IsEmpty() }

// Capacity returns the bucket count of the underlying map.
func (s *Set[T]) Capacity() int { return s.inner.Capacity() }

// Insert adds val. If an equal member was present it is replaced and
// returned with replaced set.
func (s *Set[T]) Insert(val T) (prev T, replaced bool) {
	prev, _, replaced = s.inner.Insert(val, struct{}{})
	return prev, replaced
}

// Contains reports whether val is a member.
func (s *Set[T]) Contains(val T) bool {
	return s.inner.ContainsKey(val)
}

// Remove deletes val and returns the stored member. It reports false if
// val was not a member.
func (s *Set[T]) Remove(val T) (T, bool) {
	k, _, ok := s.inner.RemoveEntry(val)
	return k, ok
}

// Clear removes every member.
func (s *Set[T]) Clear() { s.inner.Clear() }

// All yields every member in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.inner.Keys()
}

// Clone returns a copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{inner: *s.inner.Clone()}
}

// Metrics returns a snapshot of the underlying table's statistics.
func (s *Set[T]) Metrics() MapMetrics {
	return s.inner.Metrics()
}

// String renders the members as set[a b ...].
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("set[")
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
