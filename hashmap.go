package coll

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	// MaxBucketLen is the chain length that triggers a table doubling.
	MaxBucketLen = 6

	// StartBuckets is the bucket count allocated by the first insert.
	StartBuckets = 8
)

// Map is a hash table with separate chaining. The bucket count is a power
// of two and only ever doubles: growth is triggered when an insert makes
// one chain reach MaxBucketLen entries, not by overall load.
//
// The zero value is an empty map using ComparableHasher. Iteration order is
// unspecified and may change after any insert that triggers growth.
type Map[K comparable, V any] struct {
	buckets []bucket[K, V]
	hasher  Hasher[K]
	nodes   *chunkArena[mapNode[K, V]]
	len     int
}

type bucket[K comparable, V any] struct {
	head *mapNode[K, V]
	len  int
}

type mapNode[K comparable, V any] struct {
	next *mapNode[K, V]
	key  K
	val  V
}

// MapOption configures a Map at construction.
type MapOption[K comparable] func(*mapOptions[K])

type mapOptions[K comparable] struct {
	hasher  Hasher[K]
	buckets int
}

// WithHasher sets the hash function. If h is nil, ComparableHasher is used.
func WithHasher[K comparable](h Hasher[K]) MapOption[K] {
	return func(o *mapOptions[K]) {
		o.hasher = h
	}
}

// WithBuckets pre-allocates at least n buckets, rounded up to a power of
// two. If n <= 0 the table is allocated lazily on first insert.
func WithBuckets[K comparable](n int) MapOption[K] {
	return func(o *mapOptions[K]) {
		o.buckets = n
	}
}

// NewMap returns an empty map. Without WithBuckets it does not allocate
// buckets until the first insert.
func NewMap[K comparable, V any](opts ...MapOption[K]) *Map[K, V] {
	var o mapOptions[K]
	for _, opt := range opts {
		opt(&o)
	}
	m := &Map[K, V]{hasher: o.hasher}
	if o.buckets > 0 {
		m.buckets = allocSlice[bucket[K, V]](roundPow2(o.buckets))
	}
	return m
}

// CollectMap builds a map from every pair produced by seq. Later pairs
// replace earlier ones with an equal key.
func CollectMap[K comparable, V any](seq iter.Seq2[K, V], opts ...MapOption[K]) *Map[K, V] {
	m := NewMap[K, V](opts...)
	m.Extend(seq)
	return m
}

func roundPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.len }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.len == 0 }

// Capacity returns the current bucket count.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

func (m *Map[K, V]) hashOf(key K) uint64 {
	if m.hasher == nil {
		m.hasher = NewComparableHasher[K]()
	}
	return m.hasher.Hash(key)
}

func (m *Map[K, V]) arena() *chunkArena[mapNode[K, V]] {
	if m.nodes == nil {
		m.nodes = newChunkArena[mapNode[K, V]](0)
	}
	return m.nodes
}

// bucketIndex locates key's bucket. The table must be non-empty.
func (m *Map[K, V]) bucketIndex(key K) int {
	// The bucket count is a power of two, so masking is hash mod count.
	return int(m.hashOf(key) & uint64(len(m.buckets)-1))
}

// Insert stores val under key. If an equal key was present, its entry is
// replaced and the previous key and value are returned with replaced set.
func (m *Map[K, V]) Insert(key K, val V) (prevKey K, prevVal V, replaced bool) {
	if len(m.buckets) == 0 {
		m.grow()
	}
	b := &m.buckets[m.bucketIndex(key)]
	tail := &b.head
	for n := b.head; n != nil; n = n.next {
		if n.key == key {
			prevKey, prevVal = n.key, n.val
			n.key, n.val = key, val
			return prevKey, prevVal, true
		}
		tail = &n.next
	}

	n := m.arena().alloc()
	n.key, n.val = key, val
	*tail = n
	b.len++
	m.len++
	if b.len == MaxBucketLen {
		m.grow()
	}
	return prevKey, prevVal, false
}

// find returns the node holding key, or nil.
func (m *Map[K, V]) find(key K) *mapNode[K, V] {
	if m.len == 0 {
		return nil
	}
	for n := m.buckets[m.bucketIndex(key)].head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

// Get returns the value stored under key. It reports false if key is not
// present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.find(key); n != nil {
		return n.val, true
	}
	var zero V
	return zero, false
}

// GetPtr returns a pointer to the value stored under key, or nil if key is
// not present. The pointer stays valid until the entry is removed.
func (m *Map[K, V]) GetPtr(key K) *V {
	if n := m.find(key); n != nil {
		return &n.val
	}
	return nil
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.find(key) != nil
}

// Remove deletes key and returns its value. It reports false if key was
// not present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	_, v, ok := m.RemoveEntry(key)
	return v, ok
}

// RemoveEntry deletes key and returns the stored key and value. It reports
// false if key was not present.
func (m *Map[K, V]) RemoveEntry(key K) (K, V, bool) {
	var (
		zk K
		zv V
	)
	if m.len == 0 {
		return zk, zv, false
	}
	b := &m.buckets[m.bucketIndex(key)]
	for link := &b.head; *link != nil; link = &(*link).next {
		n := *link
		if n.key != key {
			continue
		}
		*link = n.next
		k, v := n.key, n.val
		m.nodes.release(n)
		b.len--
		m.len--
		return k, v, true
	}
	return zk, zv, false
}

// grow doubles the bucket array, or allocates StartBuckets if the map has
// none, and rehashes every node into it. Nodes are relinked, not copied.
func (m *Map[K, V]) grow() {
	if len(m.buckets) == 0 {
		m.buckets = allocSlice[bucket[K, V]](StartBuckets)
		return
	}
	old := m.buckets
	m.buckets = allocSlice[bucket[K, V]](2 * len(old))
	for i := range old {
		n := old[i].head
		for n != nil {
			next := n.next
			n.next = nil
			m.pushNode(n)
			n = next
		}
		old[i] = bucket[K, V]{}
	}
	logRehash(len(old), len(m.buckets), m.len)
}

// pushNode appends n to the end of its bucket's chain. Used only while
// rehashing, where keys are already known to be distinct.
func (m *Map[K, V]) pushNode(n *mapNode[K, V]) {
	b := &m.buckets[m.bucketIndex(n.key)]
	tail := &b.head
	for *tail != nil {
		tail = &(*tail).next
	}
	*tail = n
	b.len++
}

// Clear removes every entry. The bucket count is kept.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	if m.nodes != nil {
		m.nodes.reset()
	}
	m.len = 0
}

// All yields every key/value pair. The map must not be modified during
// iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			for n := m.buckets[i].head; n != nil; n = n.next {
				if !yield(n.key, n.val) {
					return
				}
			}
		}
	}
}

// Pointers yields every key with a pointer to its value so values can be
// modified in place.
func (m *Map[K, V]) Pointers() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range m.buckets {
			for n := m.buckets[i].head; n != nil; n = n.next {
				if !yield(n.key, &n.val) {
					return
				}
			}
		}
	}
}

// Keys yields every key.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain yields every pair and leaves the map empty, even if iteration
// stops early. The bucket count is kept.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		defer m.Clear()
		for i := range m.buckets {
			for n := m.buckets[i].head; n != nil; n = n.next {
				if !yield(n.key, n.val) {
					return
				}
			}
		}
	}
}

// Extend inserts every pair produced by seq.
func (m *Map[K, V]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// Clone returns a shallow copy of the map using the same hasher and bucket
// count.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{hasher: m.hasher}
	if len(m.buckets) > 0 {
		out.buckets = allocSlice[bucket[K, V]](len(m.buckets))
	}
	for k, v := range m.All() {
		out.Insert(k, v)
	}
	return out
}

// String renders the entries as map[k:v ...] in iteration order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
