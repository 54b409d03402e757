// Package coll implements a small container toolkit built on one owned
// allocation discipline: a raw growable buffer, a vector, a chained hash
// map and set, and an index-linked doubly linked list.
//
// # Overview
//
// Every container draws its storage from a RawBuffer, a single heap
// allocation with unchecked slot access whose only caller is the container
// that owns it:
//
//   - RawBuffer: capacity growth plus unchecked Write/Read/Shift
//   - Vector: a live length over a RawBuffer, with checked insert/remove
//   - Map: power-of-two buckets of singly linked chains
//   - Set: a Map with an empty payload
//   - List: a doubly linked list whose nodes live densely in a Vector
//
// # Basic Usage
//
//	v := coll.NewVector[int]()
//	v.Push(1)
//	v.Push(2)
//	if err := v.TryInsert(5, 3); errors.Is(err, coll.ErrIndexNotFound) {
//		// index 5 is past the end
//	}
//
//	m := coll.NewMap[string, int]()
//	m.Insert("foo", 1)
//	n, ok := m.Get("foo")
//
//	l := coll.NewList[int]()
//	l.PushBack(1)
//	l.PushFront(0)
//	front, _ := l.PopFront()
//
// # Growth
//
// Buffers double when full. The first allocation holds 8 slots for
// one-byte elements, 4 for elements up to 1 KiB, and 1 above that. A Map
// doubles its bucket array whenever one chain reaches MaxBucketLen entries
// and rehashes every entry; it never shrinks.
//
// # List Storage
//
// List nodes reference each other by storage index, not by pointer. Popping
// a node moves the last stored node into the freed slot and patches its
// neighbours, so storage never has holes and IterUnordered visits exactly
// the live values.
//
// # Errors
//
// Checked operations (TryInsert, TryRemove, TrySwapRemove) return an
// *IndexError matching ErrIndexNotFound. Their asserting forms panic with a
// message naming both the index and the current length. An allocation
// whose byte size would exceed the address range panics with *AllocError.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. Each container has a
// single owner; guard shared access externally.
//
// # Logging and Metrics
//
// Buffer resizes and table rehashes are logged at debug level through the
// logger installed with SetLogger. Vector, List and Map expose Metrics
// snapshots of their allocation state.
package coll
